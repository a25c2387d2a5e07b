package server

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/jobpost"
	"github.com/jonathan/resume-insight/internal/types"
)

// allowedUploadExtensions are the file types /extract accepts as uploads.
// HTML is converted to text server-side; binary formats must be decoded
// client-side.
var allowedUploadExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".text":     true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ExtractResponse is the response for POST /extract.
type ExtractResponse struct {
	RequestID  string                      `json:"requestId"`
	Resume     *types.ParsedResume         `json:"resume"`
	Confidence *types.ExtractionConfidence `json:"confidence"`
	Metadata   *ingestion.Metadata         `json:"metadata"`
}

// ScoreResponse is the response for POST /score.
type ScoreResponse struct {
	RequestID string             `json:"requestId"`
	Strategy  string             `json:"strategy"`
	Analysis  *types.ATSAnalysis `json:"analysis"`
}

// JobPostRequest is the request body for POST /jobpost.
type JobPostRequest struct {
	URL string `json:"url"`
}

// handleExtract parses resume text into structured form. Callers either POST
// JSON {"text": "..."} or a multipart upload with a "file" part.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	text, ok := s.readResumeText(w, r)
	if !ok {
		return
	}

	resume, confidence := extraction.Extract(text)
	normalized := ingestion.NormalizeText(text)

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		RequestID:  requestID,
		Resume:     resume,
		Confidence: confidence,
		Metadata:   ingestion.NewMetadata(normalized),
	})
}

// readResumeText pulls resume text out of either a JSON body or a multipart
// upload, enforcing the configured size cap. It writes the error response
// itself and returns ok=false on failure.
func (s *Server) readResumeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxUploadBytes))

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(int64(s.cfg.MaxUploadBytes)); err != nil {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
			return "", false
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "multipart upload requires a 'file' part")
			return "", false
		}
		defer func() { _ = file.Close() }()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedUploadExtensions[ext] {
			s.errorResponse(w, http.StatusUnsupportedMediaType,
				"unsupported file type "+ext+"; upload plain text or paste the content as JSON")
			return "", false
		}

		data, err := io.ReadAll(file)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
			return "", false
		}

		if ext == ".html" || ext == ".htm" {
			text, err := ingestion.ExtractHTMLText(string(data))
			if err != nil {
				s.errorResponse(w, http.StatusBadRequest, "failed to parse HTML upload")
				return "", false
			}
			return text, true
		}
		return string(data), true
	}

	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return "", false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return "", false
	}
	return req.Text, true
}

// handleScore analyzes a previously extracted resume against a target role,
// explicit keywords, or a job posting URL.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid score request: "+err.Error())
		return
	}

	role := req.TargetRole
	keywords := req.TargetKeywords

	// A posting URL contributes mined keywords; failures degrade to the
	// explicitly supplied targeting rather than failing the request.
	if req.JobURL != "" {
		posting, err := jobpost.FromURL(r.Context(), req.JobURL, s.jobpostOptions())
		if err != nil {
			log.Warn().Err(err).Str("url", req.JobURL).Msg("job posting fetch failed, scoring without it")
		} else {
			keywords = append(keywords, posting.Keywords...)
			if role == "" {
				role = posting.Role
			}
		}
	}

	analysis, strategy := s.selector.Score(r.Context(), req.Resume, role, keywords, req.UseAI)

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		RequestID: requestID,
		Strategy:  strategy,
		Analysis:  analysis,
	})
}

// handleJobPost mines a job posting URL for a role title and keywords.
func (s *Server) handleJobPost(w http.ResponseWriter, r *http.Request) {
	var req JobPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	posting, err := jobpost.FromURL(r.Context(), req.URL, s.jobpostOptions())
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// jobpostOptions builds posting fetch options from the server config. The
// LLM client, when configured, upgrades keyword mining from the dictionary
// scan to model extraction.
func (s *Server) jobpostOptions() *jobpost.Options {
	opts := jobpost.DefaultOptions()
	opts.Timeout = time.Duration(s.cfg.TimeoutSeconds) * time.Second
	opts.AllowBrowser = s.cfg.UseBrowser
	opts.LLM = s.llmClient
	return opts
}
