package jobpost

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-insight/internal/extraction"
	"github.com/jonathan/resume-insight/internal/llm"
)

// maxKeywords bounds how many screening keywords a posting contributes,
// matching the scoring request limit.
const maxKeywords = 50

// Posting is the targeting input mined from a job posting page.
type Posting struct {
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	Role     string   `json:"role"`
	Keywords []string `json:"keywords"`
	Text     string   `json:"-"`
}

// roleTitleRe matches a plausible job title line: short, no sentence
// punctuation, and containing a role word.
var roleTitleRe = regexp.MustCompile(`(?i)\b(engineer|developer|scientist|analyst|manager|designer|architect|administrator|consultant|specialist|lead)\b`)

// FromURL fetches a job posting and mines it for a role title and screening
// keywords. Thin pages are retried in a headless browser when opts allows.
func FromURL(ctx context.Context, urlStr string, opts *Options) (*Posting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	platform := DetectPlatform(urlStr)
	result, err := fetchURL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := extractMainText(result.HTML, platformContentSelectors(platform), platformNoiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract posting text", Cause: err}
	}

	if shouldUseBrowser(text) && opts.AllowBrowser {
		log.Info().Str("url", urlStr).Int("chars", len(text)).Msg("posting text too thin, retrying with headless browser")
		html, berr := renderWithBrowser(ctx, urlStr, opts.Timeout)
		if berr != nil {
			log.Warn().Err(berr).Str("url", urlStr).Msg("browser fallback failed, keeping HTTP content")
		} else if rendered, rerr := extractMainText(html, platformContentSelectors(platform), platformNoiseSelectors(platform)...); rerr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	keywords, role := mineTargeting(ctx, opts.LLM, text)

	posting := &Posting{
		URL:      urlStr,
		Platform: platform,
		Text:     text,
		Role:     role,
		Keywords: keywords,
	}
	return posting, nil
}

// mineTargeting extracts keywords and a role title from posting text. The
// LLM path is used when a client is configured; dictionary mining covers
// model failures and empty responses.
func mineTargeting(ctx context.Context, client llm.Client, text string) ([]string, string) {
	if client != nil {
		keywords, role, err := MineKeywordsAI(ctx, client, text)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("LLM keyword mining failed, falling back to dictionary")
		case len(keywords) > 0:
			if role == "" {
				role = guessRole(text)
			}
			return keywords, role
		}
	}
	return MineKeywords(text), guessRole(text)
}

// MineKeywords scans posting text against the shared skills dictionary and
// returns lowercase, deduplicated keywords.
func MineKeywords(text string) []string {
	keywords := []string{}
	seen := make(map[string]bool)

	for _, skill := range extraction.KnownSkills(text) {
		key := strings.ToLower(skill)
		if seen[key] || len(keywords) >= maxKeywords {
			continue
		}
		seen[key] = true
		keywords = append(keywords, key)
	}

	return keywords
}

// guessRole returns the first line that looks like a job title.
func guessRole(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 80 {
			continue
		}
		if strings.ContainsAny(line, ".!?") {
			continue
		}
		if roleTitleRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// MineKeywordsAI asks an LLM to extract keywords from posting text. It is
// used when the caller opts into AI assistance; dictionary mining remains
// the fallback when the model is unavailable or returns garbage.
func MineKeywordsAI(ctx context.Context, client llm.Client, text string) ([]string, string, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobKeywordsSchema(), text)

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, "", err
	}

	var parsed struct {
		Role       string   `json:"role"`
		Keywords   []string `json:"keywords"`
		NiceToHave []string `json:"nice_to_have"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &parsed); err != nil {
		return nil, "", err
	}

	keywords := []string{}
	seen := make(map[string]bool)
	for _, keyword := range append(parsed.Keywords, parsed.NiceToHave...) {
		key := strings.ToLower(strings.TrimSpace(keyword))
		if key == "" || seen[key] || len(keywords) >= maxKeywords {
			continue
		}
		seen[key] = true
		keywords = append(keywords, key)
	}

	return keywords, strings.TrimSpace(parsed.Role), nil
}
