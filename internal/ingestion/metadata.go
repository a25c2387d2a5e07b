package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Metadata describes one ingested resume document.
type Metadata struct {
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the normalized text
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
	LineCount int    `json:"line_count"`
	Fallback  bool   `json:"fallback"` // true when the decoder produced its failure placeholder
}

// NewMetadata creates metadata for normalized resume text.
func NewMetadata(normalized string) *Metadata {
	return &Metadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(normalized),
		CharCount: len(normalized),
		WordCount: len(strings.Fields(normalized)),
		LineCount: len(strings.Split(normalized, "\n")),
		Fallback:  IsDecodeFallback(normalized),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
