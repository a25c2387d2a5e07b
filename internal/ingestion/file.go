package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads a resume file, normalizes it, and computes metadata.
// HTML exports are converted to plain text first; every other extension is
// treated as text.
func ReadFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = ExtractHTMLText(text)
		if err != nil {
			return "", nil, fmt.Errorf("failed to convert %s: %w", path, err)
		}
	}

	normalized := NormalizeText(text)
	return normalized, NewMetadata(normalized), nil
}
