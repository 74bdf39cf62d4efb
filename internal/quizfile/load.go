// Package quizfile loads questionnaire files and writes them back out. It is
// the I/O collaborator around the pure parser in pkg/quiz: format dispatch,
// the legacy key-value reader, the canonical block writer, and image checks
// all live here.
package quizfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"questionary/internal/export"
	"questionary/pkg/quiz"
)

// Load reads a questionnaire file and parses it by extension: .json, .yaml,
// and .yml are interchange envelopes, anything else is the block format.
// The legacy key-value format is never sniffed; use LoadLegacy for it.
func Load(path string) (quiz.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return quiz.Document{}, fmt.Errorf("read questionnaire: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err := export.Decode(data, export.FormatJSON)
		if err != nil {
			return quiz.Document{}, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	case ".yaml", ".yml":
		doc, err := export.Decode(data, export.FormatYAML)
		if err != nil {
			return quiz.Document{}, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	default:
		doc, err := quiz.Parse(string(data))
		if err != nil {
			return quiz.Document{}, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}
}
