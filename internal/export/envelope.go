package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"questionary/pkg/quiz"
)

// EnvelopeVersion is the only interchange schema revision this build reads
// and writes.
const EnvelopeVersion = 1

// Format selects the envelope encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", name)
	}
}

// Envelope wraps a parsed document for handoff to out-of-process consumers.
// Image references inside stay relative to the original source file.
type Envelope struct {
	ID          string          `json:"id" yaml:"id"`
	Source      string          `json:"source,omitempty" yaml:"source,omitempty"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Version     int             `json:"version" yaml:"version"`
	Questions   []quiz.Question `json:"questions" yaml:"questions"`
}

// New builds an envelope around a document. Source records where the
// questions came from, usually the input file path.
func New(doc quiz.Document, source string) Envelope {
	return Envelope{
		ID:          uuid.NewString(),
		Source:      source,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Version:     EnvelopeVersion,
		Questions:   doc.Questions,
	}
}

// Encode marshals the envelope in the requested format. JSON output is
// indented; YAML uses the default two-space indent.
func Encode(env Envelope, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(env)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Decode reads an envelope back into a Document. Decoding is strict: unknown
// fields, trailing documents, and unsupported schema versions are rejected,
// and the questions must pass the same structural checks a parsed document
// satisfies.
func Decode(data []byte, format Format) (quiz.Document, error) {
	var env Envelope
	var err error
	switch format {
	case FormatJSON:
		env, err = decodeJSON(data)
	case FormatYAML:
		env, err = decodeYAML(data)
	default:
		return quiz.Document{}, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return quiz.Document{}, err
	}
	if env.Version != EnvelopeVersion {
		return quiz.Document{}, fmt.Errorf("unsupported envelope version %d (expected %d)", env.Version, EnvelopeVersion)
	}
	doc, err := quiz.Normalize(quiz.Document{Questions: env.Questions})
	if err != nil {
		return quiz.Document{}, err
	}
	return doc, nil
}

func decodeJSON(data []byte) (Envelope, error) {
	var env Envelope
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Envelope{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Envelope{}, fmt.Errorf("parse json: %w", err)
	}
	return env, nil
}

func decodeYAML(data []byte) (Envelope, error) {
	var env Envelope
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Envelope{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Envelope{}, fmt.Errorf("parse yaml: %w", err)
	}
	return env, nil
}
