package quiz

import (
	"errors"
	"fmt"
)

// Sentinel errors for the structural violations a questionnaire source can
// contain. Parse wraps them in a *ParseError; match with errors.Is.
var (
	// ErrEmptyPrompt indicates a block whose first line is blank.
	ErrEmptyPrompt = errors.New("empty question prompt")
	// ErrEmptyLineContent indicates a body line with neither image nor text.
	ErrEmptyLineContent = errors.New("line has neither image nor text")
	// ErrNoAnswers indicates a question block with no answer lines.
	ErrNoAnswers = errors.New("question has no answers")
	// ErrNoCorrectAnswer indicates a question where no answer is marked correct.
	ErrNoCorrectAnswer = errors.New("no answer is marked correct")
	// ErrMultipleFinalMessages indicates more than one final-message line in a block.
	ErrMultipleFinalMessages = errors.New("more than one final message")
	// ErrMalformedImageRef indicates an image reference missing its closing bracket.
	ErrMalformedImageRef = errors.New("image reference is missing its closing bracket")
)

// ParseError reports the first structural violation found while parsing a
// questionnaire source. Parsing is fail-fast: no partial Document accompanies
// it.
type ParseError struct {
	// Err is one of the sentinel errors above.
	Err error
	// Question is the 1-based ordinal of the offending block.
	Question int
	// Line is the 1-based line number in the source text. For block-level
	// violations it points at the block's prompt line.
	Line int
	// LineText is the offending line, empty for block-level violations.
	LineText string
}

// Error renders the violation with its source position.
func (e *ParseError) Error() string {
	if e.LineText != "" {
		return fmt.Sprintf("question %d: line %d: %v: %q", e.Question, e.Line, e.Err, e.LineText)
	}
	return fmt.Sprintf("question %d: line %d: %v", e.Question, e.Line, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
