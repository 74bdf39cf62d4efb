package quizfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"questionary/pkg/quiz"
)

// LoadLegacy reads a questionnaire in the original key-value format:
//
//	title: optional heading
//	question: the prompt
//	option: one candidate answer (repeated)
//	image: question-level illustration (repeated, optional)
//	answer: 1-based index of the correct option
//	final_text: optional closing text
//	final_image: optional closing image
//
// Lines starting with # are comments; a blank line ends a question. A
// fragment that never names a question is silently dropped.
func LoadLegacy(path string) (quiz.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return quiz.Document{}, fmt.Errorf("read questionnaire: %w", err)
	}
	return ParseLegacy(string(data), path)
}

// ParseLegacy parses legacy key-value text. The name argument is used only in
// error positions ("name:line").
func ParseLegacy(text, name string) (quiz.Document, error) {
	var doc quiz.Document
	fragment := newLegacyFragment()
	flush := func() error {
		question, ok, err := fragment.finish(name)
		if err != nil {
			return err
		}
		if ok {
			doc.Questions = append(doc.Questions, question)
		}
		fragment = newLegacyFragment()
		return nil
	}
	for i, line := range strings.Split(text, "\n") {
		number := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			if err := flush(); err != nil {
				return quiz.Document{}, err
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		field, value, found := strings.Cut(line, ":")
		if !found {
			return quiz.Document{}, fmt.Errorf("%s:%d: not a field line: %q", name, number, line)
		}
		field = strings.TrimSpace(field)
		value = strings.TrimSpace(value)
		if value == "" {
			return quiz.Document{}, fmt.Errorf("%s:%d: field %q has no value", name, number, field)
		}
		if err := fragment.set(field, value, name, number); err != nil {
			return quiz.Document{}, err
		}
	}
	if err := flush(); err != nil {
		return quiz.Document{}, err
	}
	return doc, nil
}

// legacyFragment accumulates one question's fields until a blank line.
type legacyFragment struct {
	title      string
	question   string
	options    []string
	images     []quiz.ImageRef
	answer     int
	finalText  string
	finalImage quiz.ImageRef
	startLine  int
	seen       map[string]bool
}

func newLegacyFragment() *legacyFragment {
	return &legacyFragment{seen: map[string]bool{}}
}

func (f *legacyFragment) set(field, value, name string, number int) error {
	if f.startLine == 0 {
		f.startLine = number
	}
	scalar := field != "option" && field != "image"
	if scalar && f.seen[field] {
		return fmt.Errorf("%s:%d: duplicate field %q", name, number, field)
	}
	f.seen[field] = true
	switch field {
	case "title":
		f.title = value
	case "question":
		f.question = value
	case "option":
		f.options = append(f.options, value)
	case "image":
		f.images = append(f.images, quiz.ImageRef(value))
	case "answer":
		index, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s:%d: answer must be an option index, got %q", name, number, value)
		}
		f.answer = index
	case "final_text":
		f.finalText = value
	case "final_image":
		f.finalImage = quiz.ImageRef(value)
	default:
		return fmt.Errorf("%s:%d: invalid question field %q", name, number, field)
	}
	return nil
}

// finish converts an accumulated fragment into a Question. A fragment with no
// question text reports ok=false and is discarded, like the original reader.
func (f *legacyFragment) finish(name string) (quiz.Question, bool, error) {
	if f.question == "" {
		return quiz.Question{}, false, nil
	}
	if len(f.options) == 0 {
		return quiz.Question{}, false, fmt.Errorf("%s:%d: question has no options", name, f.startLine)
	}
	if f.answer < 1 || f.answer > len(f.options) {
		return quiz.Question{}, false, fmt.Errorf("%s:%d: answer index %d is not in 1..%d", name, f.startLine, f.answer, len(f.options))
	}
	question := quiz.Question{
		Title:  f.title,
		Prompt: f.question,
		Images: f.images,
	}
	for i, option := range f.options {
		question.Answers = append(question.Answers, quiz.Answer{
			Text:      option,
			IsCorrect: i+1 == f.answer,
		})
	}
	if f.finalText != "" || f.finalImage != "" {
		question.FinalMessage = &quiz.Message{Image: f.finalImage, Text: f.finalText}
	}
	return question, true, nil
}
