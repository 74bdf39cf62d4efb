package quiz

import (
	"fmt"
	"strings"
)

// Issue captures one structural problem in a Document.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates every issue found in a Document.
type ValidationError struct {
	Issues []Issue
}

// Error renders the issues as "field: message" pairs.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "document validation failed"
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace throughout a Document and checks the question
// invariants, reporting every violation at once. Parse output is already
// normalized; this pass exists for documents built programmatically or
// decoded from an interchange file.
func Normalize(doc Document) (Document, error) {
	collector := &issueCollector{}
	for i, question := range doc.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.Title = strings.TrimSpace(question.Title)
		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".prompt", "is required")
		}

		question.Images = normalizeImageRefs(question.Images)
		for j, image := range question.Images {
			if image == "" {
				collector.add(fmt.Sprintf("%s.images[%d]", prefix, j), "is required")
			}
		}

		if len(question.Answers) == 0 {
			collector.add(prefix+".answers", "must include at least one entry")
		}
		question.Answers = normalizeAnswers(question.Answers)
		correct := 0
		for j, answer := range question.Answers {
			if answer.Image == "" && answer.Text == "" {
				collector.add(fmt.Sprintf("%s.answers[%d]", prefix, j), "needs an image or text")
			}
			if answer.IsCorrect {
				correct++
			}
		}
		if len(question.Answers) > 0 && correct == 0 {
			collector.add(prefix+".answers", "no answer is marked correct")
		}

		if question.FinalMessage != nil {
			message := Message{
				Image: ImageRef(strings.TrimSpace(string(question.FinalMessage.Image))),
				Text:  strings.TrimSpace(question.FinalMessage.Text),
			}
			if message.Image == "" && message.Text == "" {
				collector.add(prefix+".final_message", "needs an image or text")
			}
			question.FinalMessage = &message
		}

		doc.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func normalizeAnswers(answers []Answer) []Answer {
	normalized := make([]Answer, 0, len(answers))
	for _, answer := range answers {
		answer.Image = ImageRef(strings.TrimSpace(string(answer.Image)))
		answer.Text = strings.TrimSpace(answer.Text)
		normalized = append(normalized, answer)
	}
	return normalized
}

func normalizeImageRefs(images []ImageRef) []ImageRef {
	if images == nil {
		return nil
	}
	normalized := make([]ImageRef, 0, len(images))
	for _, image := range images {
		normalized = append(normalized, ImageRef(strings.TrimSpace(string(image))))
	}
	return normalized
}
