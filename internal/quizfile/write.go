package quizfile

import (
	"fmt"
	"strings"

	"questionary/pkg/quiz"
)

// Write renders a document in the canonical block form, one blank-line
// separated block per question, the final message last. The block grammar
// cannot express every Document: a line whose rendering would re-parse
// differently (text starting with a marker the decoder would consume) or
// that spans multiple lines yields an error naming the question. Title and
// question-level images have no block syntax and are skipped; callers that
// care can inspect the document for them first.
func Write(doc quiz.Document) (string, error) {
	var sb strings.Builder
	for i, question := range doc.Questions {
		if i > 0 {
			sb.WriteString("\n")
		}
		if err := writeQuestion(&sb, i+1, question); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func writeQuestion(sb *strings.Builder, ordinal int, question quiz.Question) error {
	prompt := strings.TrimSpace(question.Prompt)
	if prompt == "" {
		return fmt.Errorf("question %d: empty prompt", ordinal)
	}
	if strings.ContainsRune(prompt, '\n') {
		return fmt.Errorf("question %d: prompt spans multiple lines", ordinal)
	}
	sb.WriteString(prompt)
	sb.WriteString("\n")
	if len(question.Answers) == 0 {
		return fmt.Errorf("question %d: no answers", ordinal)
	}
	for j, answer := range question.Answers {
		if err := checkLineText(ordinal, fmt.Sprintf("answer %d", j+1), answer.Image, answer.Text, answer.IsCorrect); err != nil {
			return err
		}
		if answer.IsCorrect {
			sb.WriteString("* ")
		}
		writeContent(sb, answer.Image, answer.Text)
	}
	if message := question.FinalMessage; message != nil {
		if err := checkLineText(ordinal, "final message", message.Image, message.Text, true); err != nil {
			return err
		}
		sb.WriteString("> ")
		writeContent(sb, message.Image, message.Text)
	}
	return nil
}

func writeContent(sb *strings.Builder, image quiz.ImageRef, text string) {
	if image != "" {
		sb.WriteString("[")
		sb.WriteString(string(image))
		sb.WriteString("]")
		if text != "" {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(text)
	sb.WriteString("\n")
}

// checkLineText rejects content the decoder would read back differently.
// marked is true when the rendered line carries its own leading marker
// (a correct answer's `*` or the message's `>`), which shields a leading
// `*` or `>` in the text from re-interpretation.
func checkLineText(ordinal int, position string, image quiz.ImageRef, text string, marked bool) error {
	if image == "" && text == "" {
		return fmt.Errorf("question %d: %s has neither image nor text", ordinal, position)
	}
	if strings.ContainsRune(text, '\n') {
		return fmt.Errorf("question %d: %s spans multiple lines", ordinal, position)
	}
	if strings.ContainsRune(string(image), ']') {
		return fmt.Errorf("question %d: %s image reference contains %q", ordinal, position, "]")
	}
	if image == "" && strings.HasPrefix(text, "[") {
		return fmt.Errorf("question %d: %s text starts with %q and would read back as an image reference", ordinal, position, "[")
	}
	if !marked && strings.HasPrefix(text, "*") {
		return fmt.Errorf("question %d: %s text starts with %q and would read back as a correct answer", ordinal, position, "*")
	}
	if !marked && strings.HasPrefix(text, ">") {
		return fmt.Errorf("question %d: %s text starts with %q and would read back as a final message", ordinal, position, ">")
	}
	return nil
}
