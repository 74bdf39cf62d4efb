package quizfile

import (
	"fmt"
	"os"
	"path/filepath"

	"questionary/pkg/quiz"
)

// ResolveImage joins an image reference with the directory of the document
// that mentioned it. The parser never touches the filesystem; resolution
// happens here, on the consumer side.
func ResolveImage(docPath string, ref quiz.ImageRef) string {
	return filepath.Join(filepath.Dir(docPath), string(ref))
}

// CheckImages stat-checks every image a document references, relative to the
// document's location, and reports each missing or non-file reference as an
// issue. A nil result means every reference resolves to an existing file.
func CheckImages(doc quiz.Document, docPath string) []quiz.Issue {
	var issues []quiz.Issue
	check := func(field string, ref quiz.ImageRef) {
		if ref == "" {
			return
		}
		resolved := ResolveImage(docPath, ref)
		info, err := os.Stat(resolved)
		if err != nil {
			issues = append(issues, quiz.Issue{Field: field, Message: fmt.Sprintf("image not found: %s", resolved)})
			return
		}
		if info.IsDir() {
			issues = append(issues, quiz.Issue{Field: field, Message: fmt.Sprintf("image is a directory: %s", resolved)})
		}
	}
	for i, question := range doc.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		for j, image := range question.Images {
			check(fmt.Sprintf("%s.images[%d]", prefix, j), image)
		}
		for j, answer := range question.Answers {
			check(fmt.Sprintf("%s.answers[%d].image", prefix, j), answer.Image)
		}
		if question.FinalMessage != nil {
			check(prefix+".final_message.image", question.FinalMessage.Image)
		}
	}
	return issues
}
