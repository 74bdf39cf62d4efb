package quizfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"questionary/pkg/quiz"
)

func TestResolveImage(t *testing.T) {
	got := ResolveImage(filepath.Join("quizzes", "rainbow.txt"), "img/sky.png")
	want := filepath.Join("quizzes", "img", "sky.png")
	if got != want {
		t.Fatalf("ResolveImage = %q, want %q", got, want)
	}
}

func TestCheckImages(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "quiz.txt")
	if err := os.WriteFile(filepath.Join(dir, "present.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "imgdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	doc := quiz.Document{Questions: []quiz.Question{{
		Prompt: "q?",
		Images: []quiz.ImageRef{"present.png"},
		Answers: []quiz.Answer{
			{Image: "present.png", Text: "a", IsCorrect: true},
			{Image: "missing.png", Text: "b"},
		},
		FinalMessage: &quiz.Message{Image: "imgdir", Text: "done"},
	}}}

	issues := CheckImages(doc, docPath)
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %+v", len(issues), issues)
	}
	if issues[0].Field != "questions[0].answers[1].image" || !strings.Contains(issues[0].Message, "image not found") {
		t.Errorf("issue[0] = %+v", issues[0])
	}
	if issues[1].Field != "questions[0].final_message.image" || !strings.Contains(issues[1].Message, "is a directory") {
		t.Errorf("issue[1] = %+v", issues[1])
	}
}

func TestCheckImagesCleanDocument(t *testing.T) {
	doc := quiz.Document{Questions: []quiz.Question{{
		Prompt:  "q?",
		Answers: []quiz.Answer{{Text: "a", IsCorrect: true}},
	}}}
	if issues := CheckImages(doc, "quiz.txt"); issues != nil {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}
