package cucumber

import (
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"

	"questionary/internal/cli"
)

// aQuestionnaireFile writes a fixture file into the scenario directory.
func (s *featureState) aQuestionnaireFile(name string, content *godog.DocString) error {
	text := content.Content
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", name, err)
	}
	return nil
}

// aFileExists creates an empty file, used for image references.
func (s *featureState) aFileExists(name string) error {
	if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
		return fmt.Errorf("write file %s: %w", name, err)
	}
	return nil
}

// iRunQuestionary invokes the CLI in-process with the given arguments.
func (s *featureState) iRunQuestionary(argLine string) error {
	var args []string
	if argLine != "" {
		args = strings.Fields(argLine)
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}
