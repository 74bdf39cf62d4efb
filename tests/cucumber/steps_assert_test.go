package cucumber

import (
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"
)

// theExitCodeIs asserts the CLI exit code.
func (s *featureState) theExitCodeIs(want int) error {
	if s.exitCode != want {
		return fmt.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s", s.exitCode, want, s.stdout.String(), s.stderr.String())
	}
	return nil
}

// stdoutContains asserts a substring of standard output.
func (s *featureState) stdoutContains(want string) error {
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("expected %q in stdout, got %q", want, s.stdout.String())
	}
	return nil
}

// stderrContains asserts a substring of standard error.
func (s *featureState) stderrContains(want string) error {
	if !strings.Contains(s.stderr.String(), want) {
		return fmt.Errorf("expected %q in stderr, got %q", want, s.stderr.String())
	}
	return nil
}

// stdoutIs asserts standard output exactly, modulo a trailing newline.
func (s *featureState) stdoutIs(want *godog.DocString) error {
	got := strings.TrimRight(s.stdout.String(), "\n")
	expected := strings.TrimRight(want.Content, "\n")
	if got != expected {
		return fmt.Errorf("stdout = %q, want %q", got, expected)
	}
	return nil
}

// theFileContains asserts a file's contents, modulo a trailing newline.
func (s *featureState) theFileContains(name string, want *godog.DocString) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	got := strings.TrimRight(string(data), "\n")
	expected := strings.TrimRight(want.Content, "\n")
	if got != expected {
		return fmt.Errorf("%s = %q, want %q", name, got, expected)
	}
	return nil
}
