package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests. Each scenario
// runs in its own temporary directory so fixture files can use bare names.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a questionnaire file "([^"]+)" containing:$`, state.aQuestionnaireFile)
	ctx.Step(`^a file "([^"]+)" exists$`, state.aFileExists)
	ctx.Step(`^I run "questionary ?([^"]*)"$`, state.iRunQuestionary)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^stdout contains "([^"]+)"$`, state.stdoutContains)
	ctx.Step(`^stdout contains '([^']+)'$`, state.stdoutContains)
	ctx.Step(`^stderr contains "([^"]+)"$`, state.stderrContains)
	ctx.Step(`^stdout is:$`, state.stdoutIs)
	ctx.Step(`^the file "([^"]+)" contains:$`, state.theFileContains)
}

// reset prepares a fresh working directory before each scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0

	dir, err := os.MkdirTemp("", "questionary-cucumber-")
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}

// cleanup restores the working directory and removes scenario files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}
