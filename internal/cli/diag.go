package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"questionary/pkg/quiz"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiRed   = "\x1b[31m"
)

type diagPalette struct {
	enabled bool
}

func paletteFor(writer io.Writer) diagPalette {
	return diagPalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p diagPalette) errorText(text string) string {
	if !p.enabled {
		return text
	}
	return ansiBold + ansiRed + text + ansiReset
}

func (p diagPalette) position(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + text + ansiReset
}

// printDiagnostic renders one failure for a file. Parse errors get their
// source position and the offending line; everything else is printed as-is.
func printDiagnostic(writer io.Writer, path string, err error) {
	palette := paletteFor(writer)
	var parseErr *quiz.ParseError
	if errors.As(err, &parseErr) {
		position := fmt.Sprintf("%s: question %d, line %d:", path, parseErr.Question, parseErr.Line)
		fmt.Fprintf(writer, "%s %s\n", palette.position(position), palette.errorText(parseErr.Err.Error()))
		if parseErr.LineText != "" {
			fmt.Fprintf(writer, "    %s\n", parseErr.LineText)
		}
		return
	}
	fmt.Fprintf(writer, "%s\n", palette.errorText(err.Error()))
}

// printIssue renders one validation or image-check finding.
func printIssue(writer io.Writer, path string, issue quiz.Issue) {
	palette := paletteFor(writer)
	position := fmt.Sprintf("%s: %s:", path, issue.Field)
	fmt.Fprintf(writer, "%s %s\n", palette.position(position), palette.errorText(issue.Message))
}
