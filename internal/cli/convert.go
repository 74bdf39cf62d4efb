package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"questionary/internal/quizfile"
)

// runConvert builds the handler for the convert command.
func runConvert(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		outPath := flags.String("o", "", "Write the converted questionnaire to this file instead of stdout")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one legacy questionnaire file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		path := flags.Arg(0)

		doc, err := quizfile.LoadLegacy(path)
		if err != nil {
			printDiagnostic(stderr, path, err)
			return ExitError
		}

		// The block grammar has no syntax for titles or question-level
		// images; converting drops them, loudly.
		for i, question := range doc.Questions {
			if question.Title != "" {
				fmt.Fprintf(stderr, "warning: question %d: dropping title %q\n", i+1, question.Title)
				doc.Questions[i].Title = ""
			}
			if len(question.Images) > 0 {
				fmt.Fprintf(stderr, "warning: question %d: dropping %d question-level image(s)\n", i+1, len(question.Images))
				doc.Questions[i].Images = nil
			}
		}

		rendered, err := quizfile.Write(doc)
		if err != nil {
			printDiagnostic(stderr, path, fmt.Errorf("%s: %w", path, err))
			return ExitError
		}
		if *outPath != "" {
			if err := os.WriteFile(*outPath, []byte(rendered), 0o644); err != nil {
				printDiagnostic(stderr, *outPath, err)
				return ExitError
			}
			return ExitOK
		}
		fmt.Fprint(stdout, rendered)
		return ExitOK
	}
}
