package cli

import (
	"flag"
	"fmt"
	"io"

	"questionary/internal/quizfile"
	"questionary/pkg/quiz"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		checkImages := flags.Bool("images", false, "Also check that referenced image files exist")
		legacy := flags.Bool("legacy", false, "Read files in the legacy key-value format")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "no files given")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		failed := false
		for _, path := range flags.Args() {
			doc, err := loadFor(path, *legacy)
			if err != nil {
				printDiagnostic(stderr, path, err)
				failed = true
				continue
			}
			if *checkImages {
				issues := quizfile.CheckImages(doc, path)
				for _, issue := range issues {
					printIssue(stderr, path, issue)
				}
				if len(issues) > 0 {
					failed = true
					continue
				}
			}
			fmt.Fprintf(stdout, "%s: OK (%d questions, %d answers)\n", path, len(doc.Questions), countAnswers(doc))
		}
		if failed {
			return ExitError
		}
		return ExitOK
	}
}

func loadFor(path string, legacy bool) (quiz.Document, error) {
	if legacy {
		return quizfile.LoadLegacy(path)
	}
	return quizfile.Load(path)
}

func countAnswers(doc quiz.Document) int {
	total := 0
	for _, question := range doc.Questions {
		total += len(question.Answers)
	}
	return total
}
