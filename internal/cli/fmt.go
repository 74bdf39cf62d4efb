package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"questionary/internal/quizfile"
)

// runFmt builds the handler for the fmt command.
func runFmt(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		write := flags.Bool("w", false, "Rewrite files in place instead of printing to stdout")
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
			doc, err := quizfile.Load(path)
			if err != nil {
				printDiagnostic(stderr, path, err)
				failed = true
				continue
			}
			rendered, err := quizfile.Write(doc)
			if err != nil {
				printDiagnostic(stderr, path, fmt.Errorf("%s: %w", path, err))
				failed = true
				continue
			}
			if *write {
				if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
					printDiagnostic(stderr, path, err)
					failed = true
				}
				continue
			}
			fmt.Fprint(stdout, rendered)
		}
		if failed {
			return ExitError
		}
		return ExitOK
	}
}
