package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"questionary/internal/export"
	"questionary/internal/quizfile"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		formatName := flags.String("format", "json", "Envelope encoding: json or yaml")
		outPath := flags.String("o", "", "Write the envelope to this file instead of stdout")
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
			fmt.Fprintln(stderr, "expected exactly one questionnaire file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		path := flags.Arg(0)

		format, err := export.ParseFormat(*formatName)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		doc, err := quizfile.Load(path)
		if err != nil {
			printDiagnostic(stderr, path, err)
			return ExitError
		}
		data, err := export.Encode(export.New(doc, path), format)
		if err != nil {
			printDiagnostic(stderr, path, err)
			return ExitError
		}
		if *outPath != "" {
			if err := os.WriteFile(*outPath, data, 0o644); err != nil {
				printDiagnostic(stderr, *outPath, err)
				return ExitError
			}
			return ExitOK
		}
		stdout.Write(data)
		return ExitOK
	}
}
