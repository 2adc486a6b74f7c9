package config

import (
	"flag"
	"fmt"
	"io"
)

// parses CLI flags for the hint subcommand
func ParseHintFlags(args []string, output io.Writer) (HintFlags, error) {
	var f HintFlags

	fs := flag.NewFlagSet("hint", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.File, "file", "", "file containing the code to get a hint for (- for stdin)")
	fs.StringVar(&f.Level, "level", "1", "hint level, 1 (conceptual) to 4 (code structure)")
	fs.StringVar(&f.Problem, "problem", "", "short description of the problem you are solving")
	fs.StringVar(&f.ErrorMessage, "error", "", "error message you are seeing, if any")
	fs.StringVar(&f.HTMLPath, "html", "", "also write the hint panel as HTML to this path")
	fs.BoolVar(&f.Dump, "dump", false, "dump the raw response structure")

	if err := fs.Parse(args); err != nil {
		return HintFlags{}, err
	}

	if f.File == "" {
		return HintFlags{}, fmt.Errorf("-file is required")
	}

	if f.Problem == "" {
		return HintFlags{}, fmt.Errorf("-problem is required")
	}

	return f, nil
}

// parses CLI flags for the interactive host
func ParseTUIFlags(args []string, output io.Writer) (TUIFlags, error) {
	var f TUIFlags

	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.File, "file", "", "preload the code selection from this file")
	fs.StringVar(&f.LogFile, "log", "antivibe.log", "where to write logs while the interface is running")

	if err := fs.Parse(args); err != nil {
		return TUIFlags{}, err
	}

	return f, nil
}
