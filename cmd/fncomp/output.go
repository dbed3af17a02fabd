package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fncomp/internal/diag"
	"fncomp/internal/diagfmt"
	"fncomp/internal/source"
)

type diagFormat string

const (
	diagFormatPretty diagFormat = "pretty"
	diagFormatShort  diagFormat = "short"
	diagFormatJSON   diagFormat = "json"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "pretty":
		return diagFormatPretty, nil
	case "short":
		return diagFormatShort, nil
	case "json":
		return diagFormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected pretty|short|json)", value)
	}
}

// useColor resolves --color against the terminal state of f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return f != nil && isTerminal(f)
	}
}

type diagPrinter struct {
	format   diagFormat
	color    bool
	pathMode diagfmt.PathMode
	quiet    bool
}

// print renders bag; quiet drops everything below errors.
func (p diagPrinter) print(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if p.quiet {
		bag = errorsOnly(bag)
		if bag.Len() == 0 {
			return nil
		}
	}
	switch p.format {
	case diagFormatJSON:
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         p.pathMode,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case diagFormatShort:
		out := diag.FormatShortDiagnostics(bag.Items(), fs, true)
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	default:
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     p.color,
			Context:   2,
			PathMode:  p.pathMode,
			ShowNotes: true,
			ShowFixes: true,
		})
		return nil
	}
}

func errorsOnly(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(bag.Cap())
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			out.Add(d)
		}
	}
	return out
}
