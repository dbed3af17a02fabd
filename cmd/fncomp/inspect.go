package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fncomp/internal/driver"
	"fncomp/internal/project"
	"fncomp/internal/source"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] file.rs",
	Short: "Print the extracted signature of each annotated function",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type inspectSite struct {
	Line        uint32   `json:"line"`
	Col         uint32   `json:"col"`
	Function    string   `json:"function"`
	Component   string   `json:"component,omitempty"`
	Nested      bool     `json:"nested,omitempty"`
	Vis         string   `json:"vis,omitempty"`
	Attrs       []string `json:"attrs,omitempty"`
	Arg         string   `json:"arg,omitempty"`
	Props       string   `json:"props,omitempty"`
	Return      string   `json:"return,omitempty"`
	Synthesized bool     `json:"synthesized,omitempty"`
	BodyBytes   uint32   `json:"body_bytes,omitempty"`
	Error       string   `json:"error,omitempty"`
	Kind        string   `json:"kind,omitempty"`
}

type inspectPayload struct {
	File  string        `json:"file"`
	Sites []inspectSite `json:"sites"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	manifest, _, err := project.Load(filepath.Dir(path))
	if err != nil {
		return err
	}
	opts := driver.OptionsFromConfig(manifest.Config)
	opts.MaxDiagnostics = maxDiagnostics

	fs, res, err := driver.Inspect(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("failed to inspect %q: %w", path, err)
	}
	payload := buildInspectPayload(fs, res)

	switch format {
	case "pretty":
		renderInspectPretty(cmd.OutOrStdout(), payload)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	if res.Failed() && len(res.Sites) == 0 {
		// лексические и синтаксические ошибки не привязаны к сайтам
		printer := diagPrinter{format: diagFormatPretty, color: useColor(cmd, os.Stderr)}
		if err := printer.print(cmd.ErrOrStderr(), res.Bag, fs); err != nil {
			return err
		}
		return errExpandFailed
	}
	return nil
}

func buildInspectPayload(fs *source.FileSet, res *driver.Result) inspectPayload {
	payload := inspectPayload{File: res.Path, Sites: make([]inspectSite, 0, len(res.Sites))}
	for _, site := range res.Sites {
		start, _ := fs.Resolve(site.Span)
		s := inspectSite{
			Line:      start.Line,
			Col:       start.Col,
			Function:  site.Function,
			Component: site.Component,
			Nested:    site.Nested,
		}
		if site.Err != nil {
			s.Error = site.Err.Message
			s.Kind = site.Err.Kind.String()
		}
		if ir := site.IR; ir != nil {
			s.Vis = ir.Vis.String()
			for _, a := range ir.Attrs {
				s.Attrs = append(s.Attrs, a.Source())
			}
			s.Arg = ir.Arg.Source()
			s.Props = ir.PropsType.Source()
			s.Return = ir.ReturnType.Source()
			s.Synthesized = ir.Synthesized
			s.BodyBytes = ir.Body.Span.Len()
		}
		payload.Sites = append(payload.Sites, s)
	}
	return payload
}

func renderInspectPretty(out io.Writer, p inspectPayload) {
	if len(p.Sites) == 0 {
		fmt.Fprintf(out, "%s: no annotated items\n", p.File)
		return
	}
	for i, s := range p.Sites {
		if i > 0 {
			fmt.Fprintln(out)
		}
		head := fmt.Sprintf("%s:%d:%d fn %s", p.File, s.Line, s.Col, orUnknown(s.Function))
		if s.Component != "" {
			head += " -> " + s.Component
		}
		if s.Nested {
			head += " (nested)"
		}
		fmt.Fprintln(out, head)
		if s.Error != "" {
			fmt.Fprintf(out, "  error:  %s [%s]\n", s.Error, s.Kind)
			continue
		}
		fmt.Fprintf(out, "  vis:    %s\n", s.Vis)
		if len(s.Attrs) > 0 {
			fmt.Fprintf(out, "  attrs:  %s\n", strings.Join(s.Attrs, " "))
		}
		arg := s.Arg
		if s.Synthesized {
			arg += " (synthesized)"
		}
		fmt.Fprintf(out, "  arg:    %s\n", arg)
		fmt.Fprintf(out, "  props:  %s\n", s.Props)
		fmt.Fprintf(out, "  return: %s\n", s.Return)
		fmt.Fprintf(out, "  body:   %d bytes\n", s.BodyBytes)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
