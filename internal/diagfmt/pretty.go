package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fncomp/internal/diag"
	"fncomp/internal/source"
)

type palette struct {
	err, warn, info, note, fix, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgGreen, color.Bold),
		fix:    color.New(color.FgMagenta, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.fix, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем контекст строки с подчёркиванием ^^^ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity.String()), d.Code.ID(), pal.bold.Sprint(d.Message))
		return
	}
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, fs, opts.PathMode), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity.String()), d.Code.ID(),
		pal.bold.Sprint(d.Message))
	snippet(w, f, start, end, d.Primary, opts.Context, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			if nf == nil {
				fmt.Fprintf(w, "  %s: %s\n", pal.note.Sprint("note"), n.Msg)
				continue
			}
			ns, ne := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", pal.note.Sprint("note"),
				formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
			snippet(w, nf, ns, ne, n.Span, 0, pal)
		}
	}
	if opts.ShowFixes {
		for _, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s: %s\n", pal.fix.Sprint("fix"), fx.Title)
			for _, e := range fx.Edits {
				es, _ := fs.Resolve(e.Span)
				fmt.Fprintf(w, "    %d:%d %q -> %q\n", es.Line, es.Col, fs.Text(e.Span), e.NewText)
			}
		}
	}
}

// snippet печатает строки контекста и строку со span, подчёркнутую ^.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, sp source.Span, context int8, pal palette) {
	first := start.Line
	if back := uint32(max(context, 0)); back < first { // #nosec G115 -- non-negative int8
		first -= back
	} else {
		first = 1
	}
	width := len(strconv.FormatUint(uint64(start.Line), 10))
	pad := strings.Repeat(" ", width)

	fmt.Fprintf(w, "%s %s\n", pad, pal.gutter.Sprint("|"))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	col = min(max(col, 0), len(line))
	prefix := line[:col]

	var marked string
	if end.Line == start.Line {
		endCol := min(max(int(end.Col)-1, col), len(line))
		marked = line[col:endCol]
	} else {
		marked = line[col:]
	}
	n := max(runewidth.StringWidth(marked), 1)
	if sp.Empty() {
		n = 1
	}
	fmt.Fprintf(w, "%s %s%s\n", pad, pal.gutter.Sprint("|"), " "+indentLike(prefix)+pal.caret.Sprint(strings.Repeat("^", n)))
}

// indentLike returns whitespace of the same display width as s; tabs are kept.
func indentLike(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
