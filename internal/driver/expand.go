package driver

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"fncomp/internal/ast"
	"fncomp/internal/component"
	"fncomp/internal/diag"
	"fncomp/internal/lexer"
	"fncomp/internal/parser"
	"fncomp/internal/source"
	"fncomp/internal/token"
	"fncomp/internal/trace"
)

// Expand loads path and expands every annotated item in it.
// The returned error is only set when the file cannot be read.
func Expand(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	res := expandFile(ctx, fs.Get(fileID), opts.withDefaults())
	if err := writeResult(res, opts.WriteSuffix); err != nil {
		return fs, res, err
	}
	return fs, res, nil
}

// ExpandSource expands content as if it were read from name.
func ExpandSource(ctx context.Context, name string, content []byte, opts Options) (*source.FileSet, *Result) {
	fs := source.NewFileSet()
	fileID := fs.AddNormalized(name, content)
	return fs, expandFile(ctx, fs.Get(fileID), opts.withDefaults())
}

// Inspect expands path without cache or writing, keeping the IR of every site.
func Inspect(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	opts.Cache = nil
	opts.WriteSuffix = ""
	return Expand(ctx, path, opts)
}

// expander rewrites one file; it is not shared between goroutines.
type expander struct {
	ctx         context.Context
	file        *source.File
	tree        *parser.Tree
	opts        Options
	bag         *diag.Bag
	fingerprint string
	sites       []Site
}

type edit struct {
	span source.Span
	text string
}

func expandFile(ctx context.Context, file *source.File, opts Options) *Result {
	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+file.Path)
	res := &Result{
		Path:   file.Path,
		FileID: file.ID,
		Output: string(file.Content),
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}
	defer func() {
		span.WithExtra("sites", fmt.Sprint(len(res.Sites))).End(statusDetail(res))
	}()

	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})
	lexStart := time.Now()
	reporter := (&lexer.ReporterAdapter{Bag: res.Bag}).Reporter()
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).All()
	opts.Timer.Add("lex", time.Since(lexStart))
	if res.Bag.HasErrors() {
		return res
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	tree, err := parser.Build(file, toks)
	if err != nil {
		component.Report(diag.BagReporter{Bag: res.Bag}, component.SyntaxError(err))
		return res
	}
	if ctx.Err() != nil {
		res.Bag.Add(diag.NewError(diag.UnknownCode, source.NoSpan, ctx.Err().Error()))
		return res
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageExpand, Status: StatusWorking})
	expandStart := time.Now()
	x := &expander{
		ctx:         ctx,
		file:        file,
		tree:        tree,
		opts:        opts,
		bag:         res.Bag,
		fingerprint: opts.Contract.Fingerprint(),
	}
	out := x.rewrite(0, tree.Len(), 0, uint32(len(file.Content)), false) // #nosec G115 -- FileSet.Add checked the length
	opts.Timer.Add("expand", time.Since(expandStart))

	res.Sites = x.sites
	if len(x.sites) > 0 {
		res.Output = out
		res.Changed = out != string(file.Content)
	}
	return res
}

func statusDetail(res *Result) string {
	if res.Failed() {
		return "error"
	}
	return "ok"
}

// rewrite returns the bytes [from, to) of the file with every annotated
// item among tokens [lo, hi) replaced by its expansion.
func (x *expander) rewrite(lo, hi int, from, to uint32, nested bool) string {
	edits := x.scan(lo, hi, nested)
	content := x.file.Content
	var b strings.Builder
	pos := from
	for _, e := range edits {
		b.Write(content[pos:e.span.Start])
		b.WriteString(e.text)
		pos = e.span.End
	}
	b.Write(content[pos:to])
	return b.String()
}

// scan finds annotated items among tokens [lo, hi) and expands each of them.
func (x *expander) scan(lo, hi int, nested bool) []edit {
	var edits []edit
	for i := lo; i < hi; {
		if !x.attrStart(i, hi) {
			i++
			continue
		}
		start := i
		var attrs []ast.Attr
		match := -1
		j := i
		for {
			attr, next, ok, err := x.tree.AttrAt(j, hi)
			if err != nil || !ok {
				break
			}
			if match < 0 && !attr.Doc && x.opts.matches(attr.Path) {
				match = len(attrs)
			}
			attrs = append(attrs, attr)
			j = next
		}
		if match < 0 {
			i = max(j, i+1)
			continue
		}
		end := x.tree.ItemEnd(j, hi)
		text := x.site(start, end, attrs[match], nested)
		edits = append(edits, edit{span: x.tree.Span(start, end), text: text})
		i = end
	}
	return edits
}

// attrStart reports whether an outer attribute or doc comment begins at i.
func (x *expander) attrStart(i, hi int) bool {
	tok := x.tree.Tokens[i]
	switch tok.Kind {
	case token.DocComment:
		return true
	case token.Pound:
		return i+1 < hi && x.tree.Tokens[i+1].Kind == token.LBracket
	}
	return false
}

// site expands the annotated item made of tokens [start, end) and returns
// its replacement text.
func (x *expander) site(start, end int, attr ast.Attr, nested bool) string {
	itemSpan := x.tree.Span(start, end)
	_, span := trace.Start(x.ctx, trace.ScopeItem, "item:"+x.file.Text(attr.Span))
	site := Site{Span: itemSpan, Nested: nested}
	defer func() {
		detail := "ok"
		if site.Err != nil {
			detail = site.Err.Kind.String()
		} else if site.Cached {
			detail = "cached"
		}
		span.End(detail)
		x.sites = append(x.sites, site)
	}()

	item, err := parser.ParseTreeItem(x.tree, start, end)
	if err != nil {
		return x.fail(&site, component.SyntaxError(err))
	}
	item.Attrs = withoutAttr(item.Attrs, attr)
	invocation, err := component.AttributeFrom(attr)
	if err != nil {
		return x.fail(&site, err)
	}

	var body string
	if item.Kind == ast.ItemFn && item.Fn != nil {
		body = x.rewriteBody(start, end, item.Fn.Body)
		item.Fn.Body.Text = body
	}

	key := NewCacheKey(x.fingerprint, attr.Text, x.file.Text(itemSpan)+"\x00"+body)
	var entry CacheEntry
	if ok, _ := x.opts.Cache.Get(key, &entry); ok {
		site.Cached = true
		site.Function, site.Component = entry.Function, entry.Component
		if entry.Failed {
			return x.fail(&site, entry.Err.toError(itemSpan))
		}
		return x.succeed(&site, attr, itemSpan, entry.Code, body)
	}

	gen, err := component.Expand(item, invocation, x.opts.Contract)
	if err != nil {
		if e, ok := component.AsError(err); ok {
			if ce, ok := entryFromError(e, itemSpan); ok {
				_ = x.opts.Cache.Put(key, &CacheEntry{Failed: true, Err: ce})
			}
		}
		return x.fail(&site, err)
	}
	site.IR = gen.IR
	site.Function, site.Component = gen.IR.Name.Text, gen.Name.String()
	_ = x.opts.Cache.Put(key, &CacheEntry{Function: site.Function, Component: site.Component, Code: gen.Code})
	return x.succeed(&site, attr, itemSpan, gen.Code, body)
}

// rewriteBody expands items nested in the body block and returns the new block text.
// It runs before the outer item is checked, so nested sites are recorded and
// reported even when the outer item then fails and its compile_error!
// replaces the whole item, nested output included.
func (x *expander) rewriteBody(start, end int, body ast.Block) string {
	open := -1
	for k := start; k < end; k++ {
		tok := x.tree.Tokens[k]
		if tok.Kind == token.LBrace && tok.Span.Start == body.Span.Start {
			open = k
			break
		}
	}
	if open < 0 {
		return body.Source()
	}
	closing := x.tree.Close(open)
	inner := x.rewrite(open+1, closing, x.tree.Tokens[open].Span.End, x.tree.Tokens[closing].Span.Start, true)
	return "{" + inner + "}"
}

func (x *expander) succeed(site *Site, attr ast.Attr, itemSpan source.Span, code, body string) string {
	if x.opts.ReportInfo {
		d := diag.New(diag.SevInfo, diag.FncExpanded, attr.Span,
			fmt.Sprintf("expanded `%s` into component `%s`", site.Function, site.Component))
		if site.Cached {
			d = d.WithNote(attr.Span, "served from cache")
		}
		x.bag.Add(d)
	}
	return indentGenerated(strings.TrimSuffix(code, "\n"), body, x.indentAt(itemSpan.Start))
}

func (x *expander) fail(site *Site, err error) string {
	e, ok := component.AsError(err)
	if !ok {
		e = &component.Error{Kind: component.Syntax, Span: site.Span, Message: err.Error()}
	}
	site.Err = e
	component.Report(diag.BagReporter{Bag: x.bag}, e)
	return compileError(e.Message)
}

// indentAt returns the whitespace before offset when it is the first token on its line.
func (x *expander) indentAt(offset uint32) string {
	content := x.file.Content[:offset]
	lineStart := bytes.LastIndexByte(content, '\n') + 1
	prefix := string(content[lineStart:])
	if strings.TrimLeft(prefix, " \t") != "" {
		return ""
	}
	return prefix
}

func withoutAttr(attrs []ast.Attr, drop ast.Attr) []ast.Attr {
	out := make([]ast.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Span != drop.Span {
			out = append(out, a)
		}
	}
	return out
}
