package driver

import (
	"fmt"
	"os"
	"strings"
)

// indentGenerated prefixes every line after the first with indent. The
// spliced body keeps its own indentation from the source file.
func indentGenerated(code, body, indent string) string {
	if indent == "" {
		return code
	}
	bodyAt := -1
	if body != "" {
		bodyAt = strings.Index(code, body)
	}
	if bodyAt < 0 {
		return indentAfterNewlines(code, indent)
	}
	head := indentAfterNewlines(code[:bodyAt], indent)
	tail := indentAfterNewlines(code[bodyAt+len(body):], indent)
	return head + body + tail
}

// indentAfterNewlines indents every non-empty line that follows a newline in s.
func indentAfterNewlines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		// первая строка продолжает уже начатую
		if i == 0 || l == "" {
			continue
		}
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}

// compileError renders the item that replaces a failed expansion.
func compileError(msg string) string {
	return fmt.Sprintf("::core::compile_error!(%s);", rustString(msg))
}

// rustString quotes s as a Rust string literal.
func rustString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// writeResult writes the rewritten file next to its input when it changed.
func writeResult(res *Result, suffix string) error {
	if suffix == "" || res == nil || !res.Changed {
		return nil
	}
	out := OutputPath(res.Path, suffix)
	if err := os.WriteFile(out, []byte(res.Output), 0o644); err != nil { // #nosec G306 -- generated sources are world-readable
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	res.Written = out
	return nil
}
