package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fncomp/internal/lexer"
	"fncomp/internal/source"
)

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.rs", []byte("fn a() -> X {}")))
	toks := lexer.New(file, lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), `Punct(-)        "-" at 1:8-1:9 joint`) {
		t.Errorf("pretty output:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[len(out)-1].Kind != "EOF" {
		t.Errorf("json tokens = %+v", out)
	}
}
