package component

import (
	"bytes"
	"fmt"
	"text/template"

	"fncomp/internal/abi"
)

const componentTemplate = `#[doc(hidden)]
#[allow(non_camel_case_types)]
{{vis .Vis}}struct {{.Name}};

impl {{.Contract.ProviderTrait}} for {{.Name}} {
    type {{.Contract.PropsAssoc}} = {{.Props}};

    fn {{.Contract.Operation}}({{.Arg}}) -> {{.Contract.OutputType}} {{.Body}}
}

{{range .Attrs}}{{.}}
{{end}}{{vis .Vis}}type {{.Component}} = {{.Contract.Wrapper}}<{{.Name}}>;
`

var tmpl = template.Must(template.New("component").Funcs(template.FuncMap{
	"vis": func(v string) string {
		if v == "" {
			return ""
		}
		return v + " "
	},
}).Parse(componentTemplate))

type emitData struct {
	Contract  abi.Contract
	Vis       string
	Name      string
	Props     string
	Arg       string
	Body      string
	Attrs     []string
	Component string
}

// Emit renders the marker type, its provider impl and the component alias.
// The contract is validated here, once per emission.
func Emit(ir *FunctionIR, name ComponentName, contract abi.Contract) (string, error) {
	if err := contract.Validate(); err != nil {
		return "", &Error{
			Kind:    BadContract,
			Span:    ir.Name.Span,
			Message: fmt.Sprintf("invalid runtime contract: %v", err),
		}
	}

	data := emitData{
		Contract:  contract,
		Vis:       ir.Vis.Text,
		Name:      ir.Name.Text,
		Props:     ir.PropsType.Source(),
		Arg:       ir.Arg.Source(),
		Body:      ir.Body.Source(),
		Component: name.Ident.Text,
	}
	for _, a := range ir.Attrs {
		data.Attrs = append(data.Attrs, a.Source())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render component %s: %w", name, err)
	}
	return buf.String(), nil
}
