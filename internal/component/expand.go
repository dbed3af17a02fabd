package component

import (
	"fncomp/internal/abi"
	"fncomp/internal/ast"
)

// Generated is the successful result of one invocation.
type Generated struct {
	Code string
	IR   *FunctionIR
	Name ComponentName
}

// Expand runs the whole pass for one annotated item. The item is checked
// before the attribute argument, so when both are wrong the item error is
// returned. Any error is a *Error.
func Expand(item *ast.Item, attr Attribute, contract abi.Contract) (*Generated, error) {
	ir, err := Extract(item, attr, contract)
	if err != nil {
		return nil, err
	}
	name, err := ResolveName(attr)
	if err != nil {
		return nil, err
	}
	if err := CrossValidate(ir, name); err != nil {
		return nil, err
	}
	code, err := Emit(ir, name, contract)
	if err != nil {
		return nil, err
	}
	return &Generated{Code: code, IR: ir, Name: name}, nil
}
