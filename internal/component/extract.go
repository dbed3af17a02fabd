package component

import (
	"strings"

	"fncomp/internal/abi"
	"fncomp/internal/ast"
	"fncomp/internal/fix"
	"fncomp/internal/source"
	"fncomp/internal/token"
)

// Extract checks the annotated item and builds its FunctionIR. Checks run in
// a fixed order and the first failure is returned: not a function,
// generics, async, const, extern ABI, then the first parameter, the
// parameter count and finally the return type. The first parameter is
// checked before the count so that a receiver is reported as such.
func Extract(item *ast.Item, attr Attribute, contract abi.Contract) (*FunctionIR, error) {
	if item == nil || item.Kind != ast.ItemFn || item.Fn == nil {
		return nil, newError(NotAFunction, attr.Span,
			"`functional_component` attribute can only be applied to functions")
	}
	fn := item.Fn

	if err := checkModifiers(fn); err != nil {
		return nil, err
	}

	var arg ast.Param
	synthesized := len(fn.Params) == 0
	if synthesized {
		arg = ast.IgnoredUnitParam(fn.RParen)
	} else {
		arg = fn.Params[0]
	}

	props, err := propsType(arg)
	if err != nil {
		return nil, err
	}

	if len(fn.Params) > 1 {
		extra := fn.Params[1:]
		rendered := make([]string, 0, len(extra))
		for _, p := range extra {
			rendered = append(rendered, p.Render())
		}
		sp := extra[0].Span.Cover(extra[len(extra)-1].Span)
		return nil, newError(TooManyParameters, sp,
			"functional components can accept at most one parameter for the props (found: `"+
				strings.Join(rendered, " ")+"`)")
	}

	if fn.Output == nil {
		e := newError(MissingReturnType, fn.RParen,
			"functional components must return `"+contract.OutputDisplay()+"`")
		after := source.Span{File: fn.RParen.File, Start: fn.RParen.End, End: fn.RParen.End}
		return nil, e.withFix(fix.InsertText("declare the return type", after, " -> "+contract.OutputType))
	}

	return &FunctionIR{
		Body:        fn.Body,
		PropsType:   *props,
		Arg:         arg,
		Vis:         item.Vis,
		Attrs:       item.Attrs,
		Name:        fn.Name,
		ReturnType:  *fn.Output,
		Synthesized: synthesized,
	}, nil
}

func checkModifiers(fn *ast.FnItem) error {
	unsupported := func(m Modifier, e *Error) error {
		e.Modifier = m
		return e
	}
	switch {
	case fn.Generics != nil && len(fn.Generics.Params) > 0:
		return unsupported(ModGenerics, newError(UnsupportedModifier, fn.Generics.Span,
			"functional components can't contain generics"))
	case fn.Async != nil:
		return unsupported(ModAsync, newError(UnsupportedModifier, fn.Async.Span,
			"functional components can't be async"))
	case fn.Const != nil:
		return unsupported(ModConst, newError(UnsupportedModifier, fn.Const.Span,
			"const functions can't be functional components"))
	case fn.Abi != nil:
		return unsupported(ModExternAbi, newError(UnsupportedModifier, fn.Abi.Span,
			"extern functions can't be functional components"))
	}
	return nil
}

// propsType returns the referent of the parameter type `&T`.
func propsType(arg ast.Param) (*ast.Type, error) {
	if arg.Kind == ast.ParamReceiver {
		return nil, newError(ReceiverNotAllowed, arg.Span, "functional components can't accept a receiver")
	}
	ty := arg.Type
	if !ty.IsRef() {
		e := newError(InvalidPropsParameter, ty.Span,
			"expected a reference to a `Properties` type (try: `&"+ty.Render()+"`)")
		return nil, e.withFix(fix.InsertText("take the props by reference", ty.Span, "&"))
	}
	ref := ty.Ref
	if lt := ref.Lifetime; lt != nil {
		e := newError(InvalidPropsParameter, lt.Span, "reference must not have life time")
		return nil, e.withFix(fix.DeleteSpan("remove the lifetime", upTo(lt.Span, nextStart(ref, lt))))
	}
	if m := ref.Mut; m != nil {
		e := newError(InvalidPropsParameter, m.Span, "reference must not be mutable")
		return nil, e.withFix(fix.DeleteSpan("remove `mut`", upTo(m.Span, ref.Elem.Span.Start)))
	}
	return ref.Elem, nil
}

// nextStart is the offset of the token following the lifetime.
func nextStart(ref *ast.RefType, lt *token.Token) uint32 {
	if ref.Mut != nil {
		return ref.Mut.Span.Start
	}
	if ref.Elem != nil {
		return ref.Elem.Span.Start
	}
	return lt.Span.End
}

// upTo extends sp to end at off, swallowing the whitespace after it.
func upTo(sp source.Span, off uint32) source.Span {
	if off > sp.End {
		sp.End = off
	}
	return sp
}
