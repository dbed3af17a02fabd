// Package component implements the functional component pass.
//
// Expand takes a parsed item and the invocation attribute and either returns
// the generated declarations or a single *Error. The steps are exported for
// callers that need them separately:
//
//	Extract       item -> FunctionIR, enforcing the signature rules
//	ResolveName   attribute argument -> ComponentName
//	CrossValidate FunctionIR x ComponentName
//	Emit          FunctionIR x ComponentName x abi.Contract -> source text
//
// The function body is never inspected: it is spliced into the output as the
// verbatim source of its block.
package component
