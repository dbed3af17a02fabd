package component

import (
	"fncomp/internal/diag"
)

var kindCodes = map[Kind]diag.Code{
	NotAFunction:          diag.FncNotAFunction,
	UnsupportedModifier:   diag.FncUnsupportedModifier,
	ReceiverNotAllowed:    diag.FncReceiverNotAllowed,
	InvalidPropsParameter: diag.FncInvalidPropsParameter,
	TooManyParameters:     diag.FncTooManyParameters,
	MissingReturnType:     diag.FncMissingReturnType,
	MissingComponentName:  diag.FncMissingComponentName,
	NameCollision:         diag.FncNameCollision,
	BadContract:           diag.FncBadContract,
}

// DiagCode returns the stable diagnostic code of the error.
func (e *Error) DiagCode() diag.Code {
	if e.Kind == Syntax {
		if e.Code != diag.UnknownCode {
			return e.Code
		}
		return diag.SynUnexpectedToken
	}
	if c, ok := kindCodes[e.Kind]; ok {
		return c
	}
	return diag.UnknownCode
}

// Diagnostic converts the error into one error-severity diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     e.DiagCode(),
		Message:  e.Message,
		Primary:  e.Span,
		Notes:    e.Notes,
		Fixes:    e.Fixes,
	}
}

// Report sends err to r. Errors that are not *Error are reported as
// unknown-code errors without a location.
func Report(r diag.Reporter, err error) {
	if err == nil || r == nil {
		return
	}
	e, ok := AsError(err)
	if !ok {
		r.Report(diag.UnknownCode, diag.SevError, zeroSpan, err.Error(), nil, nil)
		return
	}
	d := e.Diagnostic()
	r.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
}
