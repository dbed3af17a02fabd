// Package abi describes the shape of the external component runtime that
// generated code has to satisfy: the provider trait, its props associated
// type and render operation, the generic component wrapper and the
// canonical output type.
package abi

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vmihailenco/msgpack/v5"
)

// CurrentVersion is the only contract version this build can emit code for.
const CurrentVersion = 1

// Contract is a versioned description of the runtime shape.
type Contract struct {
	Version        int    `msgpack:"version" json:"version"`
	ProviderTrait  string `msgpack:"provider" json:"provider"`
	PropsAssoc     string `msgpack:"props_assoc" json:"props_assoc"`
	Operation      string `msgpack:"operation" json:"operation"`
	OperationArity int    `msgpack:"operation_arity" json:"operation_arity"`
	Wrapper        string `msgpack:"wrapper" json:"wrapper"`
	WrapperArity   int    `msgpack:"wrapper_arity" json:"wrapper_arity"`
	OutputType     string `msgpack:"output" json:"output"`
}

// Default returns the contract of yew_functional.
func Default() Contract {
	return Contract{
		Version:        CurrentVersion,
		ProviderTrait:  "::yew_functional::FunctionProvider",
		PropsAssoc:     "TProps",
		Operation:      "run",
		OperationArity: 1,
		Wrapper:        "::yew_functional::FunctionComponent",
		WrapperArity:   1,
		OutputType:     "::yew::html::Html",
	}
}

// Validate checks that the contract can be emitted. All problems are
// reported at once, joined.
func (c Contract) Validate() error {
	var errs []error
	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported contract version %d (supported: %d)", c.Version, CurrentVersion))
	}
	for _, f := range []struct {
		name, value string
	}{
		{"provider", c.ProviderTrait},
		{"wrapper", c.Wrapper},
		{"output", c.OutputType},
	} {
		if !IsPath(f.value) {
			errs = append(errs, fmt.Errorf("%s: %q is not a Rust path", f.name, f.value))
		}
	}
	if !IsIdent(c.PropsAssoc) {
		errs = append(errs, fmt.Errorf("props_assoc: %q is not an identifier", c.PropsAssoc))
	}
	if !IsIdent(c.Operation) {
		errs = append(errs, fmt.Errorf("operation: %q is not an identifier", c.Operation))
	}
	// сгенерированный код умеет только один параметр и один аргумент обёртки
	if c.OperationArity != 1 {
		errs = append(errs, fmt.Errorf("operation_arity: %d, only 1 is supported", c.OperationArity))
	}
	if c.WrapperArity != 1 {
		errs = append(errs, fmt.Errorf("wrapper_arity: %d, only 1 is supported", c.WrapperArity))
	}
	return errors.Join(errs...)
}

// Fingerprint is a stable digest of every field; it changes whenever the
// generated code would.
func (c Contract) Fingerprint() string {
	data, err := msgpack.Marshal(&c)
	if err != nil {
		// структура из строк и чисел всегда сериализуется
		panic(fmt.Errorf("abi: marshal contract: %w", err))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// OutputDisplay is the output type as written in diagnostics, without the
// leading `::`.
func (c Contract) OutputDisplay() string {
	return strings.TrimPrefix(c.OutputType, "::")
}

// IsPath reports whether s is `[::]ident(::ident)*`.
func IsPath(s string) bool {
	s = strings.TrimPrefix(s, "::")
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, "::") {
		if !IsIdent(seg) {
			return false
		}
	}
	return true
}

// IsIdent reports whether s is a plain or raw Rust identifier. `_` alone is not.
func IsIdent(s string) bool {
	s = strings.TrimPrefix(s, "r#")
	if s == "" || s == "_" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)):
		default:
			return false
		}
	}
	return true
}
