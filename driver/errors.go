// ==============================================================================================
// FILE: driver/errors.go
// ==============================================================================================
// PACKAGE: driver
// PURPOSE: The four-way error taxonomy of spec §7, collapsed into one Error type the CLI can
//          both print (Error()) and, when tracing, inspect structurally (Kind).
// ==============================================================================================

package driver

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/HeavyHelium/prolog-go/engine"
	"github.com/HeavyHelium/prolog-go/parser"
)

// errNoProgram is the cause wrapped when Answer is called before any
// LoadProgram call has succeeded.
var errNoProgram = errors.New("no program loaded")

// Kind classifies a fatal error for structured logging; it never changes
// the rendered string, which is always Prefix + the flat spec §6 message.
type Kind string

const (
	KindLexical    Kind = "lexical"
	KindSyntactic  Kind = "syntactic"
	KindResolution Kind = "resolution"
)

// Error is the envelope LoadProgram and Answer wrap every fatal error in.
// Its Error() string is exactly the spec §7 prefix followed by the spec §6
// flat message — e.g. "In query: No such predicate: ancestor\0".
type Error struct {
	Kind   Kind
	Prefix string
	Cause  error
}

func (e *Error) Error() string {
	return e.Prefix + pkgerrors.Cause(e.Cause).Error()
}

// Unwrap exposes the underlying cause chain to errors.As/errors.Is callers.
func (e *Error) Unwrap() error { return e.Cause }

func wrapError(prefix string, err error) *Error {
	return &Error{Kind: classify(err), Prefix: prefix, Cause: err}
}

// classify inspects the (possibly wrapped) cause to pick a Kind for
// structured logging. Defaulting to KindSyntactic is safe: the only other
// two concrete error types are narrowly typed and checked first.
func classify(err error) Kind {
	switch pkgerrors.Cause(err).(type) {
	case *parser.LexicalError:
		return KindLexical
	case *engine.UnknownPredicateError:
		return KindResolution
	default:
		if errors.Is(err, errNoProgram) {
			return KindResolution
		}
		return KindSyntactic
	}
}
