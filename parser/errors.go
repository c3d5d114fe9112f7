// ==============================================================================================
// FILE: parser/errors.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: The two fatal error shapes a parse can produce (spec §6, §7): a lexical error for an
//          unrecognized character run, and a syntactic error for an unexpected token. Both
//          render to the exact strings spec.md §6 specifies so the driver can pass them through
//          untouched behind its "In knowledge base:" / "In query:" prefix.
// ==============================================================================================

package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/HeavyHelium/prolog-go/token"
)

// SyntaxError is raised when the parser finds a token other than the one
// the grammar production expects. Got is "EOF" when the stream is
// exhausted, matching spec §6's "Expected <kind>. Got <kind>." format.
type SyntaxError struct {
	Expected token.TokenType
	Got      token.TokenType
	Line     int
	Column   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Expected %s. Got %s.", e.Expected, e.Got)
}

// LexicalError is raised when the lexer could not classify a run of
// characters at all (spec §4.1, §6).
type LexicalError struct {
	Prefix string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Invalid syntax: %s", e.Prefix)
}

// wrap attaches a stack trace and a short context note via
// github.com/pkg/errors. The flat spec.md §6 string is never lost: it is
// still recoverable via errors.Cause(err).Error() — the driver uses that
// for the user-facing message, and the wrapped form (with stack) only when
// --trace is set (SPEC_FULL.md §4.2).
func wrap(err error, context string) error {
	return errors.Wrap(err, context)
}
