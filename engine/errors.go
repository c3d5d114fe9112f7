// ==============================================================================================
// FILE: engine/errors.go
// ==============================================================================================
// PACKAGE: engine
// PURPOSE: The one fatal error class resolution can raise (spec §4.4, §6, §7): a query literal
//          whose functor is not in the knowledge base at all. This is deliberately fatal, not a
//          silent failure — it is the mechanism that surfaces a typo'd predicate name in a query.
// ==============================================================================================

package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnknownPredicateError renders to spec §6's "No such predicate: <name>\<arity>".
type UnknownPredicateError struct {
	Name  string
	Arity int
}

func (e *UnknownPredicateError) Error() string {
	return fmt.Sprintf("No such predicate: %s\\%d", e.Name, e.Arity)
}

func wrap(err error, context string) error {
	return errors.Wrap(err, context)
}
