// ==============================================================================================
// FILE: kb/kb_test.go
// ==============================================================================================

package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeavyHelium/prolog-go/term"
)

func TestAddPreservesSourceOrderWithinFunctor(t *testing.T) {
	db := New()
	db.Add(term.NewFact(term.Literal{Name: "p", Args: []term.Term{term.NewAtom("a")}}))
	db.Add(term.NewFact(term.Literal{Name: "p", Args: []term.Term{term.NewAtom("b")}}))

	clauses, ok := db.Lookup("p")
	require.True(t, ok)
	require.Len(t, clauses, 2)
	assert.Equal(t, "a", clauses[0].Head.Args[0].String())
	assert.Equal(t, "b", clauses[1].Head.Args[0].String())
}

func TestLookupUnknownFunctor(t *testing.T) {
	db := New()
	_, ok := db.Lookup("nope")
	assert.False(t, ok, "Lookup on empty kb should report ok=false")
}

func TestFunctorsFirstInsertionOrder(t *testing.T) {
	db := New()
	db.Add(term.NewFact(term.Literal{Name: "b"}))
	db.Add(term.NewFact(term.Literal{Name: "a"}))
	db.Add(term.NewFact(term.Literal{Name: "b"}))

	assert.Equal(t, []string{"b", "a"}, db.Functors())
	assert.Equal(t, 3, db.Len())
}
