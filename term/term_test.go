// ==============================================================================================
// FILE: term/term_test.go
// ==============================================================================================

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomEqualityIgnoresQuoting(t *testing.T) {
	plain := NewAtom("maria")
	quoted := NewQuotedAtom("maria")
	assert.True(t, AtomEqual(plain, quoted), "Atom(%q) should equal Atom('%s')", plain.Name, quoted.Name)
	assert.False(t, AtomEqual(NewAtom("a"), NewAtom("b")), "Atom(a) should not equal Atom(b)")
}

func TestAtomStringRoundTripsQuoting(t *testing.T) {
	assert.Equal(t, "'Maria'", NewQuotedAtom("Maria").String())
	assert.Equal(t, "parent", NewAtom("parent").String())
}

func TestNewVarMintsDistinctIdentities(t *testing.T) {
	a := NewVar("X")
	b := NewVar("X")
	assert.NotEqual(t, a.ID, b.ID, "two NewVar(%q) calls produced the same ID", "X")
}

func TestListString(t *testing.T) {
	l := NewList(NewAtom("a"), NewAtom("b"))
	assert.Equal(t, "[a, b]", l.String())
}
