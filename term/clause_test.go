// ==============================================================================================
// FILE: term/clause_test.go
// ==============================================================================================

package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiateGivesFreshIdentitiesButPreservesSharing(t *testing.T) {
	x := NewVar("X")
	clause := NewRule(
		Literal{Name: "ancestor", Args: []Term{x}},
		Conjunction{{Name: "parent", Args: []Term{x}}},
	)

	inst := clause.Instantiate()
	headVar := inst.Head.Args[0].(*Var)
	tailVar := inst.Tail[0].Args[0].(*Var)

	require.NotEqual(t, x.ID, headVar.ID, "Instantiate should mint a fresh ID, got the original")
	require.Equal(t, headVar.ID, tailVar.ID, "two occurrences of the same source variable should share identity after Instantiate")

	again := clause.Instantiate()
	assert.NotEqual(t, headVar.ID, again.Head.Args[0].(*Var).ID, "separate Instantiate calls must not share identity")
}

func TestIsFact(t *testing.T) {
	fact := NewFact(Literal{Name: "p"})
	assert.True(t, fact.IsFact(), "NewFact should report IsFact() true")
	rule := NewRule(Literal{Name: "p"}, Conjunction{{Name: "q"}})
	assert.False(t, rule.IsFact(), "NewRule should report IsFact() false")
}
