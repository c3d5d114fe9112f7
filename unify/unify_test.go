// ==============================================================================================
// FILE: unify/unify_test.go
// ==============================================================================================
// PURPOSE: Exercises spec §8's unification-related testable properties directly: the occurs
//          check, symmetry, idempotence of Apply, and MGU soundness.
// ==============================================================================================

package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeavyHelium/prolog-go/term"
)

func TestOccursCheckFailsOnSelfReferencingList(t *testing.T) {
	x := term.NewVar("X")
	_, ok := Unify(x, term.NewList(x))
	assert.False(t, ok, "unify(X, [X]) should fail the occurs check")
}

func TestUnifySymmetry(t *testing.T) {
	pairs := [][2]term.Term{
		{term.NewVar("X"), term.NewAtom("a")},
		{term.NewList(term.NewAtom("a"), term.NewVar("Y")), term.NewList(term.NewVar("Z"), term.NewAtom("b"))},
		{term.NewAtom("a"), term.NewAtom("b")},
	}
	for _, p := range pairs {
		s1, ok1 := Unify(p[0], p[1])
		s2, ok2 := Unify(p[1], p[0])
		require.Equal(t, ok1, ok2, "unify(%s, %s) vs unify(%s, %s)", p[0], p[1], p[1], p[0])
		if !ok1 {
			continue
		}
		assert.Equal(t, Apply(s1, p[0]).String(), Apply(s2, p[0]).String(), "symmetric unifications yielded inequivalent substitutions for %s", p[0])
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	x := term.NewVar("X")
	y := term.NewVar("Y")
	sub, ok := Unify(term.NewList(x, y), term.NewList(term.NewAtom("a"), x))
	require.True(t, ok, "setup unify failed")
	once := Apply(sub, x)
	twice := Apply(sub, once)
	assert.Equal(t, once.String(), twice.String(), "apply(sigma, apply(sigma, t)) should equal apply(sigma, t)")
}

func TestMGUSoundness(t *testing.T) {
	x := term.NewVar("X")
	t1 := term.NewList(x, term.NewAtom("b"))
	t2 := term.NewList(term.NewAtom("a"), term.NewVar("Y"))
	sub, ok := Unify(t1, t2)
	require.True(t, ok, "unify(%s, %s) should succeed", t1, t2)
	assert.Equal(t, Apply(sub, t1).String(), Apply(sub, t2).String())
}

func TestUnifyAtomsModuloQuoting(t *testing.T) {
	_, ok := Unify(term.NewAtom("a"), term.NewQuotedAtom("a"))
	assert.True(t, ok, "unify(a, 'a') should succeed")
	_, ok = Unify(term.NewAtom("a"), term.NewAtom("b"))
	assert.False(t, ok, "unify(a, b) should fail")
}

func TestUnifyLiteralArityMismatch(t *testing.T) {
	a := term.Literal{Name: "p", Args: []term.Term{term.NewAtom("a")}}
	b := term.Literal{Name: "p", Args: []term.Term{term.NewAtom("a"), term.NewAtom("b")}}
	_, ok := UnifyLiteral(a, b)
	assert.False(t, ok, "literals of different arity should not unify")
}

func TestComposeDetectsConflict(t *testing.T) {
	x := term.NewVar("X")
	s1 := Substitution{x.ID: term.NewAtom("a")}
	s2 := Substitution{x.ID: term.NewAtom("b")}
	_, ok := Compose(s1, s2)
	assert.False(t, ok, "composing conflicting bindings for the same variable should fail")
}

func TestComposeChainsBindings(t *testing.T) {
	x := term.NewVar("X")
	y := term.NewVar("Y")
	s1 := Substitution{x.ID: y}
	s2 := Substitution{y.ID: term.NewAtom("a")}
	composed, ok := Compose(s1, s2)
	require.True(t, ok, "Compose should succeed")
	assert.Equal(t, "a", Apply(composed, x).String())
}
