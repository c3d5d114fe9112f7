// ==============================================================================================
// FILE: parser/parser_test.go
// ==============================================================================================

package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeavyHelium/prolog-go/token"
)

func TestParseProgramFactsAndRules(t *testing.T) {
	src := `parent('Maria', 'Gosho').
ancestor(X, Y) :- parent(X, Y).
ancestor(X, Z) :- parent(X, Y), ancestor(Y, Z).`

	db, err := ParseProgram(src)
	require.NoError(t, err)
	assert.Equal(t, 3, db.Len())
	clauses, ok := db.Lookup("ancestor")
	require.True(t, ok)
	require.Len(t, clauses, 2)
	assert.False(t, clauses[0].IsFact(), "ancestor/2 clauses should be rules")
}

func TestParseProgramRejectsZeroArityClauseHead(t *testing.T) {
	_, err := ParseProgram(`ancestor.`)
	require.Error(t, err, "expected a syntax error for a zero-arity clause head")
	cause := errors.Cause(err)
	se, ok := cause.(*SyntaxError)
	require.True(t, ok, "expected *SyntaxError, got %T", cause)
	assert.Equal(t, token.LPAREN, se.Expected)
}

func TestParseGoalAllowsZeroArityLiteral(t *testing.T) {
	goal, err := ParseGoal(`ancestor.`)
	require.NoError(t, err)
	require.Len(t, goal, 1)
	assert.Equal(t, "ancestor", goal[0].Name)
	assert.Equal(t, 0, goal[0].Arity())
}

func TestParseGoalNegation(t *testing.T) {
	goal, err := ParseGoal(`p(X), not(q(X)).`)
	require.NoError(t, err)
	require.Len(t, goal, 2)
	assert.True(t, goal[1].Negated, "expected second literal negated")
}

func TestParseGoalList(t *testing.T) {
	goal, err := ParseGoal(`p([1, 2, X]).`)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, X]", goal[0].Args[0].String())
}

func TestRoundTripParsePrettyPrint(t *testing.T) {
	src := "ancestor(X, Y) :- parent(X, Y)."
	db, err := ParseProgram(src)
	require.NoError(t, err)
	clauses, _ := db.Lookup("ancestor")
	assert.Equal(t, src, clauses[0].String())
}

func TestParseProgramLexicalError(t *testing.T) {
	_, err := ParseProgram(`p(X) ~ q.`)
	require.Error(t, err, "expected a lexical error")
	assert.Contains(t, errors.Cause(err).Error(), "Invalid syntax")
}

func TestSameNameSameVariableWithinClause(t *testing.T) {
	db, err := ParseProgram(`eq(X, X).`)
	require.NoError(t, err)
	clauses, _ := db.Lookup("eq")
	head := clauses[0].Head
	assert.Same(t, head.Args[0], head.Args[1], "both occurrences of X should be the same *term.Var pointer")
}
