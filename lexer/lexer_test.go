// ==============================================================================================
// FILE: lexer/lexer_test.go
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeavyHelium/prolog-go/token"
)

func TestNextTokenCoversEveryClass(t *testing.T) {
	input := `parent(X, 'Maria', 42) :- not(q(_)), true. % trailing comment
/* block
comment */
[1, 2]`

	want := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.ATOM, "parent"},
		{token.LPAREN, "("},
		{token.VARIABLE, "X"},
		{token.COMMA, ","},
		{token.QUOTED_ATOM, "'Maria'"},
		{token.COMMA, ","},
		{token.INTEGER, "42"},
		{token.RPAREN, ")"},
		{token.IMPLICATION, ":-"},
		{token.NOT, "not"},
		{token.LPAREN, "("},
		{token.ATOM, "q"},
		{token.LPAREN, "("},
		{token.WILDCARD, "_"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.COMMA, ","},
		{token.TRUE, "true"},
		{token.PERIOD, "."},
		{token.LBRACKET, "["},
		{token.INTEGER, "1"},
		{token.COMMA, ","},
		{token.INTEGER, "2"},
		{token.RBRACKET, "]"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, w := range want {
		got := l.NextToken()
		require.Equal(t, w.typ, got.Type, "token %d", i)
		require.Equal(t, w.literal, got.Literal, "token %d", i)
	}
}

func TestKeywordVsAtom(t *testing.T) {
	toks := Tokenize("not true notx truely.")
	got := []token.TokenType{toks[0].Type, toks[1].Type, toks[2].Type, toks[3].Type}
	want := []token.TokenType{token.NOT, token.TRUE, token.ATOM, token.ATOM}
	assert.Equal(t, want, got)
}

func TestWildcardVsVariable(t *testing.T) {
	toks := Tokenize("_ _X X1")
	assert.Equal(t, token.WILDCARD, toks[0].Type, "_ should be WILDCARD")
	assert.Equal(t, token.VARIABLE, toks[1].Type, "_X should be VARIABLE")
	assert.Equal(t, "_X", toks[1].Literal)
	assert.Equal(t, token.VARIABLE, toks[2].Type, "X1 should be VARIABLE")
	assert.Equal(t, "X1", toks[2].Literal)
}

func TestIllegalCharacterReportsRemainingPrefix(t *testing.T) {
	toks := Tokenize("parent(X) ~ foo")
	last := toks[len(toks)-1]
	require.Equal(t, token.ILLEGAL, last.Type)
	assert.Equal(t, "~ foo", last.Literal)
}

func TestUnterminatedQuotedAtomIsIllegal(t *testing.T) {
	toks := Tokenize("'unterminated")
	last := toks[len(toks)-1]
	assert.Equal(t, token.ILLEGAL, last.Type)
}
