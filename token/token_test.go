// ==============================================================================================
// FILE: token/token_test.go
// ==============================================================================================

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		want  TokenType
		ok    bool
	}{
		{"not", NOT, true},
		{"true", TRUE, true},
		{"parent", "", false},
	}
	for _, c := range cases {
		got, ok := LookupKeyword(c.ident)
		assert.Equal(t, c.ok, ok, "LookupKeyword(%q) ok", c.ident)
		if ok {
			assert.Equal(t, c.want, got, "LookupKeyword(%q)", c.ident)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "VARIABLE", VARIABLE.String())
}
