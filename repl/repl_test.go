// ==============================================================================================
// FILE: repl/repl_test.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: Exercises the toplevel's fact/query convention end-to-end against a real Driver.
// ==============================================================================================

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HeavyHelium/prolog-go/driver"
	"github.com/HeavyHelium/prolog-go/replcolor"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	d, err := driver.New(nil)
	require.NoError(t, err)
	pal := replcolor.New(false)
	var out bytes.Buffer
	Start(strings.NewReader(input), &out, d, pal)
	return out.String()
}

func TestReplAddsFactsAndAnswersQuery(t *testing.T) {
	output := runSession(t, "parent(pesho, gosho).\n?- parent(X, Y).\n.exit")
	require.Contains(t, output, "X = pesho, Y = gosho")
}

func TestReplUndefinedPredicateReportsError(t *testing.T) {
	output := runSession(t, "?- ancestor.\n.exit")
	require.Contains(t, output, `In query: No such predicate: ancestor\0`)
}

func TestReplClearResetsKnowledgeBase(t *testing.T) {
	output := runSession(t, "p(a).\n.clear\n?- p(X).\n.exit")
	require.Contains(t, output, `No such predicate: p\1`)
}

func TestReplRejectsBadClauseWithoutCorruptingState(t *testing.T) {
	output := runSession(t, "p(a).\np(\n?- p(X).\n.exit")
	require.Contains(t, output, "In knowledge base: ")
	require.Contains(t, output, "X = a")
}

func TestReplUnknownCommand(t *testing.T) {
	output := runSession(t, ".bogus\n.exit")
	require.Contains(t, output, "Unknown command")
}

func TestReplTraceTogglesOnAndOff(t *testing.T) {
	output := runSession(t, ".trace\n.trace\n.exit")
	require.Contains(t, output, "Proof-search trace ENABLED")
	require.Contains(t, output, "Proof-search trace DISABLED")
}
