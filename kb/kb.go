// ==============================================================================================
// FILE: kb/kb.go
// ==============================================================================================
// PACKAGE: kb
// PURPOSE: The clause database (spec §3's KnowledgeBase) — a mapping from functor name to the
//          ordered list of clauses with that head name. This plays the role the teacher's
//          object.Environment plays for variable scopes: an insertion-ordered lookup table that
//          the rest of the pipeline treats as read-only once built (spec §3 Lifecycle, §5).
// ==============================================================================================

package kb

import "github.com/HeavyHelium/prolog-go/term"

// KnowledgeBase stores clauses bucketed by head functor name, preserving
// insertion order within each bucket — the order spec.md §4.4 "Ordering"
// requires clauses to be tried in during resolution.
type KnowledgeBase struct {
	clauses map[string][]term.Clause
	order   []string // first-seen functor order, for deterministic iteration/debugging
}

// New returns an empty knowledge base.
func New() *KnowledgeBase {
	return &KnowledgeBase{clauses: make(map[string][]term.Clause)}
}

// Add appends a clause to the bucket for its head functor name, in source
// order (spec §4.2: "Clauses are added to the knowledge base in source order").
func (kb *KnowledgeBase) Add(c term.Clause) {
	name := c.Name()
	if _, ok := kb.clauses[name]; !ok {
		kb.order = append(kb.order, name)
	}
	kb.clauses[name] = append(kb.clauses[name], c)
}

// Lookup returns the clauses stored under name, and whether that functor
// name is known at all — a clause stored under one name is invisible to a
// lookup by any other name (spec §3 Invariants).
func (kb *KnowledgeBase) Lookup(name string) ([]term.Clause, bool) {
	clauses, ok := kb.clauses[name]
	return clauses, ok
}

// Functors returns the known functor names in first-insertion order.
func (kb *KnowledgeBase) Functors() []string {
	out := make([]string, len(kb.order))
	copy(out, kb.order)
	return out
}

// Len reports the total number of stored clauses.
func (kb *KnowledgeBase) Len() int {
	n := 0
	for _, cs := range kb.clauses {
		n += len(cs)
	}
	return n
}
