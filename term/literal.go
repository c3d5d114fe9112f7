// ==============================================================================================
// FILE: term/literal.go
// ==============================================================================================
// PACKAGE: term
// PURPOSE: Literal (predicate) and Conjunction, the two building blocks above terms that the
//          parser and resolution engine operate on (spec §3).
// ==============================================================================================

package term

import "strings"

// Literal is a functor applied to arguments — spec §3's "Literal (Predicate)".
// Negated marks an NAF literal; it may appear only inside a goal conjunction
// or rule tail, never as a fact or rule head (enforced by the parser).
type Literal struct {
	Name    string
	Args    []Term
	Negated bool
}

// Arity is the number of arguments.
func (p Literal) Arity() int { return len(p.Args) }

func (p Literal) String() string {
	var b strings.Builder
	if p.Negated {
		b.WriteString("not(")
	}
	b.WriteString(p.Name)
	if len(p.Args) > 0 {
		b.WriteByte('(')
		for i, a := range p.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	if p.Negated {
		b.WriteByte(')')
	}
	return b.String()
}

// Conjunction is an ordered sequence of literals — a rule tail or a query
// (spec §3).
type Conjunction []Literal

func (c Conjunction) String() string {
	parts := make([]string, len(c))
	for i, lit := range c {
		parts[i] = lit.String()
	}
	return strings.Join(parts, ", ")
}

// FreeVarNames returns the distinct user-written variable names the
// conjunction mentions, wildcard "_" excluded, in first-occurrence order.
// The driver uses this to decide which bindings to print in an answer line.
func (c Conjunction) FreeVarNames() []string {
	seen := make(map[string]bool)
	var names []string
	var walk func(t Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case *Var:
			if v.Name == "_" || seen[v.Name] {
				return
			}
			seen[v.Name] = true
			names = append(names, v.Name)
		case *List:
			for _, e := range v.Elems {
				walk(e)
			}
		}
	}
	for _, lit := range c {
		for _, a := range lit.Args {
			walk(a)
		}
	}
	return names
}

// ExtractBindings walks goal and its substituted counterpart ans
// position-by-position and returns, for each distinct user-written variable
// name in goal, the term it resolved to in ans. goal and ans must have the
// same shape (ans is always goal with a substitution applied, which never
// changes arity or list length — only spec.md §4.3's Apply guarantee). Only
// the first occurrence of a repeated variable name is recorded, matching
// FreeVarNames' first-occurrence semantics.
func ExtractBindings(goal, ans Conjunction) map[string]Term {
	bindings := make(map[string]Term)
	for i := range goal {
		if i >= len(ans) {
			break
		}
		bindArgs(goal[i].Args, ans[i].Args, bindings)
	}
	return bindings
}

func bindArgs(goalArgs, ansArgs []Term, bindings map[string]Term) {
	for i := range goalArgs {
		if i >= len(ansArgs) {
			return
		}
		bindTerm(goalArgs[i], ansArgs[i], bindings)
	}
}

func bindTerm(g, a Term, bindings map[string]Term) {
	switch gv := g.(type) {
	case *Var:
		if gv.Name == "_" {
			return
		}
		if _, exists := bindings[gv.Name]; !exists {
			bindings[gv.Name] = a
		}
	case *List:
		if av, ok := a.(*List); ok {
			bindArgs(gv.Elems, av.Elems, bindings)
		}
	}
}
