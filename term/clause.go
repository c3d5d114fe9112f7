// ==============================================================================================
// FILE: term/clause.go
// ==============================================================================================
// PACKAGE: term
// PURPOSE: Clause (fact or rule) and the fresh-variable-renaming step spec.md §4.4 and §9 require
//          before every use of a clause, so that one invocation's bindings never leak into
//          another (spec §3 Invariants, §9 Open Question 1).
// ==============================================================================================

package term

// Clause is a fact (empty Tail) or a rule (non-empty Tail) — spec §3.
type Clause struct {
	Head Literal
	Tail Conjunction
}

// NewFact builds a fact clause.
func NewFact(head Literal) Clause { return Clause{Head: head} }

// NewRule builds a rule clause.
func NewRule(head Literal, tail Conjunction) Clause { return Clause{Head: head, Tail: tail} }

// IsFact reports whether the clause has an empty tail.
func (c Clause) IsFact() bool { return len(c.Tail) == 0 }

// Name is the clause's head functor name — the key it is stored under in
// the knowledge base.
func (c Clause) Name() string { return c.Head.Name }

func (c Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	return c.Head.String() + " :- " + c.Tail.String() + "."
}

// Instantiate returns a copy of the clause with every variable replaced by a
// fresh one sharing its name. Variables repeated within the clause (the same
// *Var pointer, since the parser gives same-spelled variables in one clause
// shared identity) still share identity in the copy — a fresh *Var is minted
// once per distinct pointer and reused for every occurrence. This is the
// mechanism spec.md §4.4 calls "renaming of clause variables": it is what
// lets the same stored clause match multiple goals in one proof without the
// bindings from one match crossing into another.
func (c Clause) Instantiate() Clause {
	mapping := make(map[*Var]*Var)
	return Clause{
		Head: copyLiteral(c.Head, mapping),
		Tail: copyConjunction(c.Tail, mapping),
	}
}

func copyTerm(t Term, mapping map[*Var]*Var) Term {
	switch v := t.(type) {
	case *Var:
		if fresh, ok := mapping[v]; ok {
			return fresh
		}
		fresh := NewVar(v.Name)
		mapping[v] = fresh
		return fresh
	case *List:
		elems := make([]Term, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = copyTerm(e, mapping)
		}
		return &List{Elems: elems}
	case *Atom:
		return v
	default:
		return v
	}
}

func copyLiteral(lit Literal, mapping map[*Var]*Var) Literal {
	args := make([]Term, len(lit.Args))
	for i, a := range lit.Args {
		args[i] = copyTerm(a, mapping)
	}
	return Literal{Name: lit.Name, Args: args, Negated: lit.Negated}
}

func copyConjunction(conj Conjunction, mapping map[*Var]*Var) Conjunction {
	if len(conj) == 0 {
		return nil
	}
	out := make(Conjunction, len(conj))
	for i, lit := range conj {
		out[i] = copyLiteral(lit, mapping)
	}
	return out
}
