// ==============================================================================================
// FILE: unify/unify.go
// ==============================================================================================
// PACKAGE: unify
// PURPOSE: Most-general-unifier computation, substitution application, and substitution
//          composition — spec.md §4.3, with the occurs check always enabled (soundness over
//          performance, as §4.3 mandates). This is the one component spec.md and SPEC_FULL.md
//          agree stays on the standard library: there is no third-party library in the pack for
//          "compute an MGU over a hand-rolled term sum", only general-purpose data structures.
// ==============================================================================================

package unify

import "github.com/HeavyHelium/prolog-go/term"

// Substitution is a finite, persistent mapping from variable identity to
// term. It is never mutated in place after being handed to a caller — every
// operation below returns a new Substitution, per spec.md §5's "value-like"
// discipline.
type Substitution map[int64]term.Term

// Empty is the identity substitution.
func Empty() Substitution { return Substitution{} }

func extend(s Substitution, id int64, t term.Term) Substitution {
	out := make(Substitution, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[id] = t
	return out
}

// Apply resolves every bound variable in t, recursively, under s. An
// unbound variable is returned unchanged, exactly as spec.md §4.3 specifies.
func Apply(s Substitution, t term.Term) term.Term {
	switch v := t.(type) {
	case *term.Var:
		if bound, ok := s[v.ID]; ok {
			return Apply(s, bound)
		}
		return v
	case *term.List:
		if len(v.Elems) == 0 {
			return v
		}
		elems := make([]term.Term, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = Apply(s, e)
		}
		return &term.List{Elems: elems}
	default:
		return t
	}
}

// ApplyLiteral applies s to every argument of lit.
func ApplyLiteral(s Substitution, lit term.Literal) term.Literal {
	if len(lit.Args) == 0 {
		return lit
	}
	args := make([]term.Term, len(lit.Args))
	for i, a := range lit.Args {
		args[i] = Apply(s, a)
	}
	return term.Literal{Name: lit.Name, Args: args, Negated: lit.Negated}
}

// ApplyConjunction applies s to every literal of c.
func ApplyConjunction(s Substitution, c term.Conjunction) term.Conjunction {
	if len(c) == 0 {
		return c
	}
	out := make(term.Conjunction, len(c))
	for i, lit := range c {
		out[i] = ApplyLiteral(s, lit)
	}
	return out
}

// Unify computes the MGU of t1 and t2, or reports failure. It is the
// Robinson-style algorithm of spec.md §4.3: atoms compare by name (modulo
// quoting, via term.AtomEqual), variables bind (subject to the occurs
// check), lists unify element-wise, and any other pairing fails.
func Unify(t1, t2 term.Term) (Substitution, bool) {
	return unify(t1, t2, Empty())
}

func unify(t1, t2 term.Term, sub Substitution) (Substitution, bool) {
	t1 = Apply(sub, t1)
	t2 = Apply(sub, t2)

	if v, ok := t1.(*term.Var); ok {
		return unifyVar(v, t2, sub)
	}
	if v, ok := t2.(*term.Var); ok {
		return unifyVar(v, t1, sub)
	}

	switch a := t1.(type) {
	case *term.Atom:
		b, ok := t2.(*term.Atom)
		if !ok || !term.AtomEqual(a, b) {
			return nil, false
		}
		return sub, true
	case *term.List:
		b, ok := t2.(*term.List)
		if !ok {
			return nil, false
		}
		return unifyTermSlices(a.Elems, b.Elems, sub)
	default:
		return nil, false
	}
}

func unifyVar(v *term.Var, t term.Term, sub Substitution) (Substitution, bool) {
	if other, ok := t.(*term.Var); ok && other.ID == v.ID {
		return sub, true
	}
	if occurs(v, t) {
		return nil, false
	}
	return extend(sub, v.ID, t), true
}

// occurs implements spec.md §4.3's occurs check: a variable occurs in a term
// when the term is that variable, or is a list any of whose elements
// contain it. Its argument is always already substitution-applied by the
// caller, so bound variables have already been resolved away.
func occurs(v *term.Var, t term.Term) bool {
	switch x := t.(type) {
	case *term.Var:
		return x.ID == v.ID
	case *term.List:
		for _, e := range x.Elems {
			if occurs(v, e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func unifyTermSlices(a, b []term.Term, sub Substitution) (Substitution, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	cur := sub
	for i := range a {
		next, ok := unify(a[i], b[i], cur)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// UnifyLiteral unifies two literals structurally: same name, same arity,
// then unify_list over the arguments (spec.md §4.3's unify_pred). It ignores
// the Negated flag — NAF dispatch is the resolution engine's job, not
// unification's (spec §4.4).
func UnifyLiteral(a, b term.Literal) (Substitution, bool) {
	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return nil, false
	}
	return unifyTermSlices(a.Args, b.Args, Empty())
}

// Compose computes σ such that σ(t) = σ2(σ1(t)) for every term t (spec.md
// §4.3). Each of σ1's bindings is re-applied through σ2; any variable σ2
// also binds is merged by unifying the two resulting terms, so that
// disagreement between the two substitutions on a shared variable is
// reported as failure rather than silently overwritten.
func Compose(s1, s2 Substitution) (Substitution, bool) {
	result := make(Substitution, len(s1)+len(s2))
	for id, t := range s1 {
		result[id] = Apply(s2, t)
	}
	ok := true
	for id, t := range s2 {
		if existing, already := result[id]; already {
			var merged Substitution
			merged, ok = unify(existing, Apply(s2, t), result)
			if !ok {
				return nil, false
			}
			result = merged
			continue
		}
		result[id] = t
	}
	return result, true
}
