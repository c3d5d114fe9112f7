// ==============================================================================================
// FILE: term/term.go
// ==============================================================================================
// PACKAGE: term
// PURPOSE: The data model of spec.md §3 — variables, atoms, lists, literals, clauses. In this
//          domain a term is simultaneously syntax and runtime value (Prolog has no separate
//          "evaluated form" the way an expression language does), so this package plays the role
//          the teacher's "ast" (syntax tree) and "object" (runtime value) packages play combined.
// ==============================================================================================

package term

import "sync/atomic"

// Term is the tagged sum of spec.md §3: Variable | Atom | List. Everything
// downstream — unification, substitution, resolution — pattern-matches on
// this interface via a type switch, never a class hierarchy.
type Term interface {
	isTerm()
	String() string
}

// Var is a logic variable. Two variables are the same logical variable only
// when their ID is equal — the spelling (Name) is for display only. This is
// what makes "hashed by identity, not by name" (spec §3 Invariants) true:
// fresh copies of a clause get new IDs even though the Name is unchanged.
type Var struct {
	ID   int64
	Name string
}

func (*Var) isTerm() {}
func (v *Var) String() string {
	return v.Name
}

// Atom is a symbolic constant. Quoted records whether the source spelled it
// with surrounding single quotes — purely cosmetic, used only by String() to
// round-trip the original notation. Equality (see AtomEqual below) never
// looks at Quoted: 'a' and a are the same atom per
// spec §3 Invariants and §8's testable property.
//
// Integers are represented as Atoms (spec §3: "Integers are carried as atoms
// in the core"); IsInt records that the Name is a digit-run so the parser
// doesn't need a second numeric type, and so printing never requotes a
// number.
type Atom struct {
	Name   string
	Quoted bool
	IsInt  bool
}

func (*Atom) isTerm() {}

func (a *Atom) String() string {
	if a.Quoted {
		return "'" + a.Name + "'"
	}
	return a.Name
}

// NewAtom builds a plain, unquoted atom (e.g. for internally constructed
// terms such as list functors).
func NewAtom(name string) *Atom { return &Atom{Name: name} }

// NewQuotedAtom builds an atom that should print with surrounding quotes.
func NewQuotedAtom(name string) *Atom { return &Atom{Name: name, Quoted: true} }

// NewIntAtom builds an atom carrying an integer literal's digits.
func NewIntAtom(digits string) *Atom { return &Atom{Name: digits, IsInt: true} }

// AtomEqual implements spec.md §3's atom equality: two atoms are equal when
// their names are equal, tolerating one level of surrounding quotes — which,
// since Quoted is cosmetic and Name never includes the quote characters, is
// simply name equality.
func AtomEqual(a, b *Atom) bool {
	return a.Name == b.Name
}

// List is an ordered, finite sequence of terms. Lists nest arbitrarily and
// also serve as the argument tuple of a Literal (spec §3).
type List struct {
	Elems []Term
}

func (*List) isTerm() {}

func (l *List) String() string {
	s := "["
	for i, e := range l.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

// NewList builds a List term from the given elements.
func NewList(elems ...Term) *List { return &List{Elems: elems} }

// varCounter is the monotonic source of fresh variable identities used by
// clause instantiation (spec §9, Open Question 1). It is package-level
// because variable freshness must be unique across the whole process, not
// just within one proof — two unrelated queries must never mint the same ID.
// It is an atomic.Int64, not a plain int64: cmd/prolog's `check` subcommand
// parses multiple files concurrently via errgroup, so NewVar is called from
// multiple goroutines at once, and a bare increment would let two racing
// calls hand out the same ID to two distinct variables.
var varCounter atomic.Int64

// NewVar mints a fresh variable with the given display name. Used both by
// the parser (one fresh Var per distinct name written in a clause) and by
// the resolution engine (one fresh Var per name on every clause instantiation).
func NewVar(name string) *Var {
	id := varCounter.Add(1)
	return &Var{ID: id, Name: name}
}
