// ==============================================================================================
// FILE: engine/engine.go
// ==============================================================================================
// PACKAGE: engine
// PURPOSE: The SLD resolution engine with negation-as-failure (spec §4.4). This is the
//          evaluator of the pipeline — the teacher's evaluator.Eval walks an AST and produces
//          object.Object values; AnswerQuery walks a goal conjunction and produces answer
//          substitutions, by the same "recursive case analysis with an environment" shape.
// ==============================================================================================

package engine

import (
	"go.uber.org/zap"

	"github.com/HeavyHelium/prolog-go/kb"
	"github.com/HeavyHelium/prolog-go/term"
	"github.com/HeavyHelium/prolog-go/unify"
)

// Engine answers conjunctive goals against a fixed, read-only knowledge
// base (spec §3 Lifecycle, §5).
type Engine struct {
	kb           *kb.KnowledgeBase
	maxSolutions int
	tracer       *zap.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMaxSolutions caps the number of top-level answers AnswerQuery
// collects before returning, guarding against the documented
// non-termination risk of left-recursive programs (spec §4.4
// "Termination") without changing the answer set for terminating programs.
// n <= 0 means unbounded.
func WithMaxSolutions(n int) Option {
	return func(e *Engine) { e.maxSolutions = n }
}

// WithTracer attaches a zap.Logger that receives structured proof-search
// events (SPEC_FULL.md §4.4). Passing nil is equivalent to omitting the
// option — New falls back to a no-op logger.
func WithTracer(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.tracer = l
		}
	}
}

// New builds an Engine over db.
func New(db *kb.KnowledgeBase, opts ...Option) *Engine {
	e := &Engine{kb: db, tracer: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTracer swaps the logger a live Engine reports proof-search events to,
// letting the REPL's ".trace" toggle take effect without reloading the
// knowledge base. Passing nil falls back to a no-op logger.
func (e *Engine) SetTracer(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.tracer = l
}

// AnswerQuery implements spec §4.4's top-level contract: answer_query(goal)
// returns one answer conjunction per successful left-to-right depth-first
// derivation. A nil/empty slice (with nil error) means the goal failed —
// that is not an error (spec §7, "No solution").
func (e *Engine) AnswerQuery(goal term.Conjunction) ([]term.Conjunction, error) {
	var answers []term.Conjunction
	_, err := e.solve(goal, 0, unify.Empty(), func(sigma unify.Substitution) bool {
		answers = append(answers, unify.ApplyConjunction(sigma, goal))
		e.tracer.Debug("answer found", zap.String("binding", answers[len(answers)-1].String()))
		if e.maxSolutions > 0 && len(answers) >= e.maxSolutions {
			return false
		}
		return true
	})
	if err != nil {
		return nil, wrap(err, "answering query")
	}
	return answers, nil
}

// solve proves goal[i:] under the running substitution sigma, invoking emit
// once per successful derivation of the whole conjunction. emit returns
// false to stop the search early (used by AnswerQuery's max-solutions cap);
// solve propagates that signal up through its recursion and loops so that
// an early stop unwinds the whole search, not just the innermost frame.
func (e *Engine) solve(goal term.Conjunction, i int, sigma unify.Substitution, emit func(unify.Substitution) bool) (bool, error) {
	if i == len(goal) {
		return emit(sigma), nil
	}

	lit := goal[i]
	litApplied := unify.ApplyLiteral(sigma, lit)

	if lit.Negated {
		return e.solveNegated(goal, i, sigma, litApplied, emit)
	}
	return e.solvePositive(goal, i, sigma, litApplied, emit)
}

// solvePositive implements spec §4.4 step 3: collect candidate head
// instantiations for the literal, and for each one that unifies, recurse on
// the next position with the composed substitution.
func (e *Engine) solvePositive(goal term.Conjunction, i int, sigma unify.Substitution, lit term.Literal, emit func(unify.Substitution) bool) (bool, error) {
	heads, err := e.querySingle(lit)
	if err != nil {
		return false, err
	}

	keepGoing := true
	for _, h := range heads {
		if !keepGoing {
			break
		}
		theta, ok := unify.UnifyLiteral(h, lit)
		if !ok {
			continue
		}
		composed, ok := unify.Compose(sigma, theta)
		if !ok {
			continue
		}
		e.tracer.Debug("clause head matched", zap.String("literal", lit.String()), zap.String("head", h.String()))
		cont, err := e.solve(goal, i+1, composed, emit)
		if err != nil {
			return false, err
		}
		keepGoing = cont
	}
	return keepGoing, nil
}

// solveNegated implements spec §4.4 step 4 and the standard NAF semantics
// spec.md §9 Open Question 2 recommends: the literal succeeds iff the
// entire positive subproof — not merely "some clause head unified" — yields
// zero answers.
func (e *Engine) solveNegated(goal term.Conjunction, i int, sigma unify.Substitution, lit term.Literal, emit func(unify.Substitution) bool) (bool, error) {
	positive := lit
	positive.Negated = false
	heads, err := e.querySingle(positive)
	if err != nil {
		return false, err
	}
	if len(heads) > 0 {
		e.tracer.Debug("NAF failed", zap.String("literal", lit.String()))
		return true, nil // this branch contributes nothing; search continues elsewhere
	}
	e.tracer.Debug("NAF succeeded", zap.String("literal", lit.String()))
	return e.solve(goal, i+1, sigma, emit)
}

// querySingle implements spec §4.4's per-literal contract and "clause
// expansion": every clause with a matching head functor name is tried, in
// insertion order; facts unify directly, rules recurse into their tail and
// emit one result per tail solution. A functor absent from the knowledge
// base is a fatal UnknownPredicateError, not a silent failure (spec §4.4).
func (e *Engine) querySingle(g term.Literal) ([]term.Literal, error) {
	clauses, ok := e.kb.Lookup(g.Name)
	if !ok {
		return nil, &UnknownPredicateError{Name: g.Name, Arity: g.Arity()}
	}

	var results []term.Literal
	for _, c := range clauses {
		inst := c.Instantiate()
		thetaHead, ok := unify.UnifyLiteral(inst.Head, g)
		if !ok {
			continue
		}

		if inst.IsFact() {
			results = append(results, unify.ApplyLiteral(thetaHead, g))
			continue
		}

		headApplied := unify.ApplyLiteral(thetaHead, inst.Head)
		tailApplied := unify.ApplyConjunction(thetaHead, inst.Tail)
		_, err := e.solve(tailApplied, 0, unify.Empty(), func(sigma unify.Substitution) bool {
			results = append(results, unify.ApplyLiteral(sigma, headApplied))
			return true // exhaustive: query_single always collects every instantiation
		})
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
