// ==============================================================================================
// FILE: driver/driver.go
// ==============================================================================================
// PACKAGE: driver
// PURPOSE: The facade spec §4.5 describes — "load a program, then answer queries against it" —
//          wiring lexer/parser/term/unify/engine into the one stateful object the REPL and CLI
//          talk to, the way theRebelliousNerd-codenerd's internal/runner wires its pipeline
//          stages behind one entry point for cmd/nerd to call.
// ==============================================================================================

package driver

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HeavyHelium/prolog-go/engine"
	"github.com/HeavyHelium/prolog-go/internal/config"
	"github.com/HeavyHelium/prolog-go/internal/tracelog"
	"github.com/HeavyHelium/prolog-go/kb"
	"github.com/HeavyHelium/prolog-go/parser"
	"github.com/HeavyHelium/prolog-go/term"
)

// Driver holds one loaded program and answers queries against it (spec §3
// Lifecycle: "load, then query, any number of times"). It is not safe for
// concurrent use — spec §5 reserves concurrency for the CLI's file-loading
// stage only, never for resolution itself.
type Driver struct {
	cfg       *config.Config
	logger    *zap.Logger
	sessionID uuid.UUID

	db     *kb.KnowledgeBase
	engine *engine.Engine
}

// New builds a Driver from cfg. A nil cfg is equivalent to config.Default().
// The returned Driver has no program loaded yet; LoadProgram must be called
// before Answer.
func New(cfg *config.Config) (*Driver, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger, err := tracelog.New(cfg.Trace)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		cfg:       cfg,
		logger:    logger,
		sessionID: uuid.New(),
	}
	logger.Debug("driver session started", zap.String("session_id", d.sessionID.String()))
	return d, nil
}

// SessionID identifies this Driver instance for trace correlation
// (SPEC_FULL.md dependency ledger); it has no bearing on resolution semantics.
func (d *Driver) SessionID() uuid.UUID { return d.sessionID }

// LoadProgram parses text as a whole program (spec §4.2) and, on success,
// replaces any previously loaded knowledge base. A parse failure leaves the
// Driver's existing program (if any) untouched and returns an *Error with
// Prefix "In knowledge base: " (spec §7).
func (d *Driver) LoadProgram(text string) error {
	db, err := parser.ParseProgram(text)
	if err != nil {
		d.logger.Debug("program load failed", zap.Error(err))
		return wrapError("In knowledge base: ", err)
	}
	d.db = db
	opts := []engine.Option{engine.WithTracer(d.logger)}
	if d.cfg.MaxSolutions > 0 {
		opts = append(opts, engine.WithMaxSolutions(d.cfg.MaxSolutions))
	}
	d.engine = engine.New(db, opts...)
	d.logger.Debug("program loaded", zap.Int("clauses", db.Len()), zap.Strings("functors", db.Functors()))
	return nil
}

// Loaded reports whether a program has been successfully loaded.
func (d *Driver) Loaded() bool { return d.engine != nil }

// SetTrace toggles structured proof-search logging live, rebuilding the
// driver's logger and, if a program is already loaded, swapping the
// running Engine's tracer in place — no reload of the knowledge base is
// needed (SPEC_FULL.md §4.5, the REPL's ".trace" command).
func (d *Driver) SetTrace(trace bool) error {
	logger, err := tracelog.New(trace)
	if err != nil {
		return err
	}
	d.cfg.Trace = trace
	d.logger = logger
	if d.engine != nil {
		d.engine.SetTracer(logger)
	}
	return nil
}

// Trace reports whether structured proof-search logging is currently on.
func (d *Driver) Trace() bool { return d.cfg.Trace }

// Answer parses queryText as a single goal (spec §4.2) and runs it against
// the currently loaded program (spec §4.4), returning the exact rendered
// string spec §4.5/§6 describes: "true." with bindings, "false.", or a
// fatal error message prefixed "In query: ". Answer never panics on an
// unloaded Driver; it reports the same "In query: " error a resolution
// failure would.
func (d *Driver) Answer(queryText string) string {
	goal, err := parser.ParseGoal(queryText)
	if err != nil {
		d.logger.Debug("query parse failed", zap.Error(err))
		return wrapError("In query: ", err).Error()
	}
	if d.engine == nil {
		return wrapError("In query: ", errNoProgram).Error()
	}
	answers, err := d.engine.AnswerQuery(goal)
	if err != nil {
		d.logger.Debug("query resolution failed", zap.Error(err))
		return wrapError("In query: ", err).Error()
	}
	return FormatAnswer(goal, answers)
}

// FormatAnswer renders an AnswerQuery result exactly per spec §4.5/§6:
//
//	no answers           -> "false."
//	answers, no variables -> "true."
//	answers, with variables -> "true." then one "X = t, Y = u" line per answer, joined by "\n"
func FormatAnswer(goal term.Conjunction, answers []term.Conjunction) string {
	if len(answers) == 0 {
		return "false."
	}
	names := goal.FreeVarNames()
	if len(names) == 0 {
		return "true."
	}
	lines := make([]string, len(answers)+1)
	lines[0] = "true."
	for i, ans := range answers {
		bindings := term.ExtractBindings(goal, ans)
		parts := make([]string, len(names))
		for j, name := range names {
			val, ok := bindings[name]
			if !ok {
				val = term.NewVar(name)
			}
			parts[j] = name + " = " + val.String()
		}
		lines[i+1] = strings.Join(parts, ", ")
	}
	return strings.Join(lines, "\n")
}
