// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser over the Lexer's token stream (spec §4.2). Converts program
//          source into a kb.KnowledgeBase of term.Clause, and query source into a single
//          term.Conjunction goal. No Pratt parsing is needed here — unlike the teacher's
//          expression grammar, this grammar has no operator precedence, only nesting.
// ==============================================================================================

package parser

import (
	"github.com/HeavyHelium/prolog-go/kb"
	"github.com/HeavyHelium/prolog-go/lexer"
	"github.com/HeavyHelium/prolog-go/term"
	"github.com/HeavyHelium/prolog-go/token"
)

// argToken is a synthetic token kind used only in error messages, for the
// "argument" grammar production, which accepts several concrete token kinds
// (VARIABLE, WILDCARD, ATOM, QUOTED_ATOM, INTEGER, LBRACKET) rather than one.
const argToken token.TokenType = "ARGUMENT"

// Parser holds the state of one parse: the full token array and a cursor.
// vars maps a variable's spelling to the single *term.Var instance shared by
// every occurrence of that name within the clause or goal currently being
// parsed (spec §3: identity, not spelling, governs unification — but within
// one clause, same spelling must mean the same variable).
type Parser struct {
	tokens []token.Token
	pos    int
	vars   map[string]*term.Var
}

func newParser(source string) (*Parser, error) {
	toks := lexer.Tokenize(source)
	if n := len(toks); n > 0 && toks[n-1].Type == token.ILLEGAL {
		return nil, &LexicalError{Prefix: toks[n-1].Literal}
	}
	return &Parser{tokens: toks}, nil
}

func (p *Parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token.Token{Type: token.EOF}
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) expect(kind token.TokenType) error {
	if p.cur().Type != kind {
		return &SyntaxError{Expected: kind, Got: p.cur().Type, Line: p.cur().Line, Column: p.cur().Column}
	}
	p.advance()
	return nil
}

func (p *Parser) expectedErr(kind token.TokenType) error {
	return &SyntaxError{Expected: kind, Got: p.cur().Type, Line: p.cur().Line, Column: p.cur().Column}
}

func (p *Parser) resetVarScope() {
	p.vars = make(map[string]*term.Var)
}

// ----------------------------------------------------------------------------------------------
// program = { clause }
// ----------------------------------------------------------------------------------------------

// ParseProgram tokenizes and parses an entire program into a fresh
// knowledge base, in source order (spec §4.2, §4.5). The only public error
// condition is a fatal lexical or syntactic error; there is no partial
// result on failure.
func ParseProgram(source string) (*kb.KnowledgeBase, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	db := kb.New()
	for p.cur().Type != token.EOF {
		p.resetVarScope()
		clause, err := p.parseClause()
		if err != nil {
			return nil, wrap(err, "parsing clause")
		}
		db.Add(clause)
	}
	return db, nil
}

// ParseGoal tokenizes and parses a single query conjunction (spec §4.5).
func ParseGoal(source string) (term.Conjunction, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	p.resetVarScope()
	goal, err := p.parseConjunction()
	if err != nil {
		return nil, wrap(err, "parsing query")
	}
	if err := p.expect(token.PERIOD); err != nil {
		return nil, wrap(err, "parsing query")
	}
	if p.cur().Type != token.EOF {
		return nil, wrap(p.expectedErr(token.EOF), "parsing query")
	}
	return goal, nil
}

// ----------------------------------------------------------------------------------------------
// clause = fact | rule
// fact   = predicate "."
// rule   = predicate ":-" goal "."
// ----------------------------------------------------------------------------------------------

// parseClause speculatively parses a fact; on failure it rewinds the cursor
// and parses a rule instead (spec §4.2). A rule head must be a positive
// literal — parsePredicate never produces a Negated literal, so there is
// nothing further to check here.
func (p *Parser) parseClause() (term.Clause, error) {
	start := p.pos
	if c, err := p.tryParseFact(); err == nil {
		return c, nil
	}
	p.pos = start
	return p.parseRule()
}

func (p *Parser) tryParseFact() (term.Clause, error) {
	// Zero-argument predicates are accepted only in goals, not as clause
	// heads (spec §9, Open Question 3) — disambiguating the grammar the
	// way the design note recommends.
	head, err := p.parsePredicate(false)
	if err != nil {
		return term.Clause{}, err
	}
	if err := p.expect(token.PERIOD); err != nil {
		return term.Clause{}, err
	}
	return term.NewFact(head), nil
}

func (p *Parser) parseRule() (term.Clause, error) {
	head, err := p.parsePredicate(false)
	if err != nil {
		return term.Clause{}, err
	}
	if err := p.expect(token.IMPLICATION); err != nil {
		return term.Clause{}, err
	}
	tail, err := p.parseConjunction()
	if err != nil {
		return term.Clause{}, err
	}
	if err := p.expect(token.PERIOD); err != nil {
		return term.Clause{}, err
	}
	return term.NewRule(head, tail), nil
}

// ----------------------------------------------------------------------------------------------
// goal       = literal { "," literal }
// literal    = predicate | nf_literal
// nf_literal = "not" "(" predicate ")"
// ----------------------------------------------------------------------------------------------

func (p *Parser) parseConjunction() (term.Conjunction, error) {
	first, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	conj := term.Conjunction{first}
	for p.cur().Type == token.COMMA {
		p.advance()
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		conj = append(conj, lit)
	}
	return conj, nil
}

func (p *Parser) parseLiteral() (term.Literal, error) {
	if p.cur().Type == token.NOT {
		p.advance()
		if err := p.expect(token.LPAREN); err != nil {
			return term.Literal{}, err
		}
		inner, err := p.parsePredicate(true)
		if err != nil {
			return term.Literal{}, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return term.Literal{}, err
		}
		inner.Negated = true
		return inner, nil
	}
	return p.parsePredicate(true)
}

// ----------------------------------------------------------------------------------------------
// predicate = ATOM [ "(" arg_list ")" ]
// ----------------------------------------------------------------------------------------------

// parsePredicate parses a functor name with an optional argument list. When
// allowZeroArity is false (clause heads), the argument list is mandatory.
func (p *Parser) parsePredicate(allowZeroArity bool) (term.Literal, error) {
	tok := p.cur()
	if tok.Type != token.ATOM {
		return term.Literal{}, p.expectedErr(token.ATOM)
	}
	p.advance()

	if p.cur().Type == token.LPAREN {
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return term.Literal{}, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return term.Literal{}, err
		}
		return term.Literal{Name: tok.Literal, Args: args}, nil
	}

	if !allowZeroArity {
		return term.Literal{}, p.expectedErr(token.LPAREN)
	}
	return term.Literal{Name: tok.Literal}, nil
}

// ----------------------------------------------------------------------------------------------
// arg_list = argument { "," argument }
// argument = VARIABLE | WILDCARD | ATOM | QUOTED_ATOM | INTEGER | list
// list     = "[" [ argument { "," argument } ] "]"
// ----------------------------------------------------------------------------------------------

func (p *Parser) parseArgList() ([]term.Term, error) {
	first, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	args := []term.Term{first}
	for p.cur().Type == token.COMMA {
		p.advance()
		a, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

func (p *Parser) parseArgument() (term.Term, error) {
	tok := p.cur()
	switch tok.Type {
	case token.VARIABLE:
		p.advance()
		if v, ok := p.vars[tok.Literal]; ok {
			return v, nil
		}
		v := term.NewVar(tok.Literal)
		p.vars[tok.Literal] = v
		return v, nil
	case token.WILDCARD:
		p.advance()
		// Every wildcard occurrence is its own fresh variable — never
		// shared, unlike named variables (spec §3's FreeVars exclusion).
		return term.NewVar("_"), nil
	case token.ATOM:
		p.advance()
		return term.NewAtom(tok.Literal), nil
	case token.QUOTED_ATOM:
		p.advance()
		return term.NewQuotedAtom(unquote(tok.Literal)), nil
	case token.INTEGER:
		p.advance()
		return term.NewIntAtom(tok.Literal), nil
	case token.LBRACKET:
		return p.parseList()
	default:
		return nil, p.expectedErr(argToken)
	}
}

func (p *Parser) parseList() (term.Term, error) {
	if err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var elems []term.Term
	if p.cur().Type != token.RBRACKET {
		first, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		elems = append(elems, first)
		for p.cur().Type == token.COMMA {
			p.advance()
			e, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &term.List{Elems: elems}, nil
}

// unquote strips the surrounding single quotes off a QUOTED_ATOM lexeme.
func unquote(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
