// Package parser implements a recursive-descent parser for L.
//
// The parser consumes the lexer's token stream and builds the ast.Program
// defined by internal/ast. It never panics: on a grammar violation it
// records a diagnostic and resynchronizes — skipping ahead to the next ";"
// at the top level, or skipping a single token inside a block — so that one
// parse pass can surface as many independent syntax problems as possible,
// the way the teacher's Parser.Errors accumulates across parser_*.go call
// sites without ever aborting early.
package parser

import (
	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/diag"
	"github.com/lclang/lcc/internal/token"
)

// Parser holds the token stream and cursor for one parse.
type Parser struct {
	tokens []token.Token
	pos    int
	sink   diag.Sink
}

// Parse builds an ast.Program from tokens (as produced by lexer.Tokenize)
// and returns the syntactic diagnostics found along the way. The returned
// Program is always non-nil, even when diagnostics were recorded — the
// Driver still runs semantic analysis over a partial tree, and only code
// generation is skipped when diagnostics are present.
func Parse(tokens []token.Token) (*ast.Program, []diag.Diagnostic) {
	p := &Parser{tokens: tokens, pos: 0, sink: diag.NewMemorySink()}
	program := p.parseProgram()
	return program, p.sink.All()
}

// cur returns the token under the cursor.
func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

// peekAt returns the token offset positions ahead of the cursor, clamped to
// the final (EOF) token.
func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		idx = len(p.tokens) - 1
	}
	return p.tokens[idx]
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// atEnd reports whether the cursor has reached EOF.
func (p *Parser) atEnd() bool {
	return p.cur().Kind == token.EOF
}

// errorf records a syntactic diagnostic at the current token's position.
func (p *Parser) errorf(format string, args ...any) {
	t := p.cur()
	p.sink.Emit(diag.New(diag.Syntax, t.Line, t.Column, format, args...))
}

// expectOperator consumes the current token if it is the Operator lexeme
// wanted; otherwise it records a missing-delimiter diagnostic and leaves
// the cursor where it is so the caller's resync logic can take over.
func (p *Parser) expectOperator(lexeme string) bool {
	if p.cur().Kind == token.Operator && p.cur().Lexeme == lexeme {
		p.advance()
		return true
	}
	p.errorf("Expected '%s', got '%s'", lexeme, p.cur().Lexeme)
	return false
}

// expectKeyword consumes the current token if it is the Keyword lexeme
// wanted; otherwise records a diagnostic.
func (p *Parser) expectKeyword(lexeme string) bool {
	if p.cur().Kind == token.Keyword && p.cur().Lexeme == lexeme {
		p.advance()
		return true
	}
	p.errorf("Expected '%s', got '%s'", lexeme, p.cur().Lexeme)
	return false
}

// expectIdentifier consumes and returns the current token's lexeme if it
// is an Identifier; otherwise records a diagnostic and returns "".
func (p *Parser) expectIdentifier() string {
	if p.cur().Kind == token.Identifier {
		return p.advance().Lexeme
	}
	p.errorf("Expected identifier, got '%s'", p.cur().Lexeme)
	return ""
}

// resyncTopLevel advances past the offending construct by skipping to the
// next top-level ";" (consuming it) or to EOF, matching spec §4.2's
// top-level resynchronization rule.
func (p *Parser) resyncTopLevel() {
	for !p.atEnd() {
		if p.cur().Kind == token.Operator && p.cur().Lexeme == ";" {
			p.advance()
			return
		}
		p.advance()
	}
}

// resyncBlock skips exactly one token, matching spec §4.2's in-block
// resynchronization rule.
func (p *Parser) resyncBlock() {
	if !p.atEnd() {
		p.advance()
	}
}

// parseProgram parses { program_element }.
func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{
		Functions: make([]*ast.Function, 0),
		Globals:   make([]ast.Stmt, 0),
	}
	for !p.atEnd() {
		if p.isFunctionStart() {
			program.Functions = append(program.Functions, p.parseFunction())
			continue
		}
		stmt, ok := p.parseStatement(true)
		if ok && stmt != nil {
			program.Globals = append(program.Globals, stmt)
		}
	}
	return program
}

// isFunctionStart implements spec §4.2's function-vs-assignment
// disambiguation: the current token is an Identifier and the next token is
// "(".
func (p *Parser) isFunctionStart() bool {
	return p.cur().Kind == token.Identifier &&
		p.peekAt(1).Kind == token.Operator && p.peekAt(1).Lexeme == "("
}
