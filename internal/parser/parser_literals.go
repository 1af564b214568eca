package parser

import (
	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/token"
)

// booleanSpellings is the reserved spelling set for boolean literals. The
// lexer has no dedicated boolean token kind — "true"/"false" lex as plain
// Identifier tokens (spec §4.1 only classifies the fixed keyword set as
// Keyword) — so the parser recognizes them here, at the one place an
// identifier-shaped lexeme becomes a Literal instead of a Variable.
var booleanSpellings = map[string]bool{"true": true, "false": true}

// parseFactor parses:
//
//	factor := NUMBER | STRING | call_expr | IDENT ["[" expression "]"] | "(" expression ")"
func (p *Parser) parseFactor() ast.Expr {
	cur := p.cur()

	switch {
	case cur.Kind == token.Number:
		p.advance()
		return &ast.Literal{Raw: cur.Lexeme}

	case cur.Kind == token.String:
		p.advance()
		return &ast.Literal{Raw: cur.Lexeme}

	case cur.Kind == token.Keyword && cur.Lexeme == "call":
		return p.parseCall()

	case cur.Kind == token.Identifier && booleanSpellings[cur.Lexeme]:
		p.advance()
		return &ast.Literal{Raw: cur.Lexeme}

	case cur.Kind == token.Identifier:
		p.advance()
		if p.cur().Kind == token.Operator && p.cur().Lexeme == "[" {
			p.advance()
			index := p.parseExpression()
			p.expectOperator("]")
			return &ast.StringIndex{
				Target: &ast.Variable{Name: cur.Lexeme, Line: cur.Line, Col: cur.Column},
				Index:  index,
				Line:   cur.Line,
				Col:    cur.Column,
			}
		}
		return &ast.Variable{Name: cur.Lexeme, Line: cur.Line, Col: cur.Column}

	case cur.Kind == token.Operator && cur.Lexeme == "(":
		p.advance()
		inner := p.parseExpression()
		p.expectOperator(")")
		return inner

	default:
		p.errorf("Expected expression, got '%s'", cur.Lexeme)
		return &ast.Literal{Raw: ""}
	}
}
