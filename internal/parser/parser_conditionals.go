package parser

import (
	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/token"
)

// parseIfStmt parses:
//
//	if_stmt := "if" "(" expression ")" "{" {statement} "}" [ "else" "{" {statement} "}" ]
func (p *Parser) parseIfStmt() *ast.If {
	line, col := p.cur().Line, p.cur().Column
	p.expectKeyword("if")
	p.expectOperator("(")
	cond := p.parseExpression()
	p.expectOperator(")")
	then := p.parseBlock()

	var elseBlock *ast.Block
	if p.cur().Kind == token.Keyword && p.cur().Lexeme == "else" {
		p.advance()
		elseBlock = p.parseBlock()
	}

	return &ast.If{Cond: cond, Then: then, Else: elseBlock, Line: line, Col: col}
}
