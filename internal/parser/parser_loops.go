package parser

import "github.com/lclang/lcc/internal/ast"

// parseForStmt parses:
//
//	for_stmt := "for" "(" assignment expression ";" assignment ")" "{" {statement} "}"
//
// The worked example in spec §8 ("for (i = 0; i < 5; i = i + 1) { ... }")
// has no semicolon between the update clause and ")" — so, despite the
// EBNF's reuse of the "assignment" label for both clauses, neither clause
// consumes a trailing ";" itself. Both clauses parse as assignment-core
// (IDENT "=" expression); this function consumes the ";" after the init
// clause and the ";" after the condition, and accepts no ";" after the
// update clause.
func (p *Parser) parseForStmt() *ast.For {
	line, col := p.cur().Line, p.cur().Column
	p.expectKeyword("for")
	p.expectOperator("(")
	init := p.parseAssignmentCore()
	p.expectOperator(";")
	cond := p.parseExpression()
	p.expectOperator(";")
	update := p.parseAssignmentCore()
	p.expectOperator(")")
	body := p.parseBlock()

	return &ast.For{Init: init, Cond: cond, Update: update, Body: body, Line: line, Col: col}
}
