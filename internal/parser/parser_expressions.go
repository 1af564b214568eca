package parser

import "github.com/lclang/lcc/internal/ast"

// parseExpression is the entry point for expression := logical_expr.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseLogicalExpr()
}
