package parser

import (
	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/token"
)

// parseFunction parses a function_definition:
//
//	function_definition := IDENT "(" [param_list] ")" "{" { statement } "}"
func (p *Parser) parseFunction() *ast.Function {
	line, col := p.cur().Line, p.cur().Column
	name := p.expectIdentifier()
	p.expectOperator("(")
	params := p.parseParamList()
	p.expectOperator(")")
	p.expectOperator("{")

	body := make([]ast.Stmt, 0)
	for !p.atEnd() && !p.isBlockEnd() {
		stmt, ok := p.parseStatement(false)
		if ok && stmt != nil {
			body = append(body, stmt)
		}
	}
	p.expectOperator("}")

	return &ast.Function{Name: name, Params: params, Body: body, Line: line, Col: col}
}

// parseParamList parses [param_list]:
//
//	param_list := IDENT { "," IDENT }
func (p *Parser) parseParamList() []ast.Parameter {
	params := make([]ast.Parameter, 0)
	if p.cur().Kind == token.Operator && p.cur().Lexeme == ")" {
		return params
	}
	for {
		params = append(params, ast.Parameter{Name: p.expectIdentifier()})
		if p.cur().Kind == token.Operator && p.cur().Lexeme == "," {
			p.advance()
			continue
		}
		break
	}
	return params
}

// isBlockEnd reports whether the cursor is at the "}" closing the current
// block, used by every statement-list loop (function bodies, ThenBlock,
// ElseBlock, ForBody) to know when to stop.
func (p *Parser) isBlockEnd() bool {
	return p.cur().Kind == token.Operator && p.cur().Lexeme == "}"
}

// parseBlock parses a "{" { statement } "}" body shared by if/else/for.
func (p *Parser) parseBlock() *ast.Block {
	p.expectOperator("{")
	stmts := make([]ast.Stmt, 0)
	for !p.atEnd() && !p.isBlockEnd() {
		stmt, ok := p.parseStatement(false)
		if ok && stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expectOperator("}")
	return &ast.Block{Stmts: stmts}
}
