package parser

import (
	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/token"
)

// parseStatement parses one statement:
//
//	statement := assignment | call_stmt | return_stmt | if_stmt | for_stmt | var_decl
//
// topLevel selects the resynchronization strategy used on an unrecognized
// leading token: skip to the next top-level ";" at the top level, or skip
// a single token inside a block (spec §4.2). ok is false when no
// statement could be recovered from the current position.
func (p *Parser) parseStatement(topLevel bool) (ast.Stmt, bool) {
	cur := p.cur()
	switch {
	case cur.Kind == token.Keyword && (cur.Lexeme == "Double" || cur.Lexeme == "String"):
		return p.parseVarDecl(), true
	case cur.Kind == token.Keyword && cur.Lexeme == "call":
		return p.parseCallStmt(), true
	case cur.Kind == token.Keyword && cur.Lexeme == "return":
		return p.parseReturnStmt(), true
	case cur.Kind == token.Keyword && cur.Lexeme == "if":
		return p.parseIfStmt(), true
	case cur.Kind == token.Keyword && cur.Lexeme == "for":
		return p.parseForStmt(), true
	case cur.Kind == token.Identifier:
		return p.parseAssignmentStmt(), true
	default:
		p.errorf("Unexpected token '%s': expected a declaration, assignment, call, return, if, or for", cur.Lexeme)
		if topLevel {
			p.resyncTopLevel()
		} else {
			p.resyncBlock()
		}
		return nil, false
	}
}

// parseVarDecl parses var_decl := ("Double" | "String") IDENT ";".
func (p *Parser) parseVarDecl() *ast.VarDecl {
	line, col := p.cur().Line, p.cur().Column
	declType := p.advance().Lexeme
	name := p.expectIdentifier()
	p.expectOperator(";")
	return &ast.VarDecl{Name: name, Type: declType, Line: line, Col: col}
}

// parseAssignmentCore parses IDENT "=" expression without consuming a
// trailing ";" — the shape shared by a standalone assignment statement and
// a for_stmt's init/update clauses.
func (p *Parser) parseAssignmentCore() *ast.Assignment {
	line, col := p.cur().Line, p.cur().Column
	name := p.expectIdentifier()
	p.expectOperator("=")
	value := p.parseExpression()
	return &ast.Assignment{Name: name, Value: value, Line: line, Col: col}
}

// parseAssignmentStmt parses assignment := IDENT "=" expression ";".
func (p *Parser) parseAssignmentStmt() *ast.Assignment {
	a := p.parseAssignmentCore()
	p.expectOperator(";")
	return a
}

// parseCall parses the shape shared by call_stmt and call_expr:
//
//	"call" IDENT "(" [arg_list] ")"
func (p *Parser) parseCall() *ast.Call {
	line, col := p.cur().Line, p.cur().Column
	p.expectKeyword("call")
	callee := p.expectIdentifier()
	p.expectOperator("(")
	args := p.parseArgList()
	p.expectOperator(")")
	return &ast.Call{Callee: callee, Args: args, Line: line, Col: col}
}

// parseCallStmt parses call_stmt := "call" IDENT "(" [arg_list] ")" ";".
func (p *Parser) parseCallStmt() *ast.Call {
	c := p.parseCall()
	p.expectOperator(";")
	return c
}

// parseArgList parses arg_list := expression { "," expression }.
func (p *Parser) parseArgList() []ast.Expr {
	args := make([]ast.Expr, 0)
	if p.cur().Kind == token.Operator && p.cur().Lexeme == ")" {
		return args
	}
	for {
		args = append(args, p.parseExpression())
		if p.cur().Kind == token.Operator && p.cur().Lexeme == "," {
			p.advance()
			continue
		}
		break
	}
	return args
}

// parseReturnStmt parses return_stmt := "return" expression ";".
func (p *Parser) parseReturnStmt() *ast.Return {
	line, col := p.cur().Line, p.cur().Column
	p.expectKeyword("return")
	var value ast.Expr
	if !(p.cur().Kind == token.Operator && p.cur().Lexeme == ";") {
		value = p.parseExpression()
	}
	p.expectOperator(";")
	return &ast.Return{Value: value, Line: line, Col: col}
}
