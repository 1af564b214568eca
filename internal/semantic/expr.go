package semantic

import (
	"regexp"

	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/symtab"
)

// numberLiteral matches the same NUMBER lexeme shape the lexer accepts,
// so a Literal's type can be recovered from its Raw text alone.
var numberLiteral = regexp.MustCompile(`^\d+(\.\d+)?$`)

// inferExprType dispatches on the concrete Expr type and returns its
// inferred Type, emitting diagnostics for undefined names and operand
// type mismatches along the way (spec §4.4).
func (a *Analyzer) inferExprType(expr ast.Expr) symtab.Type {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalType(n.Raw)

	case *ast.Variable:
		if !a.table.Contains(n.Name) {
			a.errorf(n.Line, n.Col, "Undefined variable '%s'", n.Name)
			return symtab.Unknown
		}
		return a.table.GetType(n.Name)

	case *ast.Call:
		return a.analyzeCall(n)

	case *ast.StringIndex:
		if !a.table.Contains(n.Target.Name) {
			a.errorf(n.Line, n.Col, "Undefined variable '%s'", n.Target.Name)
		}
		a.inferExprType(n.Index)
		return symtab.String

	case *ast.BinaryOp:
		return a.inferBinaryOpType(n)

	case *ast.Comparison:
		left := a.inferExprType(n.Left)
		right := a.inferExprType(n.Right)
		if left != symtab.Unknown && right != symtab.Unknown && (left != symtab.Double || right != symtab.Double) {
			a.errorf(n.Line, n.Col, "Comparison '%s' requires Double operands, got %s and %s", n.Op, left, right)
		}
		return symtab.Boolean

	case *ast.LogicalOp:
		a.inferExprType(n.Left)
		a.inferExprType(n.Right)
		return symtab.Boolean

	default:
		return symtab.Unknown
	}
}

// literalType classifies a Literal's raw lexeme: the reserved boolean
// spellings, then the number shape, else String (a STRING token's Raw
// still carries its surrounding quotes, so anything left over is a
// string literal).
func literalType(raw string) symtab.Type {
	switch raw {
	case "true", "false":
		return symtab.Boolean
	}
	if numberLiteral.MatchString(raw) {
		return symtab.Double
	}
	return symtab.String
}

// inferBinaryOpType implements spec §4.4's operator-type rules: "+" is
// String concatenation whenever either operand is String, otherwise
// arithmetic; every other arithmetic operator requires Double operands.
func (a *Analyzer) inferBinaryOpType(n *ast.BinaryOp) symtab.Type {
	left := a.inferExprType(n.Left)
	right := a.inferExprType(n.Right)
	cascaded := left == symtab.Unknown || right == symtab.Unknown

	if n.Op == "+" {
		if left == symtab.String || right == symtab.String {
			return symtab.String
		}
		if left == symtab.Double && right == symtab.Double {
			return symtab.Double
		}
		if !cascaded {
			a.errorf(n.Line, n.Col, "Operator '+' requires Double or String operands, got %s and %s", left, right)
		}
		return symtab.Unknown
	}

	if left != symtab.Double || right != symtab.Double {
		if !cascaded {
			a.errorf(n.Line, n.Col, "Operator '%s' requires Double operands, got %s and %s", n.Op, left, right)
		}
		return symtab.Unknown
	}
	return symtab.Double
}
