package codegen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lclang/lcc/internal/ast"
)

var numberLiteral = regexp.MustCompile(`^\d+(\.\d+)?$`)

// logicalGoOp maps L's AND/OR operator names to Go's short-circuit
// operators (spec.md §4.5 rule 5).
var logicalGoOp = map[string]string{"AND": "&&", "OR": "||"}

// runtimeAdapter maps every built-in that is implemented as a generated-
// program runtime call to its exported Go function name (spec.md §4.5
// rule 7's "fixed table" / SPEC_FULL.md §C.1). Built-ins not in this
// table have no direct host-language expression form in this target and
// are unreachable here because the analyzer already validated every call
// site against the symbol table before codegen runs.
var runtimeAdapter = map[string]string{
	"length": "Length", "capitalize": "Capitalize", "uppercase": "Uppercase",
	"lowercase": "Lowercase", "is_empty": "IsEmpty", "is_numeric": "IsNumeric",
	"concat": "Concat", "contains": "Contains", "index_of": "IndexOf",
	"repeat_string": "RepeatString", "reverse": "Reverse", "is_palindrome": "IsPalindrome",

	"add": "Add", "subtract": "Subtract", "multiply": "Multiply", "divide": "Divide",
	"max": "Max", "min": "Min", "abs": "Abs", "compare": "Compare",
	"factorial": "Factorial", "is_prime": "IsPrime", "average": "Average",
	"round": "Round", "floor": "Floor", "ceil": "Ceil", "is_even": "IsEven",
	"is_odd": "IsOdd", "digit_sum": "DigitSum", "is_divisible": "IsDivisible",
	"modulus": "Modulus", "in_range": "InRange", "random_num": "RandomNum",
	"square": "Square", "cube": "Cube", "percent_of": "PercentOf",
	"roll_dice": "RollDice", "distance": "Distance", "is_positive": "IsPositive",
	"is_greater": "IsGreater",

	"create_file": "CreateFile", "delete_file": "DeleteFile",
	"copy_file": "CopyFile", "move_file": "MoveFile",

	"exec": "Exec", "get_wd": "GetWd", "get_username": "GetUsername",
	"get_user_home_dir": "GetUserHomeDir", "change_dir": "ChangeDir", "get_env": "GetEnv",
}

// exprCode lowers an expression to Go source text.
func (g *generator) exprCode(expr ast.Expr) string {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalCode(n.Raw)

	case *ast.Variable:
		return n.Name

	case *ast.Call:
		return g.callExpr(n)

	case *ast.StringIndex:
		g.usesRuntime = true
		return fmt.Sprintf("runtime.CharAt(%s, int(%s))", n.Target.Name, g.exprCode(n.Index))

	case *ast.BinaryOp:
		return fmt.Sprintf("(%s %s %s)", g.exprCode(n.Left), n.Op, g.exprCode(n.Right))

	case *ast.Comparison:
		return fmt.Sprintf("(%s %s %s)", g.exprCode(n.Left), n.Op, g.exprCode(n.Right))

	case *ast.LogicalOp:
		op := logicalGoOp[n.Op]
		return fmt.Sprintf("(%s %s %s)", g.exprCode(n.Left), op, g.exprCode(n.Right))

	default:
		return "nil"
	}
}

// literalCode implements spec.md §4.5 rule 3: a Number literal without a
// decimal point gets ".0" appended to force floating-point typing. String
// literals are re-quoted with strconv.Quote (rather than passed through
// raw) so that a literal backslash in L source — which the lexer accepts
// since L has no escape syntax to reject it — still produces a valid Go
// string literal instead of an invalid escape sequence.
func literalCode(raw string) string {
	switch raw {
	case "true", "false":
		return raw
	}
	if numberLiteral.MatchString(raw) {
		if strings.Contains(raw, ".") {
			return raw
		}
		return raw + ".0"
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	return strconv.Quote(inner)
}

// callExpr implements spec.md §4.5 rule 7's built-in dispatch table and
// rule 4's print special-case. A user-defined function takes priority over
// a same-named built-in — L lets a program declare its own `square` or
// `max` and that declaration shadows the catalogue entry, exactly as the
// semantic analyzer resolves it (a defined function's own signature wins
// over the builtin catalogue's). A callee that is neither a user function
// nor in runtimeAdapter nor "print" is unreachable here: the analyzer
// already rejected any other undefined callee before codegen runs.
func (g *generator) callExpr(n *ast.Call) string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = g.exprCode(arg)
	}

	if !g.userFunctions[n.Callee] {
		if n.Callee == "print" {
			g.usesRuntime = true
			return fmt.Sprintf("runtime.Print(%s)", strings.Join(args, ", "))
		}

		if goName, ok := runtimeAdapter[n.Callee]; ok {
			g.usesRuntime = true
			return fmt.Sprintf("runtime.%s(%s)", goName, strings.Join(args, ", "))
		}
	}

	return fmt.Sprintf("%s(%s)", n.Callee, strings.Join(args, ", "))
}
