package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lclang/lcc/internal/lexer"
	"github.com/lclang/lcc/internal/parser"
	"github.com/lclang/lcc/internal/symtab"
)

func analyze(t *testing.T, src string) (*symtab.SymbolTable, []string) {
	t.Helper()
	tokens, lexDiags := lexer.Tokenize(src)
	require.Empty(t, lexDiags)
	program, parseDiags := parser.Parse(tokens)
	require.Empty(t, parseDiags)
	table, diags := Analyze(program)
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return table, msgs
}

func TestAnalyze_VarDeclAndAssignmentRecordTypes(t *testing.T) {
	table, diags := analyze(t, `Double x;
x = 5;
String s;
s = "hi";`)
	assert.Empty(t, diags)
	assert.Equal(t, symtab.Double, table.GetType("x"))
	assert.Equal(t, symtab.String, table.GetType("s"))
}

func TestAnalyze_UndefinedVariableDiagnosed(t *testing.T) {
	_, diags := analyze(t, `y = x + 1;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Undefined variable 'x'")
}

func TestAnalyze_UndefinedFunctionDiagnosed(t *testing.T) {
	_, diags := analyze(t, `call mystery(1);`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Undefined function 'mystery'")
}

func TestAnalyze_BuiltinArityMismatch(t *testing.T) {
	_, diags := analyze(t, `call length("a", "b");`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "expects 1 argument(s), got 2")
}

func TestAnalyze_BuiltinArgumentTypeMismatch(t *testing.T) {
	Double := `Double n;
n = 3;
call uppercase(n);`
	_, diags := analyze(t, Double)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "expected String, got Double")
}

func TestAnalyze_IfConditionMustBeBoolean(t *testing.T) {
	_, diags := analyze(t, `if (1) { x = 1; }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Condition must be Boolean")
}

func TestAnalyze_ForConditionMustBeBoolean(t *testing.T) {
	_, diags := analyze(t, `for (i = 0; i + 1; i = i + 1) { }`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Condition must be Boolean")
}

func TestAnalyze_PlusConcatenatesWhenEitherOperandIsString(t *testing.T) {
	table, diags := analyze(t, `x = "a" + 1;`)
	assert.Empty(t, diags)
	assert.Equal(t, symtab.String, table.GetType("x"))
}

func TestAnalyze_ArithmeticOperatorRequiresDoubleOperands(t *testing.T) {
	_, diags := analyze(t, `x = "a" - 1;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Operator '-' requires Double operands")
}

func TestAnalyze_ComparisonRequiresDoubleOperands(t *testing.T) {
	_, diags := analyze(t, `String s;
s = "a";
x = s < 1;`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "Comparison '<' requires Double operands")
}

func TestAnalyze_FunctionReturnTypeInferredFromFirstReturn(t *testing.T) {
	table, diags := analyze(t, `greet(n) { return "hello"; }
x = call greet(1);`)
	assert.Empty(t, diags)
	assert.Equal(t, symtab.String, table.GetType("greet"))
}

func TestAnalyze_FunctionParamTypeInferredFromNameHeuristic(t *testing.T) {
	table, diags := analyze(t, `uppercase(s) { return s; }`)
	assert.Empty(t, diags)
	assert.Equal(t, []symtab.Type{symtab.String}, table.GetFunctionParams("uppercase"))
}

func TestAnalyze_FunctionWithoutReturnDefaultsToDouble(t *testing.T) {
	table, diags := analyze(t, `noop(x) { y = 1; }`)
	assert.Empty(t, diags)
	assert.Equal(t, symtab.Double, table.GetType("noop"))
}

func TestAnalyze_StringIndexIsAlwaysString(t *testing.T) {
	table, diags := analyze(t, `String s;
s = "abc";
x = s[0];`)
	assert.Empty(t, diags)
	assert.Equal(t, symtab.String, table.GetType("x"))
}

func TestAnalyze_PrintAcceptsStringOrDoubleButNotBoolean(t *testing.T) {
	_, diags := analyze(t, `call print(true);`)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "print expects String or Double")
}

func TestAnalyze_LogicalOperandsUncheckedByDesign(t *testing.T) {
	table, diags := analyze(t, `x = 1 && 2;`)
	assert.Empty(t, diags)
	assert.Equal(t, symtab.Boolean, table.GetType("x"))
}
