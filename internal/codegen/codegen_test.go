package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lclang/lcc/internal/lexer"
	"github.com/lclang/lcc/internal/parser"
	"github.com/lclang/lcc/internal/semantic"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	tokens, lexDiags := lexer.Tokenize(src)
	require.Empty(t, lexDiags)
	program, parseDiags := parser.Parse(tokens)
	require.Empty(t, parseDiags)
	table, semDiags := semantic.Analyze(program)
	require.Empty(t, semDiags)
	return Generate(program, table)
}

func TestGenerate_ArithmeticAndPrint(t *testing.T) {
	out := generate(t, "x = 2 + 3 * 4;\ncall print(x);")
	assert.Contains(t, out, "package main")
	assert.Contains(t, out, `"github.com/lclang/lcc/runtime"`)
	assert.Contains(t, out, "var x float64")
	assert.Contains(t, out, "x = (2.0 + (3.0 * 4.0))")
	assert.Contains(t, out, "runtime.Print(x)")
}

func TestGenerate_UserFunctionWithReturn(t *testing.T) {
	out := generate(t, "square(n) { return n * n; }\ny = call square(5);\ncall print(y);")
	assert.Contains(t, out, "func square(n float64) float64 {")
	assert.Contains(t, out, "return (n * n)")
	assert.Contains(t, out, "y = square(5.0)")
}

func TestGenerate_IfElse(t *testing.T) {
	out := generate(t, "x = 1;\nif (x < 5) { y = 1; } else { y = 2; }")
	assert.Contains(t, out, "if (x < 5.0) {")
	assert.Contains(t, out, "} else {")
}

func TestGenerate_ForLoopAssignsWithoutRedeclaring(t *testing.T) {
	out := generate(t, "s = 0;\nfor (i = 0; i < 5; i = i + 1) { s = s + i; }\ncall print(s);")
	assert.Contains(t, out, "var i float64")
	assert.Contains(t, out, "for i = 0.0; (i < 5.0); i = (i + 1.0) {")
	assert.NotContains(t, out, "var i float64\n\tfor i := ")
}

func TestGenerate_NoBuiltinCallSkipsRuntimeImport(t *testing.T) {
	out := generate(t, "x = 1 + 2;")
	assert.NotContains(t, out, "runtime")
}

func TestGenerate_BuiltinCallDispatchesToRuntimePackage(t *testing.T) {
	out := generate(t, `String s;
s = "abc";
x = call reverse(s);`)
	assert.Contains(t, out, "runtime.Reverse(s)")
}

func TestGenerate_StringIndexUsesCharAt(t *testing.T) {
	out := generate(t, `String s;
s = "abc";
x = s[0];`)
	assert.Contains(t, out, "runtime.CharAt(s, int(0.0))")
}

func TestGenerate_StringLiteralIsRequoted(t *testing.T) {
	out := generate(t, `String s;
s = "hello";`)
	assert.Contains(t, out, `s = "hello"`)
}

func TestGenerate_IntegerLiteralGetsDotZero(t *testing.T) {
	out := generate(t, "x = 7;")
	assert.Contains(t, out, "x = 7.0")
}

func TestGenerate_DeterministicAcrossRuns(t *testing.T) {
	src := "square(n) { return n * n; }\ny = call square(5);\ncall print(y);"
	first := generate(t, src)
	second := generate(t, src)
	assert.Equal(t, first, second)
}
