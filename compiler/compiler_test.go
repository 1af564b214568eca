package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lclang/lcc/internal/symtab"
)

func TestCompile_ArithmeticAndPrint(t *testing.T) {
	result := Compile("x = 2 + 3 * 4;\ncall print(x);")
	require.True(t, result.Success)
	assert.Empty(t, result.Diagnostics)
	assert.Contains(t, result.Output, "runtime.Print(x)")
}

func TestCompile_UserFunctionWithReturn(t *testing.T) {
	result := Compile("square(n) { return n * n; }\ny = call square(5);\ncall print(y);")
	require.True(t, result.Success)
	assert.Equal(t, "Double", string(result.Symbols.GetType("square")))
	assert.Equal(t, []symtab.Type{symtab.Double}, result.Symbols.GetFunctionParams("square"))
}

func TestCompile_TypeMismatchInCallBlocksCodegen(t *testing.T) {
	result := Compile(`f(a) { return a + 1; }
call f("hello");`)
	require.False(t, result.Success)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Output, "Compilation failed due to the following errors:\n")
	assert.Contains(t, result.Output, "expected Double, got String")
}

func TestCompile_UndefinedFunctionBlocksCodegen(t *testing.T) {
	result := Compile("call mystery(1);")
	require.False(t, result.Success)
	require.Len(t, result.Diagnostics, 1)
	assert.Contains(t, result.Output, "Undefined function 'mystery'")
}

func TestCompile_ForLoopControlFlow(t *testing.T) {
	result := Compile("s = 0;\nfor (i = 0; i < 5; i = i + 1) { s = s + i; }\ncall print(s);")
	require.True(t, result.Success)
	assert.Contains(t, result.Output, "for i = 0.0;")
	assert.Contains(t, result.Output, "runtime.Print(s)")
}

func TestCompile_UnterminatedStringRecordsLexicalDiagnosticFirst(t *testing.T) {
	result := Compile(`msg = "hello;`)
	require.False(t, result.Success)
	require.NotEmpty(t, result.Diagnostics)
	assert.Contains(t, result.Diagnostics[0].Message, "Unterminated string literal")
}

func TestCompile_IsDeterministic(t *testing.T) {
	src := "square(n) { return n * n; }\ny = call square(5);\ncall print(y);"
	first := Compile(src)
	second := Compile(src)
	assert.Equal(t, first.Output, second.Output)
}
