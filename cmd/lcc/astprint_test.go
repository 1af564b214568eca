package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lclang/lcc/internal/lexer"
	"github.com/lclang/lcc/internal/parser"
)

func TestDumpProgramAST_RendersIndentedTree(t *testing.T) {
	tokens, lexDiags := lexer.Tokenize("x = 1 + 2;\ncall print(x);")
	require.Empty(t, lexDiags)
	program, parseDiags := parser.Parse(tokens)
	require.Empty(t, parseDiags)

	var buf bytes.Buffer
	dumpProgramAST(&buf, program)
	out := buf.String()

	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "Assignment x")
	assert.Contains(t, out, "BinaryOp +")
	assert.Contains(t, out, "Call print")
}

func TestDumpProgramAST_NilProgramIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	dumpProgramAST(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestDumpTokenStream_OneLinePerToken(t *testing.T) {
	tokens, lexDiags := lexer.Tokenize("x = 1;")
	require.Empty(t, lexDiags)

	var buf bytes.Buffer
	dumpTokenStream(&buf, tokens)
	out := buf.String()

	lines := bytes.Count([]byte(out), []byte("\n"))
	assert.Equal(t, len(tokens), lines)
	assert.Contains(t, out, "line=1")
}
