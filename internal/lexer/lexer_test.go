package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lclang/lcc/internal/token"
)

func lexemes(tokens []token.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.EOF {
			continue
		}
		out = append(out, t.Lexeme)
	}
	return out
}

func TestTokenize_ArithmeticAndPrint(t *testing.T) {
	tokens, diags := Tokenize("x = 2 + 3 * 4;\ncall print(x);")
	assert.Empty(t, diags)
	assert.Equal(t, []string{
		"x", "=", "2", "+", "3", "*", "4", ";",
		"call", "print", "(", "x", ")", ";",
	}, lexemes(tokens))
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}

func TestTokenize_TwoCharOperators(t *testing.T) {
	tokens, diags := Tokenize(`a == b != c <= d >= e && f || g`)
	assert.Empty(t, diags)
	got := lexemes(tokens)
	assert.Contains(t, got, "==")
	assert.Contains(t, got, "!=")
	assert.Contains(t, got, "<=")
	assert.Contains(t, got, ">=")
	assert.Contains(t, got, "&&")
	assert.Contains(t, got, "||")
}

func TestTokenize_KeywordsVsIdentifiers(t *testing.T) {
	tokens, _ := Tokenize(`Double x; String s; if else for return call`)
	kinds := make([]token.Kind, 0)
	for _, tk := range tokens {
		if tk.Kind != token.EOF {
			kinds = append(kinds, tk.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.Keyword, token.Identifier, token.Operator,
		token.Keyword, token.Identifier, token.Operator,
		token.Keyword, token.Keyword, token.Keyword, token.Keyword, token.Keyword,
	}, kinds)
}

func TestTokenize_NumberLiteral(t *testing.T) {
	tokens, diags := Tokenize(`3.14 42`)
	assert.Empty(t, diags)
	assert.Equal(t, "3.14", tokens[0].Lexeme)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, "42", tokens[1].Lexeme)
}

func TestTokenize_StringLiteral(t *testing.T) {
	tokens, diags := Tokenize(`"hello world"`)
	assert.Empty(t, diags)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tokens, diags := Tokenize("msg = \"hello;\nx = 1;")
	assert.Len(t, diags, 1)
	assert.Equal(t, "Unterminated string literal", diags[0].Message)
	assert.Equal(t, 1, diags[0].Line)
	// Scanning resumes on the next line.
	found := false
	for _, tk := range tokens {
		if tk.Lexeme == "1" {
			found = true
		}
	}
	assert.True(t, found, "lexer should resume scanning after the bad line")
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	tokens, diags := Tokenize(`x = 1 @ 2;`)
	assert.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Unexpected character: @")
	assert.Contains(t, lexemes(tokens), "2")
}

func TestTokenize_LineColumnTracking(t *testing.T) {
	tokens, _ := Tokenize("x = 1;\ny = 2;")
	// "y" is the first token on line 2.
	var yTok token.Token
	for _, tk := range tokens {
		if tk.Lexeme == "y" {
			yTok = tk
			break
		}
	}
	assert.Equal(t, 2, yTok.Line)
	assert.Equal(t, 1, yTok.Column)
}
