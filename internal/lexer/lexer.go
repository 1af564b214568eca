// Package lexer performs lexical analysis of L source code.
//
// It scans the source text byte by byte, identifying tokens and tracking
// line/column for diagnostics. It never fails hard: an unrecognized byte or
// an unterminated string literal is recorded as a diagnostic and scanning
// continues, so a single pass always produces a complete (if partial) token
// stream alongside the diagnostics it found along the way.
package lexer

import (
	"regexp"

	"github.com/lclang/lcc/internal/diag"
	"github.com/lclang/lcc/internal/token"
)

var (
	identifierStart = regexp.MustCompile(`^[A-Za-z_]`)
	identifierRest  = regexp.MustCompile(`^[A-Za-z0-9_]`)
	digit           = regexp.MustCompile(`^[0-9]`)
)

// twoCharOperators lists the two-character operators, tried before any
// single-character operator so that e.g. "==" never lexes as "=" "=".
var twoCharOperators = []string{"==", "!=", "<=", ">=", "&&", "||"}

// singleCharOperators is the fixed set of one-character operator/punctuation
// lexemes L accepts.
var singleCharOperators = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true, '=': true,
	'(': true, ')': true, '{': true, '}': true, '<': true, '>': true,
	';': true, ',': true, '.': true, '[': true, ']': true,
}

// Lexer holds the scanning state for one source string. It is used once,
// via Tokenize, and discarded.
type Lexer struct {
	src       string
	position  int // index of the current byte in src
	srcLength int
	line      int
	column    int
	sink      diag.Sink
}

// Tokenize scans src in full and returns its token stream (always
// terminated by a token.EOF) and the lexical diagnostics found along the
// way. It never panics.
func Tokenize(src string) ([]token.Token, []diag.Diagnostic) {
	lex := &Lexer{
		src:       src,
		position:  0,
		srcLength: len(src),
		line:      1,
		column:    1,
		sink:      diag.NewMemorySink(),
	}
	tokens := make([]token.Token, 0)
	for {
		tok := lex.next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, lex.sink.All()
}

// current returns the byte at the lexer's position, or 0 past the end.
func (lex *Lexer) current() byte {
	if lex.position >= lex.srcLength {
		return 0
	}
	return lex.src[lex.position]
}

// peek returns the byte one past the current position, or 0 past the end.
func (lex *Lexer) peek() byte {
	if lex.position+1 >= lex.srcLength {
		return 0
	}
	return lex.src[lex.position+1]
}

// advance consumes the current byte, updating line/column bookkeeping.
func (lex *Lexer) advance() {
	if lex.current() == '\n' {
		lex.line++
		lex.column = 1
	} else {
		lex.column++
	}
	lex.position++
}

// skipWhitespace advances past any run of spaces, tabs, and newlines. L has
// no comment syntax (spec §6), so this is the whole of "ignorable" input.
func (lex *Lexer) skipWhitespace() {
	for lex.position < lex.srcLength {
		switch lex.current() {
		case ' ', '\t', '\r', '\n':
			lex.advance()
		default:
			return
		}
	}
}

// next scans and returns the single next token, recording a diagnostic and
// advancing past any byte it cannot classify.
func (lex *Lexer) next() token.Token {
	lex.skipWhitespace()

	if lex.position >= lex.srcLength {
		return token.New(token.EOF, "", lex.line, lex.column)
	}

	line, col := lex.line, lex.column
	c := lex.current()

	if two := lex.tryTwoCharOperator(); two != "" {
		lex.advance()
		lex.advance()
		return token.New(token.Operator, two, line, col)
	}

	switch {
	case identifierStart.MatchString(string(c)):
		return lex.scanIdentifierOrKeyword(line, col)
	case digit.MatchString(string(c)):
		return lex.scanNumber(line, col)
	case c == '"':
		return lex.scanString(line, col)
	case singleCharOperators[c]:
		lex.advance()
		return token.New(token.Operator, string(c), line, col)
	default:
		lex.sink.Emit(diag.New(diag.Lexical, line, col, "Unexpected character: %c", c))
		lex.advance()
		return lex.next()
	}
}

// tryTwoCharOperator returns the matched lexeme if the next two bytes form
// one of the two-character operators, without consuming anything.
func (lex *Lexer) tryTwoCharOperator() string {
	c, n := lex.current(), lex.peek()
	if n == 0 {
		return ""
	}
	candidate := string([]byte{c, n})
	for _, op := range twoCharOperators {
		if op == candidate {
			return op
		}
	}
	return ""
}

// scanIdentifierOrKeyword consumes [A-Za-z_][A-Za-z0-9_]* and classifies it
// as Keyword if it matches the reserved-word set, else Identifier.
func (lex *Lexer) scanIdentifierOrKeyword(line, col int) token.Token {
	start := lex.position
	lex.advance()
	for lex.position < lex.srcLength && identifierRest.MatchString(string(lex.current())) {
		lex.advance()
	}
	lexeme := lex.src[start:lex.position]
	if token.Keywords[lexeme] {
		return token.New(token.Keyword, lexeme, line, col)
	}
	return token.New(token.Identifier, lexeme, line, col)
}

// scanNumber consumes [0-9]+(\.[0-9]+)?.
func (lex *Lexer) scanNumber(line, col int) token.Token {
	start := lex.position
	for lex.position < lex.srcLength && digit.MatchString(string(lex.current())) {
		lex.advance()
	}
	if lex.current() == '.' && lex.position+1 < lex.srcLength && digit.MatchString(string(lex.peek())) {
		lex.advance() // consume '.'
		for lex.position < lex.srcLength && digit.MatchString(string(lex.current())) {
			lex.advance()
		}
	}
	return token.New(token.Number, lex.src[start:lex.position], line, col)
}

// scanString consumes a double-quoted string literal with no escapes. A
// missing closing quote records a diagnostic and abandons the rest of the
// current line, matching spec §4.1.
func (lex *Lexer) scanString(line, col int) token.Token {
	start := lex.position
	lex.advance() // opening quote
	for lex.position < lex.srcLength && lex.current() != '"' && lex.current() != '\n' {
		lex.advance()
	}
	if lex.position >= lex.srcLength || lex.current() != '"' {
		lex.sink.Emit(diag.New(diag.Lexical, line, col, "Unterminated string literal"))
		// Abandon the rest of the line.
		for lex.position < lex.srcLength && lex.current() != '\n' {
			lex.advance()
		}
		return lex.next()
	}
	lex.advance() // closing quote
	return token.New(token.String, lex.src[start:lex.position], line, col)
}
