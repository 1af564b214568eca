// Package compiler wires the pipeline stages — lexer, parser, semantic
// analyzer, code generator — into the single entry point external callers
// use (spec.md §4.6, §6).
package compiler

import (
	"strings"

	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/codegen"
	"github.com/lclang/lcc/internal/diag"
	"github.com/lclang/lcc/internal/lexer"
	"github.com/lclang/lcc/internal/parser"
	"github.com/lclang/lcc/internal/semantic"
	"github.com/lclang/lcc/internal/symtab"
	"github.com/lclang/lcc/internal/token"
)

// failureHeader opens the diagnostic report when compilation fails — the
// stable string spec.md §4.6 and §6 both name verbatim.
const failureHeader = "Compilation failed due to the following errors:\n"

// Result is everything one Compile call produces: the generated program
// (or the diagnostic report, on failure) and the structured side channels
// spec.md §6 asks for so tests can inspect the pipeline's intermediate
// state directly instead of re-parsing Output.
type Result struct {
	// Output is the emitted Go source on success, or the diagnostic
	// report (prefixed by failureHeader) on failure.
	Output string
	// Tokens is the full token stream the lexer produced, regardless of
	// outcome.
	Tokens []token.Token
	// Diagnostics is the combined, stage-ordered diagnostic list:
	// lexical, then syntactic, then semantic.
	Diagnostics []diag.Diagnostic
	// Program is the parsed AST, regardless of outcome (possibly
	// partial, if the parser recorded diagnostics).
	Program *ast.Program
	// Symbols is the finalized symbol table, present whenever the
	// analyzer ran (i.e. the parser produced a Program at all).
	Symbols *symtab.SymbolTable
	// Success reports whether code generation ran — equivalently,
	// whether Diagnostics is empty.
	Success bool
}

// Compile runs the full pipeline over src and returns a Result. It never
// panics and never returns a Go error: every expected problem is a
// Diagnostic, per spec.md §7's taxonomy (lexical/syntactic/semantic all
// alike, all non-fatal, all collected and reported together).
func Compile(src string) Result {
	tokens, lexDiags := lexer.Tokenize(src)
	program, parseDiags := parser.Parse(tokens)
	table, semDiags := semantic.Analyze(program)

	all := make([]diag.Diagnostic, 0, len(lexDiags)+len(parseDiags)+len(semDiags))
	all = append(all, lexDiags...)
	all = append(all, parseDiags...)
	all = append(all, semDiags...)

	result := Result{
		Tokens:      tokens,
		Diagnostics: all,
		Program:     program,
		Symbols:     table,
	}

	if len(all) > 0 {
		result.Output = report(all)
		return result
	}

	result.Success = true
	result.Output = codegen.Generate(program, table)
	return result
}

// report renders the stable failure format from spec.md §6: the fixed
// header, then one "Error at line <L>, column <C>: <message>" line per
// diagnostic, in the order the stages produced them.
func report(diagnostics []diag.Diagnostic) string {
	var b strings.Builder
	b.WriteString(failureHeader)
	for _, d := range diagnostics {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}
