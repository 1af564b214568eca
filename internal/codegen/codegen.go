// Package codegen translates a validated L program into Go source text.
//
// It never re-checks types — that is internal/semantic's job — and never
// fails: given a well-formed AST and a finalized SymbolTable it always
// produces a string, even one that would not itself compile if handed a
// malformed tree. Determinism is structural: every traversal here walks a
// slice in source order, never a map, so the same input always produces
// the same output byte for byte.
package codegen

import (
	"fmt"
	"strings"

	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/symtab"
)

// runtimeImportPath is the generated-program support library every emitted
// program imports to call built-in adapters, grounded on the teacher's
// std/*.go package split (see runtime/ in this module).
const runtimeImportPath = "github.com/lclang/lcc/runtime"

// generator holds the state threaded through one Generate call.
type generator struct {
	table         *symtab.SymbolTable
	usesRuntime   bool
	userFunctions map[string]bool
}

// Generate emits a complete Go source file implementing program, using
// table for every identifier's type and every callable's signature.
func Generate(program *ast.Program, table *symtab.SymbolTable) string {
	g := &generator{table: table, userFunctions: make(map[string]bool, len(program.Functions))}
	for _, fn := range program.Functions {
		g.userFunctions[fn.Name] = true
	}

	var body strings.Builder
	for _, fn := range program.Functions {
		body.WriteString(g.genFunction(fn))
		body.WriteString("\n")
	}
	body.WriteString(g.genMain(program.Globals))

	var out strings.Builder
	out.WriteString("package main\n\n")
	out.WriteString(g.genImports())
	out.WriteString(body.String())
	return out.String()
}

// genImports emits the import block. "fmt" is never used by generated
// code directly — all printing goes through runtime.Print — so the only
// conditional import is the runtime package itself, included only when the
// program actually references a built-in (spec.md §4.5 rule 1b: one
// adapter per built-in *actually referenced*).
func (g *generator) genImports() string {
	if !g.usesRuntime {
		return ""
	}
	return fmt.Sprintf("import %q\n\n", runtimeImportPath)
}

// goType maps an L type to its Go host-language equivalent. Void and
// Unknown both map to "float64"; a variable assigned the result of a Void
// call (such as print) is therefore declared float64. For a function's
// return type, genFunction handles Void itself by emitting no result type.
func goType(t symtab.Type) string {
	switch t {
	case symtab.String:
		return "string"
	case symtab.Boolean:
		return "bool"
	default:
		return "float64"
	}
}

// genFunction emits one user-defined function, with its inferred return
// type and typed parameters (spec.md §4.5 rule 1a).
func (g *generator) genFunction(fn *ast.Function) string {
	paramTypes := g.table.GetFunctionParams(fn.Name)
	params := make([]string, len(fn.Params))
	skip := make(map[string]bool, len(fn.Params))
	for i, p := range fn.Params {
		t := symtab.Double
		if i < len(paramTypes) {
			t = paramTypes[i]
		}
		params[i] = fmt.Sprintf("%s %s", p.Name, goType(t))
		skip[p.Name] = true
	}

	returnType := g.table.GetType(fn.Name)
	sigReturn := ""
	if returnType != symtab.Void {
		sigReturn = " " + goType(returnType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "func %s(%s)%s {\n", fn.Name, strings.Join(params, ", "), sigReturn)
	b.WriteString(g.hoistDecls(fn.Body, skip, 1))
	b.WriteString(g.emitStmts(fn.Body, 1))
	b.WriteString("}\n")
	return b.String()
}

// genMain emits the top-level entry point (spec.md §4.5 rule 1d).
func (g *generator) genMain(globals []ast.Stmt) string {
	var b strings.Builder
	b.WriteString("func main() {\n")
	b.WriteString(g.hoistDecls(globals, nil, 1))
	b.WriteString(g.emitStmts(globals, 1))
	b.WriteString("}\n")
	return b.String()
}

// indent returns depth levels of tab indentation.
func indent(depth int) string {
	return strings.Repeat("\t", depth)
}
