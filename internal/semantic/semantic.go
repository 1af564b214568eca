// Package semantic implements L's semantic analysis: it walks the AST,
// populates the symbol table with user-defined entities, infers the type
// of every expression, and emits semantic diagnostics (spec §4.4).
package semantic

import (
	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/diag"
	"github.com/lclang/lcc/internal/symtab"
)

// Analyzer walks a Program once, populating a SymbolTable and a
// diagnostic Sink as it goes.
type Analyzer struct {
	table *symtab.SymbolTable
	sink  diag.Sink
}

// Analyze runs semantic analysis over program and returns the finalized
// SymbolTable (pre-seeded with the built-in catalogue, then populated with
// every user-defined function and variable found) and the semantic
// diagnostics produced along the way.
func Analyze(program *ast.Program) (*symtab.SymbolTable, []diag.Diagnostic) {
	a := &Analyzer{table: symtab.New(), sink: diag.NewMemorySink()}
	a.analyzeProgram(program)
	return a.table, a.sink.All()
}

func (a *Analyzer) errorf(line, col int, format string, args ...any) {
	a.sink.Emit(diag.New(diag.Semantic, line, col, format, args...))
}

// analyzeProgram registers and checks every function in source order, then
// walks the top-level statements against the now-complete symbol table.
// Functions are fully analyzed (params bound, body walked, return type
// settled) before the top-level statements that call them are checked —
// but because SymbolTable.Add/AddFunctionParams are simple last-write-wins
// maps (spec §3), a top-level call can equally well reference a function
// defined textually later, matching L's forward-reference-tolerant model.
func (a *Analyzer) analyzeProgram(program *ast.Program) {
	for _, fn := range program.Functions {
		a.analyzeFunction(fn)
	}
	for _, stmt := range program.Globals {
		a.analyzeStmt(stmt)
	}
}

// analyzeFunction registers fn's parameter types (name-heuristic), binds
// them as identifiers, walks the body, and settles fn's return type.
func (a *Analyzer) analyzeFunction(fn *ast.Function) {
	paramTypes := inferParamTypes(fn.Name, len(fn.Params))
	a.table.AddFunctionParams(fn.Name, paramTypes)
	for i, param := range fn.Params {
		a.table.Add(param.Name, paramTypes[i], fn.Line, fn.Col)
	}

	firstReturn := a.analyzeBlockStmts(fn.Body)

	returnType := symtab.Double
	if rt, ok := symtab.BuiltinReturnType(fn.Name); ok {
		returnType = rt
	} else if firstReturn != nil {
		returnType = *firstReturn
	}
	a.table.Add(fn.Name, returnType, fn.Line, fn.Col)
}

// inferParamTypes implements spec §4.4's parameter-type inference
// heuristic: every parameter is String if fn's name matches one of the
// fixed string-taking built-in names, otherwise every parameter is Double.
func inferParamTypes(name string, arity int) []symtab.Type {
	t := symtab.Double
	if symtab.StringParamFunctionNames[name] {
		t = symtab.String
	}
	types := make([]symtab.Type, arity)
	for i := range types {
		types[i] = t
	}
	return types
}

// analyzeBlockStmts walks a statement list (a function body or a nested
// Block's Stmts) and returns a pointer to the type of the first Return
// expression encountered in document order — including inside nested
// if/for blocks — or nil if the list contains no Return. Only the first
// Return found in the whole walk is ever reported back to the caller;
// later Return statements are still type-checked but do not affect the
// name-absent return-type fallback (spec §4.4).
func (a *Analyzer) analyzeBlockStmts(stmts []ast.Stmt) *symtab.Type {
	var first *symtab.Type
	for _, stmt := range stmts {
		if rt := a.analyzeStmtCapturingReturn(stmt); rt != nil && first == nil {
			first = rt
		}
	}
	return first
}

// analyzeStmtCapturingReturn analyzes one statement and, if it is (or
// contains, for If/For) a Return, returns the type of the first such
// Return's expression.
func (a *Analyzer) analyzeStmtCapturingReturn(stmt ast.Stmt) *symtab.Type {
	switch n := stmt.(type) {
	case *ast.Return:
		return a.analyzeReturn(n)
	case *ast.If:
		a.analyzeIf(n)
		var first *symtab.Type
		if rt := a.analyzeBlockStmts(n.Then.Stmts); rt != nil {
			first = rt
		}
		if n.Else != nil {
			if rt := a.analyzeBlockStmts(n.Else.Stmts); rt != nil && first == nil {
				first = rt
			}
		}
		return first
	case *ast.For:
		a.analyzeFor(n)
		return a.analyzeBlockStmts(n.Body.Stmts)
	default:
		a.analyzeStmt(stmt)
		return nil
	}
}

// analyzeStmt dispatches a statement for checking only (no return-type
// capture) — used for the top-level Globals walk, where there is no
// enclosing function signature to settle.
func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(n)
	case *ast.Assignment:
		a.analyzeAssignment(n)
	case *ast.Call:
		a.analyzeCall(n)
	case *ast.Return:
		a.analyzeReturn(n)
	case *ast.If:
		a.analyzeIf(n)
		a.analyzeStmts(n.Then.Stmts)
		if n.Else != nil {
			a.analyzeStmts(n.Else.Stmts)
		}
	case *ast.For:
		a.analyzeFor(n)
		a.analyzeStmts(n.Body.Stmts)
	}
}

// analyzeStmts is analyzeStmt applied to every statement in a list.
func (a *Analyzer) analyzeStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		a.analyzeStmt(s)
	}
}

func (a *Analyzer) analyzeVarDecl(n *ast.VarDecl) {
	declType := symtab.Double
	if n.Type == "String" {
		declType = symtab.String
	}
	a.table.Add(n.Name, declType, n.Line, n.Col)
}

// analyzeAssignment records the type of the assignment target at the point
// of assignment (spec §4.4(b), §8's type-inference-consistency invariant).
func (a *Analyzer) analyzeAssignment(n *ast.Assignment) {
	t := a.inferExprType(n.Value)
	a.table.Add(n.Name, t, n.Line, n.Col)
}

// analyzeReturn type-checks the return expression (if any) and reports its
// type, so callers that need it (analyzeStmtCapturingReturn) don't have to
// infer it a second time.
func (a *Analyzer) analyzeReturn(n *ast.Return) *symtab.Type {
	if n.Value == nil {
		return nil
	}
	t := a.inferExprType(n.Value)
	return &t
}

// analyzeIf checks that the condition is Boolean (spec §4.4(d)). It does
// not walk the Then/Else blocks: analyzeStmt and analyzeStmtCapturingReturn
// each do that themselves; this method only performs the condition check
// shared by both call paths.
func (a *Analyzer) analyzeIf(n *ast.If) {
	t := a.inferExprType(n.Cond)
	if t != symtab.Boolean {
		a.errorf(ifCondLine(n), ifCondCol(n), "Condition must be Boolean, got %s", t)
	}
}

// analyzeFor checks that the loop condition is Boolean (spec §4.4(d)) and
// that the init/update assignments are well-typed.
func (a *Analyzer) analyzeFor(n *ast.For) {
	a.analyzeAssignment(n.Init)
	t := a.inferExprType(n.Cond)
	if t != symtab.Boolean {
		a.errorf(n.Line, n.Col, "Condition must be Boolean, got %s", t)
	}
	a.analyzeAssignment(n.Update)
}

// ifCondLine/ifCondCol report the If's own position for its condition
// diagnostic; the AST does not carry a separate position for the
// condition sub-expression, so the enclosing If's position is used,
// matching the For condition check above.
func ifCondLine(n *ast.If) int { return n.Line }
func ifCondCol(n *ast.If) int  { return n.Col }

// analyzeCall checks a call site against its callee's signature: print is
// variadic, every argument just needs to be String or Double (spec
// §4.4's "print is special" rule); every other call must match its
// callee's arity and each argument's inferred type must equal the
// expected parameter type exactly. An unknown callee is diagnosed as an
// undefined function and its arguments are still walked so their own
// diagnostics surface too.
func (a *Analyzer) analyzeCall(n *ast.Call) symtab.Type {
	if n.Callee == "print" {
		for _, arg := range n.Args {
			t := a.inferExprType(arg)
			if t != symtab.String && t != symtab.Double && t != symtab.Unknown {
				a.errorf(n.Line, n.Col, "print expects String or Double arguments, got %s", t)
			}
		}
		return symtab.Void
	}

	if !a.table.IsCallable(n.Callee) {
		a.errorf(n.Line, n.Col, "Undefined function '%s'", n.Callee)
		for _, arg := range n.Args {
			a.inferExprType(arg)
		}
		return symtab.Unknown
	}

	params := a.table.GetFunctionParams(n.Callee)
	if len(params) != len(n.Args) {
		a.errorf(n.Line, n.Col, "Call to '%s' expects %d argument(s), got %d", n.Callee, len(params), len(n.Args))
	}
	for i, arg := range n.Args {
		argType := a.inferExprType(arg)
		if i < len(params) && argType != params[i] && argType != symtab.Unknown {
			a.errorf(n.Line, n.Col, "Argument %d of '%s': expected %s, got %s", i+1, n.Callee, params[i], argType)
		}
	}
	return a.table.GetType(n.Callee)
}
