package codegen

import (
	"fmt"
	"strings"

	"github.com/lclang/lcc/internal/ast"
)

// hoistDecls implements spec.md §4.5 rule 2: collect every Assignment
// target and VarDecl name reachable from stmts (recursing into If/For
// bodies, since L has no block scoping — spec.md §3's flat symbol model),
// dedupe by first appearance, and emit one `var name type` declaration per
// name before any statement. skip excludes names already declared as
// function parameters.
func (g *generator) hoistDecls(stmts []ast.Stmt, skip map[string]bool, depth int) string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	collectHoists(stmts, seen, &order)

	var b strings.Builder
	for _, name := range order {
		if skip[name] {
			continue
		}
		fmt.Fprintf(&b, "%svar %s %s\n", indent(depth), name, goType(g.table.GetType(name)))
	}
	return b.String()
}

func addHoistName(name string, seen map[string]bool, order *[]string) {
	if seen[name] {
		return
	}
	seen[name] = true
	*order = append(*order, name)
}

// collectHoists walks stmts in source order, recording every Assignment
// and VarDecl name exactly once, in first-appearance order.
func collectHoists(stmts []ast.Stmt, seen map[string]bool, order *[]string) {
	for _, stmt := range stmts {
		switch n := stmt.(type) {
		case *ast.VarDecl:
			addHoistName(n.Name, seen, order)
		case *ast.Assignment:
			addHoistName(n.Name, seen, order)
		case *ast.If:
			collectHoists(n.Then.Stmts, seen, order)
			if n.Else != nil {
				collectHoists(n.Else.Stmts, seen, order)
			}
		case *ast.For:
			addHoistName(n.Init.Name, seen, order)
			addHoistName(n.Update.Name, seen, order)
			collectHoists(n.Body.Stmts, seen, order)
		}
	}
}

// emitStmts emits one statement per source-order entry at the given
// indentation depth. VarDecl contributes nothing here — its declaration
// was already hoisted — everything else lowers directly.
func (g *generator) emitStmts(stmts []ast.Stmt, depth int) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(g.emitStmt(stmt, depth))
	}
	return b.String()
}

func (g *generator) emitStmt(stmt ast.Stmt, depth int) string {
	ind := indent(depth)
	switch n := stmt.(type) {
	case *ast.VarDecl:
		return ""

	case *ast.Assignment:
		return fmt.Sprintf("%s%s = %s\n", ind, n.Name, g.exprCode(n.Value))

	case *ast.Call:
		return fmt.Sprintf("%s%s\n", ind, g.callExpr(n))

	case *ast.Return:
		if n.Value == nil {
			return ind + "return\n"
		}
		return fmt.Sprintf("%sreturn %s\n", ind, g.exprCode(n.Value))

	case *ast.If:
		return g.emitIf(n, depth)

	case *ast.For:
		return g.emitFor(n, depth)

	default:
		return ""
	}
}

// emitIf implements spec.md §4.5 rule 9.
func (g *generator) emitIf(n *ast.If, depth int) string {
	ind := indent(depth)
	var b strings.Builder
	fmt.Fprintf(&b, "%sif %s {\n", ind, g.exprCode(n.Cond))
	b.WriteString(g.emitStmts(n.Then.Stmts, depth+1))
	if n.Else != nil {
		fmt.Fprintf(&b, "%s} else {\n", ind)
		b.WriteString(g.emitStmts(n.Else.Stmts, depth+1))
	}
	fmt.Fprintf(&b, "%s}\n", ind)
	return b.String()
}

// emitFor implements spec.md §4.5 rule 8: the init/update clauses are
// plain assignments — the loop variable was already declared by
// hoistDecls, so the for header only assigns, it never redeclares.
func (g *generator) emitFor(n *ast.For, depth int) string {
	ind := indent(depth)
	var b strings.Builder
	fmt.Fprintf(&b, "%sfor %s = %s; %s; %s = %s {\n",
		ind, n.Init.Name, g.exprCode(n.Init.Value),
		g.exprCode(n.Cond),
		n.Update.Name, g.exprCode(n.Update.Value))
	b.WriteString(g.emitStmts(n.Body.Stmts, depth+1))
	fmt.Fprintf(&b, "%s}\n", ind)
	return b.String()
}
