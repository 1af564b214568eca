package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/lclang/lcc/internal/ast"
	"github.com/lclang/lcc/internal/token"
)

const indentSize = 2

// astPrinter is an ast.Visitor that renders a Program as an indented
// tree, one line per node — grounded on the teacher's PrintingVisitor
// (main.go/print_visitor.go), retargeted from the teacher's
// Children/Literal() node shape to the named-field ast package.
type astPrinter struct {
	depth int
	buf   bytes.Buffer
}

func (p *astPrinter) line(format string, args ...interface{}) {
	for i := 0; i < p.depth*indentSize; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *astPrinter) nested(f func()) {
	p.depth++
	f()
	p.depth--
}

func (p *astPrinter) VisitProgram(n *ast.Program) {
	p.line("Program")
	p.nested(func() {
		for _, fn := range n.Functions {
			fn.Accept(p)
		}
		for _, stmt := range n.Globals {
			stmt.Accept(p)
		}
	})
}

func (p *astPrinter) VisitFunction(n *ast.Function) {
	names := make([]string, len(n.Params))
	for i, param := range n.Params {
		names[i] = param.Name
	}
	p.line("Function %s(%v) @%d:%d", n.Name, names, n.Line, n.Col)
	p.nested(func() {
		for _, stmt := range n.Body {
			stmt.Accept(p)
		}
	})
}

func (p *astPrinter) VisitVarDecl(n *ast.VarDecl) {
	p.line("VarDecl %s %s @%d:%d", n.Type, n.Name, n.Line, n.Col)
}

func (p *astPrinter) VisitAssignment(n *ast.Assignment) {
	p.line("Assignment %s @%d:%d", n.Name, n.Line, n.Col)
	p.nested(func() { n.Value.Accept(p) })
}

func (p *astPrinter) VisitCall(n *ast.Call) {
	p.line("Call %s @%d:%d", n.Callee, n.Line, n.Col)
	p.nested(func() {
		for _, arg := range n.Args {
			arg.Accept(p)
		}
	})
}

func (p *astPrinter) VisitReturn(n *ast.Return) {
	p.line("Return @%d:%d", n.Line, n.Col)
	if n.Value != nil {
		p.nested(func() { n.Value.Accept(p) })
	}
}

func (p *astPrinter) VisitIf(n *ast.If) {
	p.line("If @%d:%d", n.Line, n.Col)
	p.nested(func() {
		n.Cond.Accept(p)
		n.Then.Accept(p)
		if n.Else != nil {
			n.Else.Accept(p)
		}
	})
}

func (p *astPrinter) VisitBlock(n *ast.Block) {
	p.line("Block")
	p.nested(func() {
		for _, stmt := range n.Stmts {
			stmt.Accept(p)
		}
	})
}

func (p *astPrinter) VisitFor(n *ast.For) {
	p.line("For @%d:%d", n.Line, n.Col)
	p.nested(func() {
		n.Init.Accept(p)
		n.Cond.Accept(p)
		n.Update.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *astPrinter) VisitLiteral(n *ast.Literal) {
	p.line("Literal %s", n.Raw)
}

func (p *astPrinter) VisitVariable(n *ast.Variable) {
	p.line("Variable %s @%d:%d", n.Name, n.Line, n.Col)
}

func (p *astPrinter) VisitBinaryOp(n *ast.BinaryOp) {
	p.line("BinaryOp %s @%d:%d", n.Op, n.Line, n.Col)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *astPrinter) VisitComparison(n *ast.Comparison) {
	p.line("Comparison %s @%d:%d", n.Op, n.Line, n.Col)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *astPrinter) VisitLogicalOp(n *ast.LogicalOp) {
	p.line("LogicalOp %s @%d:%d", n.Op, n.Line, n.Col)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *astPrinter) VisitStringIndex(n *ast.StringIndex) {
	p.line("StringIndex %s @%d:%d", n.Target.Name, n.Line, n.Col)
	p.nested(func() { n.Index.Accept(p) })
}

// dumpProgramAST renders program's tree to w. program is always non-nil
// (compiler.Compile's Program field is never nil, even on a parse
// failure), but a nil Program is tolerated defensively since this is a
// debug-only side channel.
func dumpProgramAST(w io.Writer, program *ast.Program) {
	if program == nil {
		return
	}
	p := &astPrinter{}
	program.Accept(p)
	io.Copy(w, &p.buf)
}

// dumpTokenStream renders one line per token, grounded on the teacher's
// own lexer_test.go token-by-token assertions.
func dumpTokenStream(w io.Writer, tokens []token.Token) {
	for _, t := range tokens {
		fmt.Fprintf(w, "%-10s %-15q line=%d col=%d\n", t.Kind, t.Lexeme, t.Line, t.Column)
	}
}
