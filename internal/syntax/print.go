package syntax

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/tinyc/internal/types"
)

// Fprint writes a textual representation of the AST to w.
// Expressions that have been type-checked are annotated with their type.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// seq prints a statement sequence under a heading.
func (p *printer) seq(heading string, s Stmt) {
	p.printf("%s:\n", heading)
	p.indent++
	for ; s != nil; s = s.Next() {
		p.print(s)
	}
	p.indent--
}

// slot prints a single expression under a heading.
func (p *printer) slot(heading string, x Expr) {
	p.printf("%s:\n", heading)
	p.indent++
	p.print(exprNode(x))
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		p.seq("Body", n.Body)
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.slot("Cond", n.Cond)
		p.seq("Then", n.Then)
		if n.Else != nil {
			p.seq("Else", n.Else)
		}
		p.indent--

	case *RepeatStmt:
		p.printf("RepeatStmt %s\n", n.pos)
		p.indent++
		p.seq("Body", n.Body)
		p.slot("Until", n.Cond)
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s %s\n", n.pos, n.Name)
		p.indent++
		p.print(exprNode(n.X))
		p.indent--

	case *ReadStmt:
		p.printf("ReadStmt %s %s\n", n.pos, n.Name)

	case *WriteStmt:
		p.printf("WriteStmt %s\n", n.pos)
		p.indent++
		p.print(exprNode(n.X))
		p.indent--

	case *Name:
		p.printf("Name %s %q%s\n", n.pos, n.Value, typeSuffix(n))

	case *BasicLit:
		p.printf("BasicLit %s %s%s\n", n.pos, n.Lit, typeSuffix(n))

	case *Operation:
		p.printf("Operation %s %s%s\n", n.pos, n.Op, typeSuffix(n))
		p.indent++
		p.slot("X", n.X)
		p.slot("Y", n.Y)
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// typeSuffix returns " (type)" for a checked expression, "" otherwise.
func typeSuffix(x Expr) string {
	if !types.IsValid(x.Type()) {
		return ""
	}
	return " (" + x.Type().String() + ")"
}

// ExprString returns the fully parenthesized source form of an
// expression, e.g. ((1+2)-3).
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch x := x.(type) {
	case nil:
		b.WriteString("<nil>")
	case *Name:
		b.WriteString(x.Value)
	case *BasicLit:
		b.WriteString(x.Lit)
	case *Operation:
		b.WriteByte('(')
		writeExpr(b, x.X)
		b.WriteString(x.Op.String())
		writeExpr(b, x.Y)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", x)
	}
}
