package syntax

import "github.com/you-not-fish/tinyc/internal/types"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes: Statements and Expressions. All nodes
// implement the Node interface; the marker methods close each class to
// the variants declared in this file.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	Type() types.Type // inferred type; types.Invalid until checked
	SetType(types.Type)
	aExpr()
}

// Stmt is the interface for all statement nodes.
// Statements of a sequence are linked through Next.
type Stmt interface {
	Node
	Next() Stmt
	SetNext(Stmt)
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct {
	node
	typ types.Type
}

func (x *expr) Type() types.Type     { return x.typ }
func (x *expr) SetType(t types.Type) { x.typ = t }
func (*expr) aExpr()                 {}

// stmt is embedded in all statement nodes.
type stmt struct {
	node
	next Stmt
}

func (s *stmt) Next() Stmt     { return s.next }
func (s *stmt) SetNext(n Stmt) { s.next = n }
func (*stmt) aStmt()           {}

// ----------------------------------------------------------------------------
// Program

// File is the root of a parsed program. It owns every node of the tree.
type File struct {
	node
	Body Stmt // first statement of the top-level sequence

	arena *arena
}

// Release tears the tree down in one pass: every node is unlinked from
// its children and siblings and the file forgets its body. It returns
// false, doing nothing, if the tree was already released.
func (f *File) Release() bool {
	if f.arena == nil {
		return false
	}
	f.arena.release()
	f.arena = nil
	f.Body = nil
	return true
}

// NumNodes returns the number of nodes allocated for the tree,
// or 0 once it has been released.
func (f *File) NumNodes() int {
	if f.arena == nil {
		return 0
	}
	return len(f.arena.nodes)
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents an integer literal.
type BasicLit struct {
	expr
	Value int    // decoded value
	Lit   string // literal text as written
}

// Operation represents a binary operation: X Op Y.
type Operation struct {
	expr
	Op Token // _Eql, _Lss, _Add, _Sub, _Mul or _Div
	X  Expr  // left operand
	Y  Expr  // right operand
}

// ----------------------------------------------------------------------------
// Statements

// IfStmt represents: if Cond then Then [else Else] end
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt // head of the then-sequence
	Else Stmt // head of the else-sequence, nil if absent
}

// RepeatStmt represents: repeat Body until Cond
type RepeatStmt struct {
	stmt
	Body Stmt // head of the loop body
	Cond Expr
}

// AssignStmt represents: Name := X
type AssignStmt struct {
	stmt
	Name string // target identifier
	X    Expr
}

// ReadStmt represents: read Name
type ReadStmt struct {
	stmt
	Name string // target identifier
}

// WriteStmt represents: write X
type WriteStmt struct {
	stmt
	X Expr
}

// ----------------------------------------------------------------------------
// Arena

// arena records every node allocated for one tree so that the tree can be
// released as a unit.
type arena struct {
	nodes []Node
}

// add registers n with the arena and returns it.
func add[N Node](a *arena, n N) N {
	a.nodes = append(a.nodes, n)
	return n
}

// release unlinks all nodes. Nodes are visited in allocation order, so no
// recursion over the tree is needed.
func (a *arena) release() {
	for i, n := range a.nodes {
		switch n := n.(type) {
		case *Operation:
			n.X, n.Y = nil, nil
		case *IfStmt:
			n.Cond, n.Then, n.Else = nil, nil, nil
			n.next = nil
		case *RepeatStmt:
			n.Body, n.Cond = nil, nil
			n.next = nil
		case *AssignStmt:
			n.X = nil
			n.next = nil
		case *ReadStmt:
			n.next = nil
		case *WriteStmt:
			n.X = nil
			n.next = nil
		}
		a.nodes[i] = nil
	}
	a.nodes = nil
}
