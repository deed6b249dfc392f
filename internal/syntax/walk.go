package syntax

import "errors"

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first pre-order.
// If visitor returns false, children are not visited; siblings still are.
func Walk(node Node, v Visitor) {
	_ = Traverse(node, func(n Node) error {
		if !v(n) {
			return SkipChildren
		}
		return nil
	}, nil)
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// SkipChildren may be returned by a pre hook of Traverse to skip the
// children (but not the siblings) of the current node.
var SkipChildren = errors.New("skip children")

// Traverse walks the tree rooted at node depth-first. For every node it
// calls pre, then traverses the node's children in slot order, then calls
// post, and then moves on to the node's next sibling. Either hook may be
// nil. The first error returned by a hook (other than SkipChildren from
// pre) stops the traversal and is returned.
//
// Sibling chains are followed iteratively; only child slots recurse, so
// stack depth is bounded by nesting, not by program length.
func Traverse(node Node, pre, post func(Node) error) error {
	for n := node; n != nil; n = nextSibling(n) {
		if pre != nil {
			err := pre(n)
			if err == SkipChildren {
				continue
			}
			if err != nil {
				return err
			}
		}

		if err := traverseChildren(n, pre, post); err != nil {
			return err
		}

		if post != nil {
			if err := post(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// traverseChildren traverses the child slots of n in grammar order.
func traverseChildren(n Node, pre, post func(Node) error) error {
	for _, c := range children(n) {
		if c == nil {
			continue
		}
		if err := Traverse(c, pre, post); err != nil {
			return err
		}
	}
	return nil
}

// children returns the non-sibling child slots of n in grammar order.
// Empty slots are returned as nil.
func children(n Node) []Node {
	switch n := n.(type) {
	case *File:
		return []Node{stmtNode(n.Body)}
	case *IfStmt:
		return []Node{exprNode(n.Cond), stmtNode(n.Then), stmtNode(n.Else)}
	case *RepeatStmt:
		return []Node{stmtNode(n.Body), exprNode(n.Cond)}
	case *AssignStmt:
		return []Node{exprNode(n.X)}
	case *WriteStmt:
		return []Node{exprNode(n.X)}
	case *Operation:
		return []Node{exprNode(n.X), exprNode(n.Y)}
	}
	// Leaf nodes: Name, BasicLit, ReadStmt
	return nil
}

// nextSibling returns the statement following n in its sequence.
func nextSibling(n Node) Node {
	if s, ok := n.(Stmt); ok {
		return stmtNode(s.Next())
	}
	return nil
}

// stmtNode and exprNode convert possibly-nil interface values to Node
// without producing a non-nil Node holding a nil pointer.
func stmtNode(s Stmt) Node {
	if s == nil {
		return nil
	}
	return s
}

func exprNode(x Expr) Node {
	if x == nil {
		return nil
	}
	return x
}
