package syntax

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/tinyc/internal/types"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Tree(node))
}

// FprintYAML writes a YAML representation of the AST to w.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Tree(node)); err != nil {
		return err
	}
	return enc.Close()
}

// Tree converts an AST into plain maps and slices suitable for encoding
// or structural comparison. Statement sequences become lists.
func Tree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return map[string]interface{}{
			"type": "File",
			"body": seqTree(n.Body),
		}

	case *IfStmt:
		m := map[string]interface{}{
			"type": "IfStmt",
			"line": n.pos.Line(),
			"cond": Tree(exprNode(n.Cond)),
			"then": seqTree(n.Then),
		}
		if n.Else != nil {
			m["else"] = seqTree(n.Else)
		}
		return m

	case *RepeatStmt:
		return map[string]interface{}{
			"type":  "RepeatStmt",
			"line":  n.pos.Line(),
			"body":  seqTree(n.Body),
			"until": Tree(exprNode(n.Cond)),
		}

	case *AssignStmt:
		return map[string]interface{}{
			"type":  "AssignStmt",
			"line":  n.pos.Line(),
			"name":  n.Name,
			"value": Tree(exprNode(n.X)),
		}

	case *ReadStmt:
		return map[string]interface{}{
			"type": "ReadStmt",
			"line": n.pos.Line(),
			"name": n.Name,
		}

	case *WriteStmt:
		return map[string]interface{}{
			"type":  "WriteStmt",
			"line":  n.pos.Line(),
			"value": Tree(exprNode(n.X)),
		}

	case *Name:
		return withType(n, map[string]interface{}{
			"type": "Name",
			"line": n.pos.Line(),
			"name": n.Value,
		})

	case *BasicLit:
		return withType(n, map[string]interface{}{
			"type":  "BasicLit",
			"line":  n.pos.Line(),
			"value": n.Value,
		})

	case *Operation:
		return withType(n, map[string]interface{}{
			"type": "Operation",
			"line": n.pos.Line(),
			"op":   n.Op.String(),
			"x":    Tree(exprNode(n.X)),
			"y":    Tree(exprNode(n.Y)),
		})
	}
	return nil
}

// seqTree converts a statement sequence into a list.
func seqTree(s Stmt) []interface{} {
	list := []interface{}{}
	for ; s != nil; s = s.Next() {
		list = append(list, Tree(s))
	}
	return list
}

// withType records the inferred type of a checked expression.
func withType(x Expr, m map[string]interface{}) map[string]interface{} {
	if types.IsValid(x.Type()) {
		m["inferred"] = x.Type().String()
	}
	return m
}
