// Package symtab implements the symbol table built by the analyzer: a
// mapping from identifier name to the lines on which it occurs.
package symtab

import (
	"fmt"
	"strconv"
	"strings"
)

// Record holds every occurrence of one identifier.
type Record struct {
	Name  string
	Lines []int // occurrence lines, first seen to last seen
}

// Table maps identifier names to their records. Records keep the order
// in which names were first inserted. Names compare byte for byte.
// The zero value is not usable; call New.
type Table struct {
	elems map[string]*Record
	order []*Record
}

// New returns an empty table.
func New() *Table {
	return &Table{elems: make(map[string]*Record)}
}

// Insert records an occurrence of name on line. The first occurrence
// creates the record; later ones append to it.
func (t *Table) Insert(name string, line int) {
	if r := t.elems[name]; r != nil {
		r.Lines = append(r.Lines, line)
		return
	}
	r := &Record{Name: name, Lines: []int{line}}
	t.elems[name] = r
	t.order = append(t.order, r)
}

// Find reports whether name has been inserted.
func (t *Table) Find(name string) bool {
	_, ok := t.elems[name]
	return ok
}

// Lines returns the occurrence lines of name, or nil if name is unknown.
// The result is a copy.
func (t *Table) Lines(name string) []int {
	r := t.elems[name]
	if r == nil {
		return nil
	}
	return append([]int(nil), r.Lines...)
}

// Records returns a copy of every record in first-insertion order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.order))
	for i, r := range t.order {
		out[i] = Record{Name: r.Name, Lines: append([]int(nil), r.Lines...)}
	}
	return out
}

// Names returns the names in first-insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	for i, r := range t.order {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of distinct names.
func (t *Table) Len() int {
	return len(t.order)
}

// String returns the table as two columns, one name per line.
func (t *Table) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%-10s\t%s\n", "SymbolName", "Lines")
	for _, r := range t.order {
		lines := make([]string, len(r.Lines))
		for i, l := range r.Lines {
			lines[i] = strconv.Itoa(l)
		}
		fmt.Fprintf(&buf, "%-10s\t%s\n", r.Name, strings.Join(lines, " "))
	}
	return buf.String()
}
