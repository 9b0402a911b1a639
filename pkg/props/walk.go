package props

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// SkipChildren can be returned by a WalkFunc on a branch entry to skip the
// branch's descendants. It is not returned by Walk.
var SkipChildren = errors.New("skip children")

// Entry is one visit of the walker.
type Entry struct {
	// Parent is the node owning the child called Name.
	Parent *Node
	Name   string
	// Index is the element position when Value is an element of the list Name,
	// and -1 otherwise.
	Index int
	Depth int
	Value Value
}

// WalkFunc is called for every child, list and list element under a node.
type WalkFunc func(e Entry) error

// Walk visits the tree below n depth-first. Children are visited in sorted
// name order and list elements in index order; a list child is reported once
// before its elements.
func (n *Node) Walk(fn WalkFunc) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn WalkFunc, depth int) error {
	for _, name := range n.Names() {
		v := n.children[name]
		if err := visit(fn, Entry{Parent: n, Name: name, Index: -1, Depth: depth, Value: v}); err != nil {
			return err
		}
		l, ok := v.(*List)
		if !ok {
			continue
		}
		for i, elem := range l.items {
			if err := visit(fn, Entry{Parent: n, Name: name, Index: i, Depth: depth, Value: elem}); err != nil {
				return err
			}
		}
	}
	return nil
}

func visit(fn WalkFunc, e Entry) error {
	if err := fn(e); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	if child, ok := e.Value.(*Node); ok {
		return child.walk(fn, e.Depth+1)
	}
	return nil
}

// Fprint writes an indented, human-readable dump of the tree to w. It is meant
// for inspection only; use the document package for persistence.
func (n *Node) Fprint(w io.Writer) error {
	return n.Walk(func(e Entry) error {
		indent := strings.Repeat("  ", e.Depth)
		var err error
		switch v := e.Value.(type) {
		case *Node:
			if e.Index < 0 {
				_, err = fmt.Fprintf(w, "%s/%s\n", indent, e.Name)
			} else {
				_, err = fmt.Fprintf(w, "%s/%s[%d]:\n", indent, e.Name, e.Index)
			}
		case Scalar:
			if e.Index < 0 {
				_, err = fmt.Fprintf(w, "%s%s: %s\n", indent, e.Name, v)
			} else {
				_, err = fmt.Fprintf(w, "%s%s[%d]: %s\n", indent, e.Name, e.Index, v)
			}
		}
		return err
	})
}
