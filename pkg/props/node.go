package props

import (
	"slices"
	"strconv"
	"strings"
)

// Node is a branch of the property tree: a set of named children, each holding a
// Scalar, a nested *Node or a *List.
//
// Nodes are only ever created fresh (NewNode, Branch, List.AppendNode, path
// creation), so a tree can never contain a cycle or a shared subtree.
// A Node is not safe for concurrent use.
type Node struct {
	children map[string]Value
}

// NewNode returns an empty node.
func NewNode() *Node {
	return &Node{children: make(map[string]Value)}
}

func (*Node) Kind() Kind { return KindBranch }
func (*Node) sealed()    {}

// Get returns the value stored under name.
func (n *Node) Get(name string) (Value, bool) {
	v, ok := n.children[name]
	return v, ok
}

// Scalar returns the primitive stored under name, if name holds a scalar.
func (n *Node) Scalar(name string) (any, bool) {
	s, ok := n.children[name].(Scalar)
	if !ok {
		return nil, false
	}
	return s.Interface(), true
}

// String returns the scalar stored under name rendered as text.
func (n *Node) String(name string) (string, bool) {
	s, ok := n.children[name].(Scalar)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// Set assigns a scalar to name, replacing whatever was there.
func (n *Node) Set(name string, v any) error {
	s, err := NewScalar(v)
	if err != nil {
		return err
	}
	n.children[name] = s
	return nil
}

// Branch returns the branch child called name, creating it when missing.
// A child of any other kind is overwritten by a new empty branch.
func (n *Node) Branch(name string) *Node {
	if child, ok := n.children[name].(*Node); ok {
		return child
	}
	child := NewNode()
	n.children[name] = child
	return child
}

// ReplaceList installs a new empty list under name, dropping any prior value.
func (n *Node) ReplaceList(name string) *List {
	l := NewList()
	n.children[name] = l
	return l
}

// Names returns the raw child names in sorted order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Children enumerates the node's children. A list child of length k expands to
// name[0] .. name[k-1]; the result is sorted lexicographically.
func (n *Node) Children() []string {
	var out []string
	for name, v := range n.children {
		l, ok := v.(*List)
		if !ok {
			out = append(out, name)
			continue
		}
		for i := range l.Len() {
			out = append(out, name+"["+strconv.Itoa(i)+"]")
		}
	}
	slices.Sort(out)
	return out
}

// Len returns the length of the list named by the last segment of path, or 0
// when there is no such list.
func (n *Node) Len(path string) int {
	if _, err := ParsePath(path); err != nil {
		return 0
	}
	parent := n
	name := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		var err error
		parent, err = n.Resolve(path[:i], false)
		if err != nil {
			return 0
		}
		name = path[i+1:]
	}
	l, ok := parent.children[name].(*List)
	if !ok {
		return 0
	}
	return l.Len()
}
