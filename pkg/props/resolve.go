package props

// Resolve walks a relative path from n and returns the node it names.
//
// With create set, missing branches are created and enumerated segments grow
// their list as needed. Without it, a missing child yields ErrNotFound.
// A failed resolution never modifies the tree.
//
// The final segment always names a branch (or a branch inside a list). To
// assign a scalar, resolve the parent and call Set on it.
func (n *Node) Resolve(path string, create bool) (*Node, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	node := n
	for _, step := range steps {
		next, err := node.step(step, create)
		if err != nil {
			return nil, &PathError{Path: path, Segment: step.String(), Err: err}
		}
		node = next
	}
	return node, nil
}

// Child is Resolve without the error detail: it returns nil when the path is
// invalid, missing, or runs through a leaf.
func (n *Node) Child(path string, create bool) *Node {
	child, err := n.Resolve(path, create)
	if err != nil {
		return nil
	}
	return child
}

func (n *Node) step(s Step, create bool) (*Node, error) {
	existing, ok := n.children[s.Name]
	if !ok {
		if !create {
			return nil, ErrNotFound
		}
		if !s.Indexed {
			return n.Branch(s.Name), nil
		}
		l := n.ReplaceList(s.Name)
		l.Extend(s.Index)
		return l.items[s.Index].(*Node), nil
	}

	switch v := existing.(type) {
	case *Node:
		if s.Indexed {
			return nil, ErrInvalidPath
		}
		return v, nil
	case *List:
		if !s.Indexed {
			return nil, ErrInvalidPath
		}
		return v.element(s.Index, create)
	case Scalar:
		return nil, ErrLeafConflict
	default:
		return nil, ErrUnsupportedKind
	}
}

func (l *List) element(index int, create bool) (*Node, error) {
	if index >= len(l.items) {
		if !create {
			return nil, ErrNotFound
		}
		l.Extend(index)
	}
	switch e := l.items[index].(type) {
	case *Node:
		return e, nil
	case Scalar:
		return nil, ErrLeafConflict
	default:
		return nil, ErrUnsupportedKind
	}
}
