package props

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindBranch
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindBranch:
		return "branch"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a child of a Node: a Scalar, a *Node (branch) or a *List.
// The set of implementations is closed.
type Value interface {
	Kind() Kind
	sealed()
}

// Scalar is an atomic leaf value (string, number or boolean).
type Scalar struct {
	v any
}

// NewScalar wraps a primitive. Strings, booleans, Go integer and float types and
// json.Number are accepted; any other type yields ErrUnsupportedKind.
func NewScalar(v any) (Scalar, error) {
	switch v.(type) {
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Scalar{v: v}, nil
	default:
		return Scalar{}, fmt.Errorf("%w: %T", ErrUnsupportedKind, v)
	}
}

func (Scalar) Kind() Kind { return KindScalar }
func (Scalar) sealed()    {}

// Interface returns the wrapped primitive unchanged.
func (s Scalar) Interface() any { return s.v }

// String renders the scalar as text. This is the form written on export.
func (s Scalar) String() string {
	switch v := s.v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// List is an ordered sequence of *Node and Scalar elements, addressed in paths
// as name[index].
type List struct {
	items []Value
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

func (*List) Kind() Kind { return KindList }
func (*List) sealed()    {}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns element i, or nil when i is out of range.
func (l *List) At(i int) Value {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Items returns a copy of the elements.
func (l *List) Items() []Value {
	out := make([]Value, len(l.items))
	copy(out, l.items)
	return out
}

// AppendScalar appends a scalar element.
func (l *List) AppendScalar(s Scalar) {
	l.items = append(l.items, s)
}

// AppendNode appends a fresh branch element and returns it.
func (l *List) AppendNode() *Node {
	n := NewNode()
	l.items = append(l.items, n)
	return n
}

// MaxIndex bounds list indices in paths and list growth.
const MaxIndex = 1 << 20

// Extend grows the list with empty branch nodes until index is addressable.
// Existing elements are never touched. Indices at or above MaxIndex are ignored.
func (l *List) Extend(index int) {
	if index >= MaxIndex {
		return
	}
	for i := len(l.items); i <= index; i++ {
		l.items = append(l.items, NewNode())
	}
}
