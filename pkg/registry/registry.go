package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/proptree/internal/logging"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
)

// Registry owns a root node and resolves absolute paths against it.
// Like the tree itself, a Registry is not safe for concurrent mutation.
type Registry struct {
	root    *props.Node
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option defines a functional option for the Registry.
type Option func(*Registry)

// WithLogger sets the logger used for path diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics counts failed resolutions.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithRoot makes the registry serve an existing tree.
func WithRoot(root *props.Node) Option {
	return func(r *Registry) {
		r.root = root
	}
}

// New creates a registry with an empty root.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.root == nil {
		r.root = props.NewNode()
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, creating it on first use.
// It is never replaced afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// Root returns the root node.
func (r *Registry) Root() *props.Node {
	return r.root
}

// Resolve returns the node at the absolute path abs. "/" is the root itself.
// With create set, missing nodes along the way are created.
func (r *Registry) Resolve(abs string, create bool) (*props.Node, error) {
	n, err := r.resolve(abs, create)
	if err != nil {
		r.report(abs, err)
	}
	return n, err
}

// GetNode is Resolve without the error: it returns nil when the path is
// invalid, missing or blocked by a scalar.
func (r *Registry) GetNode(abs string, create bool) *props.Node {
	n, _ := r.Resolve(abs, create)
	return n
}

// Set assigns v to the scalar named by the last segment of abs, creating the
// parent nodes as needed.
func (r *Registry) Set(abs string, v any) error {
	parent, name, err := r.split(abs, true)
	if err != nil {
		r.report(abs, err)
		return err
	}
	return parent.Set(name, v)
}

// Get returns the scalar at abs.
func (r *Registry) Get(abs string) (any, bool) {
	parent, name, err := r.split(abs, false)
	if err != nil {
		r.report(abs, err)
		return nil, false
	}
	return parent.Scalar(name)
}

// Len returns the length of the list at abs, or 0 when there is none.
func (r *Registry) Len(abs string) int {
	rel, ok := strings.CutPrefix(abs, "/")
	if !ok {
		return 0
	}
	return r.root.Len(rel)
}

func (r *Registry) resolve(abs string, create bool) (*props.Node, error) {
	rel, ok := strings.CutPrefix(abs, "/")
	if !ok {
		return nil, &props.PathError{Path: abs, Segment: abs, Err: props.ErrInvalidPath}
	}
	n, err := r.root.Resolve(rel, create)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", abs, err)
	}
	return n, nil
}

// split resolves the parent of abs and returns it with the final name, which
// must be a bare name.
func (r *Registry) split(abs string, create bool) (*props.Node, string, error) {
	i := strings.LastIndexByte(abs, '/')
	if i < 0 {
		return nil, "", &props.PathError{Path: abs, Segment: abs, Err: props.ErrInvalidPath}
	}
	name := abs[i+1:]
	steps, err := props.ParsePath(name)
	if err != nil || len(steps) != 1 || steps[0].Indexed {
		return nil, "", &props.PathError{Path: abs, Segment: name, Err: props.ErrInvalidPath}
	}
	if i == 0 {
		return r.root, name, nil
	}
	parent, err := r.resolve(abs[:i], create)
	if err != nil {
		return nil, "", err
	}
	return parent, name, nil
}

func (r *Registry) report(abs string, err error) {
	r.metrics.ObserveResolve(err)
	if errors.Is(err, props.ErrNotFound) {
		return
	}
	r.logger.Warn("path rejected", "path", abs, "error", err)
}
