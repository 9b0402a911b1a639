package proptree

import (
	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/aretw0/proptree/pkg/registry"
)

// Root returns the root node of the process-wide registry.
func Root() *props.Node {
	return registry.Default().Root()
}

// GetNode returns the node at the absolute path abs, or nil when it cannot be
// resolved. With create set, missing nodes are created.
func GetNode(abs string, create bool) *props.Node {
	return registry.Default().GetNode(abs, create)
}

// Set assigns a scalar at abs, creating parent nodes as needed.
func Set(abs string, v any) error {
	return registry.Default().Set(abs, v)
}

// Get returns the scalar at abs.
func Get(abs string) (any, bool) {
	return registry.Default().Get(abs)
}

// Len returns the length of the list at abs.
func Len(abs string) int {
	return registry.Default().Len(abs)
}

// Load imports filename into the node at abs, creating it if needed.
func Load(filename, abs string, opts ...document.Option) error {
	n, err := registry.Default().Resolve(abs, true)
	if err != nil {
		return err
	}
	return document.NewImporter(opts...).Load(filename, n)
}

// Save exports the node at abs to filename.
func Save(filename, abs string, opts ...document.Option) error {
	n, err := registry.Default().Resolve(abs, false)
	if err != nil {
		return err
	}
	return document.NewExporter(opts...).Save(filename, n)
}
