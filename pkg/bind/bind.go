// Package bind moves data between property tree nodes and Go structs.
//
// Field names follow `mapstructure` tags. Decoding is weakly typed, so a tree
// read back from an exported document (where every scalar became a string)
// still fills int, float and bool fields.
package bind

import (
	"fmt"
	"reflect"

	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/mitchellh/mapstructure"
)

// Option tweaks the mapstructure decoder used by Decode.
type Option func(*mapstructure.DecoderConfig)

// ErrorUnused makes Decode fail when the tree holds keys the target does not
// declare.
func ErrorUnused() Option {
	return func(c *mapstructure.DecoderConfig) {
		c.ErrorUnused = true
	}
}

// Metadata collects the keys Decode used and left unused.
func Metadata(md *mapstructure.Metadata) Option {
	return func(c *mapstructure.DecoderConfig) {
		c.Metadata = md
	}
}

// Decode fills out, a pointer to a struct or map, from the subtree at n.
func Decode(n *props.Node, out any, opts ...Option) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	if err := dec.Decode(document.NewExporter().Snapshot(n)); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	return nil
}

// Encode writes the fields of in, a struct or map, into n. Nested structs
// become branches and slices become lists. Existing children with other
// names are kept.
func Encode(in any, n *props.Node, opts ...document.Option) error {
	var doc map[string]any
	if err := mapstructure.Decode(in, &doc); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	generic, err := generalize(reflect.ValueOf(doc))
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	m, _ := generic.(map[string]any)
	return document.NewImporter(opts...).Apply(n, m, ".")
}

// generalize rewrites what mapstructure leaves typed (slices, nested maps
// and structs inside them) into map[string]any and []any.
func generalize(v reflect.Value) (any, error) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		var m map[string]any
		if err := mapstructure.Decode(v.Interface(), &m); err != nil {
			return nil, err
		}
		return generalize(reflect.ValueOf(m))
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %s is not a string", v.Type().Key())
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			e, err := generalize(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = e
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			e, err := generalize(v.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return out, nil
	case reflect.Invalid:
		return nil, nil
	default:
		return v.Interface(), nil
	}
}
