package document

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/proptree/internal/fsutil"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
)

// Exporter turns property tree nodes into generic documents.
type Exporter struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewExporter creates an Exporter.
func NewExporter(opts ...Option) *Exporter {
	o := applyOptions(opts)
	return &Exporter{logger: o.logger, metrics: o.metrics}
}

// Export converts n into nested maps and lists. Every scalar is rendered as a
// string, so numeric and boolean types are not preserved.
func (exp *Exporter) Export(n *props.Node) map[string]any {
	return exp.build(n, func(s props.Scalar) any { return s.String() })
}

// Snapshot is Export without stringification: scalars keep their Go values.
func (exp *Exporter) Snapshot(n *props.Node) map[string]any {
	return exp.build(n, props.Scalar.Interface)
}

// Save exports n and writes it to filename, encoded according to the file
// extension. The file is replaced atomically.
func (exp *Exporter) Save(filename string, n *props.Node) error {
	err := exp.save(filename, n)
	exp.metrics.ObserveExport(err)
	if err != nil {
		exp.logger.Warn("export abandoned", "file", filename, "error", err)
	}
	return err
}

func (exp *Exporter) save(filename string, n *props.Node) error {
	data, err := Encode(FormatFor(filename), exp.Export(n))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExportWrite, filename, err)
	}
	if err := fsutil.WriteFileAtomic(filename, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExportWrite, filename, err)
	}
	return nil
}

func (exp *Exporter) build(n *props.Node, scalar func(props.Scalar) any) map[string]any {
	docs := map[*props.Node]map[string]any{n: {}}

	_ = n.Walk(func(e props.Entry) error {
		parent := docs[e.Parent]

		var out any
		switch v := e.Value.(type) {
		case *props.Node:
			m := map[string]any{}
			docs[v] = m
			out = m
		case *props.List:
			// elements are filled in by the entries that follow
			out = make([]any, v.Len())
		case props.Scalar:
			out = scalar(v)
		default:
			exp.metrics.ObserveSkip("export")
			exp.logger.Warn("skipping value", "key", e.Name, "error",
				fmt.Errorf("%w: %T", props.ErrUnsupportedKind, e.Value))
			return nil
		}

		if e.Index < 0 {
			parent[e.Name] = out
			return nil
		}
		if list, ok := parent[e.Name].([]any); ok {
			list[e.Index] = out
		}
		return nil
	})
	return docs[n]
}
