package document

import (
	"context"
	"fmt"

	"github.com/aretw0/proptree/pkg/ports"
	"github.com/aretw0/proptree/pkg/props"
)

// Checkpoint exports n and saves it in store under name.
func (exp *Exporter) Checkpoint(ctx context.Context, store ports.DocumentStore, name string, n *props.Node) error {
	err := store.Save(ctx, name, exp.Export(n))
	exp.metrics.ObserveExport(err)
	if err != nil {
		exp.logger.Warn("checkpoint failed", "name", name, "error", err)
		return fmt.Errorf("%w: checkpoint %s: %w", ErrExportWrite, name, err)
	}
	return nil
}

// Restore loads the document saved under name and merges it into n.
// Relative include paths in the stored document resolve against the working
// directory.
func (imp *Importer) Restore(ctx context.Context, store ports.DocumentStore, name string, n *props.Node) error {
	doc, err := store.Load(ctx, name)
	imp.metrics.ObserveImport(err)
	if err != nil {
		imp.logger.Warn("restore failed", "name", name, "error", err)
		return fmt.Errorf("restore %s: %w", name, err)
	}
	return imp.Apply(n, doc, ".")
}
