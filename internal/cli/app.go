package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/proptree/internal/logging"
	"github.com/aretw0/proptree/internal/presentation/graph"
	"github.com/aretw0/proptree/internal/presentation/tui"
	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/aretw0/proptree/pkg/registry"
)

// App carries what every command needs: where to write and how to report.
type App struct {
	Out     io.Writer
	Logger  *slog.Logger
	Metrics *observability.Metrics
	// Color enables terminal styling of tree and describe output.
	Color bool
	// Strict turns partial imports (failed includes, skipped values) into
	// errors instead of warnings.
	Strict bool
}

// NewApp creates an App writing to out with a nop logger.
func NewApp(out io.Writer) *App {
	return &App{Out: out, Logger: logging.NewNop()}
}

func (a *App) docOpts() []document.Option {
	return []document.Option{document.WithLogger(a.Logger), document.WithMetrics(a.Metrics)}
}

// load imports file into a registry of its own.
func (a *App) load(file string) (*registry.Registry, error) {
	reg := registry.New(registry.WithLogger(a.Logger), registry.WithMetrics(a.Metrics))
	err := document.NewImporter(a.docOpts()...).Load(file, reg.Root())
	if err == nil {
		return reg, nil
	}
	if errors.Is(err, document.ErrImportParse) && len(reg.Root().Names()) == 0 {
		return nil, err
	}
	if a.Strict {
		return nil, err
	}
	a.Logger.Warn("partial import", "file", file, "error", err)
	return reg, nil
}

// abs turns a command-line path into a registry path. Both "a/b" and "/a/b"
// address the same node; "" and "/" are the document root.
func abs(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}

func (a *App) node(reg *registry.Registry, path string) (*props.Node, error) {
	return reg.Resolve(abs(path), false)
}

// Tree prints the subtree at path.
func (a *App) Tree(file, path string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	n, err := a.node(reg, path)
	if err != nil {
		return err
	}
	return tui.NewTreePrinter(a.Out, a.Color).Print(n)
}

// List prints the children of the node at path, one per line.
func (a *App) List(file, path string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	n, err := a.node(reg, path)
	if err != nil {
		return err
	}
	for _, name := range n.Children() {
		if _, err := fmt.Fprintln(a.Out, name); err != nil {
			return err
		}
	}
	return nil
}

// Get prints the scalar at path.
func (a *App) Get(file, path string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	v, ok := reg.Get(abs(path))
	if !ok {
		return fmt.Errorf("%s: %w", path, props.ErrNotFound)
	}
	s, err := props.NewScalar(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.Out, s.String())
	return err
}

// Set stores value as a string scalar at path and writes file back.
func (a *App) Set(file, path, value string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	if err := reg.Set(abs(path), value); err != nil {
		return err
	}
	return document.NewExporter(a.docOpts()...).Save(file, reg.Root())
}

// Len prints the length of the list at path.
func (a *App) Len(file, path string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.Out, reg.Len(abs(path)))
	return err
}

// Convert re-encodes in as out, with includes expanded. Formats follow the
// file extensions.
func (a *App) Convert(in, out string) error {
	reg, err := a.load(in)
	if err != nil {
		return err
	}
	return document.NewExporter(a.docOpts()...).Save(out, reg.Root())
}

// Describe renders a markdown summary of every scalar in file.
func (a *App) Describe(file string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	render, err := tui.NewRenderer(a.Color)
	if err != nil {
		return err
	}
	out, err := render(tui.DescribeMarkdown(file, reg.Root()))
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.Out, out)
	return err
}

// Graph prints a Mermaid flowchart of the subtree at path, highlighting the
// given paths.
func (a *App) Graph(file, path string, highlight []string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	n, err := a.node(reg, path)
	if err != nil {
		return err
	}
	var overlay *graph.Overlay
	if len(highlight) > 0 {
		overlay = &graph.Overlay{Highlight: highlight}
	}
	_, err = io.WriteString(a.Out, graph.GenerateMermaid(n, overlay))
	return err
}
