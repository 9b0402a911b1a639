package document

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/proptree/internal/logging"
	"github.com/aretw0/proptree/pkg/observability"
	"github.com/aretw0/proptree/pkg/props"
)

// IncludeKey names the directive that splices another document into the
// current node before the remaining keys are applied.
const IncludeKey = "include"

// Importer merges documents into property tree nodes.
type Importer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option defines a functional option shared by Importer and Exporter.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// WithLogger sets the structured logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records imports, exports and skipped values.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	return o
}

// NewImporter creates an Importer.
func NewImporter(opts ...Option) *Importer {
	o := applyOptions(opts)
	return &Importer{logger: o.logger, metrics: o.metrics}
}

// Load reads filename and merges it into target.
//
// In JSON files, lines starting with "//" are stripped before parsing. A file that cannot be
// read or parsed is abandoned and reported with ErrImportParse; whatever was
// applied before the failure stays in the tree. Include failures and skipped
// values do not stop the import but are returned, joined, once it completes.
func (imp *Importer) Load(filename string, target *props.Node) error {
	return imp.load(filename, target, nil)
}

// Apply merges a parsed document into target. Relative include paths are
// resolved against baseDir.
func (imp *Importer) Apply(target *props.Node, doc map[string]any, baseDir string) error {
	return imp.apply(target, doc, baseDir, nil)
}

func (imp *Importer) load(filename string, target *props.Node, stack []string) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filepath.Clean(filename)
	}
	chain := append(slices.Clone(stack), abs)
	if slices.Contains(stack, abs) {
		err := fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(chain, " -> "))
		imp.logger.Warn("include skipped", "file", filename, "error", err)
		return err
	}

	doc, err := imp.read(filename)
	imp.metrics.ObserveImport(err)
	if err != nil {
		imp.logger.Warn("import abandoned", "file", filename, "error", err)
		return err
	}

	imp.logger.Debug("importing document", "file", filename)
	return imp.apply(target, doc, filepath.Dir(filename), chain)
}

func (imp *Importer) read(filename string) (map[string]any, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportParse, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImportParse, filename, err)
	}

	format := FormatFor(filename)
	if format == JSON {
		data = StripComments(data)
	}
	doc, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImportParse, filename, err)
	}
	return doc, nil
}

func (imp *Importer) apply(target *props.Node, doc map[string]any, baseDir string, stack []string) error {
	var errs []error

	// The include goes first so sibling keys override what it brings in.
	if inc, ok := doc[IncludeKey]; ok {
		if file, isString := inc.(string); isString {
			if !filepath.IsAbs(file) {
				file = filepath.Join(baseDir, file)
			}
			if err := imp.load(file, target, stack); err != nil {
				errs = append(errs, err)
			}
		} else {
			errs = append(errs, imp.skip(IncludeKey, inc))
		}
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		if k != IncludeKey {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, key := range keys {
		switch v := doc[key].(type) {
		case map[string]any:
			if err := imp.apply(target.Branch(key), v, baseDir, stack); err != nil {
				errs = append(errs, err)
			}
		case []any:
			if err := imp.applyList(target.ReplaceList(key), key, v, baseDir, stack); err != nil {
				errs = append(errs, err)
			}
		default:
			if err := target.Set(key, v); err != nil {
				errs = append(errs, imp.skip(key, v))
			}
		}
	}
	return errors.Join(errs...)
}

func (imp *Importer) applyList(l *props.List, key string, items []any, baseDir string, stack []string) error {
	var errs []error
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			if err := imp.apply(l.AppendNode(), m, baseDir, stack); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		s, err := props.NewScalar(item)
		if err != nil {
			errs = append(errs, imp.skip(fmt.Sprintf("%s[%d]", key, i), item))
			continue
		}
		l.AppendScalar(s)
	}
	return errors.Join(errs...)
}

func (imp *Importer) skip(key string, v any) error {
	err := fmt.Errorf("%w: %s has type %T", props.ErrUnsupportedKind, key, v)
	imp.metrics.ObserveSkip("import")
	imp.logger.Warn("skipping value", "key", key, "error", err)
	return err
}
