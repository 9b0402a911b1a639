package loam

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/aretw0/proptree/pkg/ports"
)

const ext = ".json"

// Store implements ports.DocumentStore on top of a Loam repository.
// Each document is a JSON file whose top-level keys are the document's Metadata.
type Store struct {
	repo core.Repository
	dir  string
}

// New initializes a Loam repository at dir (versioning disabled, strict numbers)
// and wraps it in a Store.
func New(dir string) (*Store, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to ensure loam directory: %w", err)
	}

	// Strict mode keeps integers as json.Number instead of float64.
	repo, err := loam.Init(absPath,
		loam.WithVersioning(false),
		loam.WithStrict(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return NewFromRepository(repo, absPath), nil
}

// NewFromRepository wraps an already initialized repository rooted at dir.
func NewFromRepository(repo core.Repository, dir string) *Store {
	return &Store{repo: repo, dir: dir}
}

func (s *Store) file(name string) string {
	return filepath.Join(s.dir, name+ext)
}

// Save writes the document through Loam.
func (s *Store) Save(ctx context.Context, name string, doc map[string]any) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}
	err := s.repo.Save(ctx, core.Document{
		ID:       name + ext,
		Metadata: core.Metadata(doc),
	})
	if err != nil {
		return fmt.Errorf("loam save failed for %s: %w", name, err)
	}
	return nil
}

// Load reads the document through Loam.
func (s *Store) Load(ctx context.Context, name string) (map[string]any, error) {
	if _, err := os.Stat(s.file(name)); err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}

	doc, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
	}
	out := make(map[string]any, len(doc.Metadata))
	for k, v := range doc.Metadata {
		out[k] = v
	}
	return out, nil
}

// Delete removes the document file from the repository directory.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := os.Remove(s.file(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// List returns the names of the JSON documents in the repository, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	slices.Sort(names)
	return names, nil
}
