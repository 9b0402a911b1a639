package ports

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned when a named document does not exist in the store.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore persists generic documents under a name.
// This lets a tree be checkpointed and restored by independent processes.
type DocumentStore interface {
	// Save persists doc under name, replacing any previous document.
	Save(ctx context.Context, name string, doc map[string]any) error

	// Load retrieves the document stored under name.
	// Returns ErrDocumentNotFound if it does not exist.
	Load(ctx context.Context, name string) (map[string]any, error)

	// Delete removes the document stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the names of the stored documents.
	List(ctx context.Context) ([]string, error)
}
