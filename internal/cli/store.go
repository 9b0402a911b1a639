package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/proptree/pkg/adapters/file"
	"github.com/aretw0/proptree/pkg/adapters/loam"
	"github.com/aretw0/proptree/pkg/adapters/memory"
	"github.com/aretw0/proptree/pkg/adapters/redis"
	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/persistence/middleware"
	"github.com/aretw0/proptree/pkg/ports"
	"github.com/aretw0/proptree/pkg/props"
)

// StoreConfig selects and configures a DocumentStore backend.
type StoreConfig struct {
	// Kind is one of memory, file, redis or loam.
	Kind      string
	Dir       string
	RedisAddr string
	RedisDB   int
	// RedisTTL expires pushed documents when positive.
	RedisTTL time.Duration
	// EncryptionKey, when set, stores documents as AES-256 envelopes.
	EncryptionKey []byte
	// Redact masks the values of matching keys before they are stored.
	Redact []string
}

// OpenStore builds the store described by cfg, wrapped in the redaction and
// encryption middleware it asks for. The returned closer releases backend
// connections and is never nil.
func OpenStore(cfg StoreConfig) (ports.DocumentStore, io.Closer, error) {
	store, closer, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}

	var mws []middleware.Middleware
	if len(cfg.Redact) > 0 {
		mw, err := middleware.NewRedactionMiddleware(cfg.Redact)
		if err != nil {
			closer.Close()
			return nil, nil, err
		}
		mws = append(mws, mw)
	}
	if len(cfg.EncryptionKey) > 0 {
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: cfg.EncryptionKey})
		if err != nil {
			closer.Close()
			return nil, nil, err
		}
		mws = append(mws, mw)
	}
	return middleware.Chain(store, mws...), closer, nil
}

func openBackend(cfg StoreConfig) (ports.DocumentStore, io.Closer, error) {
	switch cfg.Kind {
	case "", "file":
		return file.New(cfg.Dir), nopCloser{}, nil
	case "memory":
		return memory.NewStore(), nopCloser{}, nil
	case "redis":
		var opts []redis.Option
		if cfg.RedisTTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.RedisTTL))
		}
		s := redis.New(cfg.RedisAddr, "", cfg.RedisDB, opts...)
		return s, s, nil
	case "loam":
		dir := cfg.Dir
		if dir == "" {
			dir = "."
		}
		s, err := loam.New(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open loam store: %w", err)
		}
		return s, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want memory, file, redis or loam)", cfg.Kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Push checkpoints file into store under name.
func (a *App) Push(ctx context.Context, store ports.DocumentStore, file, name string) error {
	reg, err := a.load(file)
	if err != nil {
		return err
	}
	if err := document.NewExporter(a.docOpts()...).Checkpoint(ctx, store, name, reg.Root()); err != nil {
		return err
	}
	a.Logger.Info("document pushed", "file", file, "name", name)
	return nil
}

// Pull restores name from store and writes it to out.
func (a *App) Pull(ctx context.Context, store ports.DocumentStore, name, out string) error {
	root := props.NewNode()
	if err := document.NewImporter(a.docOpts()...).Restore(ctx, store, name, root); err != nil {
		return err
	}
	return document.NewExporter(a.docOpts()...).Save(out, root)
}

// Stored prints the names held by store.
func (a *App) Stored(ctx context.Context, store ports.DocumentStore) error {
	names, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(a.Out, n); err != nil {
			return err
		}
	}
	return nil
}
