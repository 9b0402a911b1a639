package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/proptree/pkg/ports"
)

// Mask replaces the values of redacted keys.
const Mask = "***"

type redactionMiddleware struct {
	next     ports.DocumentStore
	patterns []*regexp.Regexp
}

// NewRedactionMiddleware creates a middleware that masks, on save, the value
// of every key matching one of the patterns, at any depth. Masked branches
// and lists are replaced whole. Loads are passed through.
func NewRedactionMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redaction pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.DocumentStore) ports.DocumentStore {
		return &redactionMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *redactionMiddleware) Save(ctx context.Context, name string, doc map[string]any) error {
	return m.next.Save(ctx, name, m.mask(doc))
}

func (m *redactionMiddleware) Load(ctx context.Context, name string) (map[string]any, error) {
	return m.next.Load(ctx, name)
}

func (m *redactionMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}

func (m *redactionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// mask returns a copy of doc; the caller's document is left untouched.
func (m *redactionMiddleware) mask(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if m.matches(k) {
			out[k] = Mask
			continue
		}
		out[k] = m.maskValue(v)
	}
	return out
}

func (m *redactionMiddleware) maskValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return m.mask(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = m.maskValue(e)
		}
		return out
	default:
		return v
	}
}

func (m *redactionMiddleware) matches(key string) bool {
	for _, p := range m.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
