package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ResultStore caches completed run results.
// The machine is deterministic, so a key fully identifies a result.
type ResultStore interface {
	// Save persists the result under the given key.
	Save(ctx context.Context, key string, result *domain.Result) error

	// Load retrieves a result.
	// Returns domain.ErrRunNotFound if the key does not exist.
	Load(ctx context.Context, key string) (*domain.Result, error)

	// Delete removes a result.
	Delete(ctx context.Context, key string) error

	// List returns the stored keys.
	List(ctx context.Context) ([]string, error)
}
