// Package collection implements the ordered JSON-array-under-one-key
// persistence contract shared by every entity kind. Each mutating
// operation is a full read-modify-write of the whole collection; the
// store has no concurrent writers, so last writer wins by design of the
// deployment, not of this package.
package collection

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type Store[T any] struct {
	kv   contracts.KeyValueStore
	key  string
	seed func() []T
}

// NewStore binds one storage key to one entity kind. seed may be nil
// for collections that start empty instead of being pre-populated.
func NewStore[T any](kv contracts.KeyValueStore, key string, seed func() []T) *Store[T] {
	return &Store[T]{kv: kv, key: key, seed: seed}
}

// Seed returns the configured starter rows, or nil when the
// collection starts empty.
func (s *Store[T]) Seed() []T {
	if s.seed == nil {
		return nil
	}
	return s.seed()
}

// LoadAll reads the collection in insertion order. When the key is
// entirely missing and a seed is configured, the seed rows are written
// first and returned; a key holding an empty array is never re-seeded.
func (s *Store[T]) LoadAll(ctx context.Context) ([]T, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}

	if !found {
		items := []T{}
		if s.seed != nil {
			items = s.seed()
			if err := s.SaveAll(ctx, items); err != nil {
				return nil, err
			}
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, exceptions.ErrCorruptStoredData(err, s.key)
	}
	return items, nil
}

// SaveAll persists the whole collection in one write, so a failed
// persist leaves the prior stored state untouched.
func (s *Store[T]) SaveAll(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.kv.Set(ctx, s.key, string(data))
}
