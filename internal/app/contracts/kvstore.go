package contracts

import "context"

// KeyValueStore is the persistence collaborator: a dumb synchronous
// string-keyed map of JSON-encoded values. Get reports found=false when
// the key is entirely absent, which is distinct from a key holding an
// empty array.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
