// Package snapshot persists the aggregate as a single serialized blob under
// a fixed storage key. The store is deliberately tiny: the state layer is
// the only producer and consumer of the blob, and a missing or unreadable
// blob is always recoverable (the normalizer rebuilds a default tree), so
// backends only need opaque load/save of one value.
package snapshot

import (
	"context"
	"errors"
)

// StorageKey is the fixed key the aggregate blob lives under, shared by all
// backends. The trailing version segment matches model.SchemaVersion.
const StorageKey = "moodfood:floor:state:v1"

// ErrNotFound is returned by Load when no blob has been saved yet. Callers
// should fall back to a freshly built default state.
var ErrNotFound = errors.New("snapshot: not found")

// Store loads and saves the aggregate blob. Save errors are non-fatal by
// contract: the in-memory tree stays authoritative for the session.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}
