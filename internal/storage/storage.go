// Package storage implements the flat key-value persistence substrate the
// rest of the core is layered over: get/set of opaque JSON blobs under
// string keys. Two backends exist, a SQLite kv table and a single JSON
// document on disk.
package storage

import "context"

// Storage is the key-value storage adapter.
//
// Values are opaque JSON blobs; callers are responsible for their shape.
// Read returns (nil, nil) when the key is absent or the stored value is not
// valid JSON — a corrupt value is indistinguishable from a missing one, and
// callers must treat both as "never initialized". Writes are last-write-wins
// with no locking across processes.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
