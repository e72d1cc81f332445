// Package kv is the local persistence adapter: named keys mapped to
// serialized text, mirroring browser local storage semantics over a
// pluggable backend.
package kv

import "context"

// Storage keys used by the application. Collections are rewritten as a
// whole on every mutation; there is no per-record addressing.
const (
	KeyAssignmentEntries = "qmsEntries"
	KeySourcingEntries   = "sourcingEntries"
	KeyUser              = "qms_user"
	KeyTheme             = "qms_theme"
	KeyToken             = "qms_token"
)

// Store reads and writes named values. Get returns (nil, nil) when the
// key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
