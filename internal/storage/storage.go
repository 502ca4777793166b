// Package storage provides the key-value substrate the document store
// persists into: string get/set on a single key, atomic at the
// single-key level, no transactions.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

// Backend is a minimal string key-value substrate. Set overwrites the
// whole value; there is no delta or multi-key atomicity.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
