// Package sentinel holds infrastructure-level errors that stores and caches
// return, optionally wrapped. Handlers translate them into domain errors.
package sentinel

import "errors"

var (
	// ErrNotFound means the record does not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a record with the same key already exists.
	ErrConflict = errors.New("conflict")
	// ErrCacheMiss means a cache holds nothing for the key.
	ErrCacheMiss = errors.New("cache miss")
	// ErrUnavailable means the backing service cannot be reached.
	ErrUnavailable = errors.New("unavailable")
)
