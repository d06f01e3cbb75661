// Package store provides a uniform key-value persistence contract
// over interchangeable storage engines. The shipped backends are
// bbolt, SQLite, a file-per-key directory store, and (on js/wasm
// builds) browser localStorage; the interface allows swapping to
// Badger, Pebble, etc. without touching the rest of the codebase.
package store

import "errors"

// Store is the capability contract every backend satisfies. Callers
// hold exactly one Store per application, constructed once at startup
// via Open. Mutating operations require exclusive access to the
// Store; read concurrency is whatever the underlying engine allows.
type Store interface {
	// Set serializes value and writes it under key, replacing any
	// prior value.
	Set(key string, value any) error

	// SetString is Set specialized for plain strings. The value still
	// goes through the backend's serialization pipeline rather than
	// being written as raw bytes.
	SetString(key, value string) error

	// Get deserializes the value stored under key into dest, which
	// must be a non-nil pointer. Returns ErrNotFound if the key is
	// absent and ErrDecode if the stored bytes cannot be decoded.
	Get(key string, dest any) error

	// GetWith hands the stored encoded bytes for key to a
	// caller-supplied decoder, for when the target shape is only
	// known at the call site. Backends that cannot provide it return
	// ErrUnsupported.
	GetWith(key string, decode DecodeFunc) (any, error)

	// Remove deletes the entry for key. Removing a key that does not
	// exist returns ErrNotFound on every backend.
	Remove(key string) error

	// Clear removes every entry in the store.
	Clear() error

	// Keys returns all stored keys, in no particular order.
	Keys() ([]string, error)

	// Close releases the underlying storage handle. Long-lived stores
	// may simply leave this to process exit.
	Close() error
}

// DecodeFunc decodes a value from its stored encoding. The byte slice
// is only valid for the duration of the call.
type DecodeFunc func(data []byte) (any, error)

// Error categories. Backends wrap engine-level detail onto these with
// %w so errors.Is classifies every failure; nothing is retried or
// logged internally.
var (
	// ErrNotFound reports that no value exists for the given key.
	ErrNotFound = errors.New("no value found for the given key")

	// ErrDecode reports that a stored value could not be deserialized
	// into the requested shape.
	ErrDecode = errors.New("decoding stored value")

	// ErrEncode reports that a value could not be serialized for
	// storage.
	ErrEncode = errors.New("encoding value")

	// ErrUnsupported reports that the selected backend does not
	// implement the requested operation.
	ErrUnsupported = errors.New("operation not supported by this backend")
)
