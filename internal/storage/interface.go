package storage

import "errors"

var (
	// ErrNotFound is returned by Get when no value is stored under the key.
	ErrNotFound = errors.New("key not found")
	// ErrNotLoaded is returned when a provider is used before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
)

// Provider is a string key/value store. Values are opaque text documents
// (JSON in practice); the provider never interprets them.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Documents
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error

	// Utils
	GetConfigPath() string
}
