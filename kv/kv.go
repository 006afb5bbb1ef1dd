// Package kv provides key-value backends for the dashboard store.
package kv

import (
	"errors"
	"fmt"
	"regexp"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

// Backend is the common interface of the backends of this package.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// ErrInvalidKey is returned for keys that are not safe to use as a file name.
var ErrInvalidKey = errors.New("invalid key")

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func checkKey(key string) error {
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Open opens the backend by name. path is a directory for "dir", a database
// file for "sqlite", and is ignored for "memory".
func Open(backend, path string) (Backend, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendDir:
		return NewDir(path)
	case BackendSQLite:
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown storage backend %q", backend)
}
