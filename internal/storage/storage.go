// Package storage provides the persistent key-value backends that hold
// folio's preferences between runs.
package storage

import (
	"fmt"
	"strings"
)

// Backend is a string-keyed store. Get reports ok=false for missing keys.
type Backend interface {
	Name() string
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Kinds returns the supported backend names.
func Kinds() []string {
	return []string{KindFile, KindSQLite, KindMemory}
}

// Open opens the backend named kind at path. Path is ignored for memory.
func Open(kind string, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindFile, "":
		if path == "" {
			return nil, fmt.Errorf("file storage needs a path")
		}
		return OpenFile(path)
	case KindSQLite:
		if path == "" {
			return nil, fmt.Errorf("sqlite storage needs a path")
		}
		return OpenSQLite(path)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected one of %s)", kind, strings.Join(Kinds(), ", "))
	}
}
