// Package store loads and saves a project document. A command loads the
// document once, mutates it in memory and saves it once; nothing is
// written partially.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dori/crabd/internal/model"
)

var (
	// ErrNotInitialized is returned by Load when no document exists yet.
	ErrNotInitialized = errors.New("project not initialized, run `crabd init` first")
	// ErrNoRepository is returned by FindRoot when no enclosing repository exists.
	ErrNoRepository = errors.New("not inside a git repository")
	// ErrLocked is returned when another crabd command holds the project lock.
	ErrLocked = errors.New("another crabd command is running on this project")
	// ErrCorrupt wraps documents that cannot be decoded or fail validation.
	ErrCorrupt = errors.New("project document is corrupt")
)

// Store persists a whole project document.
type Store interface {
	// Load reads and validates the document.
	Load(ctx context.Context) (*model.Project, error)
	// Save replaces the document with p.
	Save(ctx context.Context, p *model.Project) error
	// Exists reports whether a document has been saved.
	Exists(ctx context.Context) (bool, error)
	// Path is the file backing the store.
	Path() string
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Backends lists the supported backends.
var Backends = []Backend{BackendJSON, BackendSQLite}

// Open returns the store for backend, backed by path.
func Open(ctx context.Context, backend Backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path), nil
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// decode parses and validates a document in the on-disk layout.
func decode(data []byte) (*model.Project, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return &p, nil
}

// encode renders p with 2-space indentation and a trailing newline.
func encode(p *model.Project) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}
	return append(data, '\n'), nil
}
