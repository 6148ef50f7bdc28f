package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dori/crabd/internal/model"
)

// JSONStore keeps the project as an indented JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the document path.
func (s *JSONStore) Path() string { return s.path }

// Exists reports whether the document file exists.
func (s *JSONStore) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", s.path, err)
	}
	return true, nil
}

// Load reads the document. It returns ErrNotInitialized when the file does
// not exist and wraps ErrCorrupt when it does not decode or validate.
func (s *JSONStore) Load(ctx context.Context) (*model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	p, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return p, nil
}

// Save writes the document to a temporary file beside the target and
// renames it into place, so readers see either the old or the new document.
func (s *JSONStore) Save(ctx context.Context, p *model.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf("%s.tmp-%s", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op.
func (s *JSONStore) Close() error { return nil }
