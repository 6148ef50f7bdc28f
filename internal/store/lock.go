package store

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFile is created next to the document while a command runs.
const LockFile = ".crabd.lock"

// Lock holds exclusive access to a project for one command.
type Lock struct {
	file *flock.Flock
}

// AcquireLock takes the project lock in root without waiting. It returns
// ErrLocked when another process holds it.
func AcquireLock(root string) (*Lock, error) {
	f := flock.New(filepath.Join(root, LockFile))
	locked, err := f.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return &Lock{file: f}, nil
}

// Path is the lock file path.
func (l *Lock) Path() string {
	return l.file.Path()
}

// Release unlocks; it is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Unlock()
}
