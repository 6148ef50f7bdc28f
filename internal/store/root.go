package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the document name at the project root.
const DefaultFile = ".crabd"

// FindRoot walks up from start to the nearest directory containing a .git
// entry. Worktrees and submodules use a .git file, which counts too.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat %s: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRepository
		}
		dir = parent
	}
}

// ResolveRoot returns the repository root above start, or start itself when
// there is none and a repository is not required. The boolean reports
// whether a repository was found.
func ResolveRoot(start string, requireRepository bool) (string, bool, error) {
	root, err := FindRoot(start)
	if err == nil {
		return root, true, nil
	}
	if err != ErrNoRepository || requireRepository {
		return "", false, err
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", start, err)
	}
	return abs, false, nil
}
