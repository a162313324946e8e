// Package runlock keeps two mutating docguard runs from working on the same
// project at once.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/openkraft/docguard/internal/domain"
)

// Path is the lock file location relative to the project root.
const Path = ".docguard/run.lock"

// Lock is a held advisory lock on a project.
type Lock struct {
	flock *flock.Flock
	path  string
}

// Acquire takes the project lock without blocking. It fails with
// domain.ErrLocked when another process holds it.
func Acquire(projectPath string) (*Lock, error) {
	path := filepath.Join(projectPath, filepath.FromSlash(Path))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating lock dir: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to try lock on %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", domain.ErrLocked, path)
	}
	return &Lock{flock: fl, path: path}, nil
}

// Release drops the lock. The lock file itself stays in place.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
