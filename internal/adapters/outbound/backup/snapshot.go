// Package backup copies critical project files aside before a mutating run.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Dir is the project-relative directory that holds every snapshot.
const Dir = "backups"

// Snapshotter implements domain.Snapshotter with plain file copies.
type Snapshotter struct{}

func New() *Snapshotter { return &Snapshotter{} }

// Snapshot copies each existing file into
// <root>/backups/naming_fix_<YYYYMMDD_HHMMSS>/, keeping relative paths,
// permissions and modification times. Missing files are skipped. The
// directory is returned relative to projectPath, with the files copied.
func (s *Snapshotter) Snapshot(projectPath string, files []string, at time.Time) (string, []string, error) {
	rel := filepath.ToSlash(filepath.Join(Dir, "naming_fix_"+at.Format("20060102_150405")))
	dest := filepath.Join(projectPath, filepath.FromSlash(rel))
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", nil, fmt.Errorf("creating backup dir: %w", err)
	}

	var copied []string
	var errs []error
	for _, f := range files {
		src := filepath.Join(projectPath, filepath.FromSlash(f))
		ok, err := copyFile(src, filepath.Join(dest, filepath.FromSlash(f)))
		if err != nil {
			errs = append(errs, fmt.Errorf("backing up %s: %w", f, err))
			continue
		}
		if ok {
			copied = append(copied, f)
		}
	}
	return rel, copied, errors.Join(errs...)
}

func copyFile(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, err
	}
	if err := out.Close(); err != nil {
		return false, err
	}
	return true, os.Chtimes(dst, info.ModTime(), info.ModTime())
}
