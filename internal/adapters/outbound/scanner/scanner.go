package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
)

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks projectPath and returns the tracked files in walk order.
// Entries that cannot be read become warnings and the walk carries on.
func (s *FileScanner) Scan(projectPath string, opts domain.ScanOptions) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, projectPath)
	}

	result := &domain.ScanResult{RootPath: absPath}

	skip := make(map[string]bool, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		skip[strings.TrimSuffix(d, "/")] = true
	}

	if opts.Only != "" {
		return s.scanOne(absPath, opts, skip, result)
	}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			rel := relSlash(absPath, path)
			result.Warnings = append(result.Warnings, domain.Warning{
				Kind:    domain.WarningUnreadable,
				File:    rel,
				Message: err.Error(),
			})
			if path == absPath {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != absPath && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !tracked(d.Name(), opts.Extensions) {
			return nil
		}
		result.Files = append(result.Files, relSlash(absPath, path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", absPath, err)
	}
	return result, nil
}

// scanOne resolves a single file. A file under an excluded directory is
// never tracked, exactly as in a full walk.
func (s *FileScanner) scanOne(absPath string, opts domain.ScanOptions, skip map[string]bool, result *domain.ScanResult) (*domain.ScanResult, error) {
	target := opts.Only
	if !filepath.IsAbs(target) {
		target = filepath.Join(absPath, target)
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", opts.Only, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("file %s is a directory", opts.Only)
	}
	rel := relSlash(absPath, target)
	if strings.HasPrefix(rel, "../") {
		return nil, fmt.Errorf("file %s is outside %s", opts.Only, absPath)
	}
	dirs := strings.Split(rel, "/")
	for _, seg := range dirs[:len(dirs)-1] {
		if skip[seg] {
			return result, nil
		}
	}
	if tracked(info.Name(), opts.Extensions) {
		result.Files = append(result.Files, rel)
	}
	return result, nil
}

func tracked(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
