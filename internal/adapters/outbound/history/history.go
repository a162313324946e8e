// Package history keeps a per-project log of naming check results.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/docguard/internal/adapters/outbound/atomicfile"
	"github.com/openkraft/docguard/internal/domain"
)

// File is the history location relative to the project root.
const File = ".docguard/history/naming.json"

// MaxEntries bounds the history; the oldest entries are dropped first.
const MaxEntries = 100

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(projectPath string, entry domain.HistoryEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	fp := filepath.Join(projectPath, filepath.FromSlash(File))
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return atomicfile.Write(fp, data, 0644)
}

func (h *FileHistory) Load(projectPath string) ([]domain.HistoryEntry, error) {
	fp := filepath.Join(projectPath, filepath.FromSlash(File))

	data, err := os.ReadFile(fp)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", File, err)
	}

	return entries, nil
}

// Last returns the most recent entry, if any.
func Last(entries []domain.HistoryEntry) (domain.HistoryEntry, bool) {
	if len(entries) == 0 {
		return domain.HistoryEntry{}, false
	}
	return entries[len(entries)-1], true
}
