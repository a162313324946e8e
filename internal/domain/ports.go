package domain

import "time"

// ProjectScanner enumerates the files of a project directory.
type ProjectScanner interface {
	Scan(projectPath string, opts ScanOptions) (*ScanResult, error)
}

// ScanOptions narrows what a scan returns.
type ScanOptions struct {
	// ExcludeDirs are directory names skipped wherever they appear.
	ExcludeDirs []string
	// Extensions, when non-empty, keeps only files with one of these
	// lower-case extensions (leading dot included).
	Extensions []string
	// Only restricts the scan to a single project-relative file.
	Only string
}

// ScanResult holds project-relative, slash-separated file paths.
type ScanResult struct {
	RootPath string    `json:"root_path"`
	Files    []string  `json:"files"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo provides version control context for reports.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
	IsDirty(projectPath string) (bool, error)
}

// Snapshotter copies critical files aside before a mutating run.
// It returns the backup directory and the files actually copied.
type Snapshotter interface {
	Snapshot(projectPath string, files []string, at time.Time) (string, []string, error)
}

// DocumentParser turns markdown source into a section model.
type DocumentParser interface {
	Parse(source []byte) *Document
}

// TextStore reads and writes text files, normalising encodings to UTF-8.
type TextStore interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// RunHistory persists naming check results across runs.
type RunHistory interface {
	Save(projectPath string, entry HistoryEntry) error
	Load(projectPath string) ([]HistoryEntry, error)
}
