package domain

import "time"

// DocumentBump records one document's version stamp change.
type DocumentBump struct {
	File        string `json:"file"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

// VersionReport is the result of a batch version bump.
type VersionReport struct {
	RunID         string         `json:"run_id"`
	Timestamp     time.Time      `json:"timestamp"`
	ProjectRoot   string         `json:"project_root"`
	Change        string         `json:"change"`
	DryRun        bool           `json:"dry_run"`
	Documents     []DocumentBump `json:"documents"`
	ChangelogFile string         `json:"changelog_file,omitempty"`
	Errors        []string       `json:"errors"`
}

// SignatureStats counts the work done by a signature update.
type SignatureStats struct {
	FilesProcessed   int `json:"files_processed"`
	FilesUpdated     int `json:"files_updated"`
	ReplacementsMade int `json:"replacements_made"`
}

// SignatureFile lists the placeholders found in one file.
type SignatureFile struct {
	File         string         `json:"file"`
	Placeholders map[string]int `json:"placeholders"`
}

// SignatureReport is the result of replacing signature placeholders.
type SignatureReport struct {
	RunID       string          `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	ProjectRoot string          `json:"project_root"`
	DryRun      bool            `json:"dry_run"`
	Profiles    []string        `json:"profiles"`
	Stats       SignatureStats  `json:"stats"`
	Files       []SignatureFile `json:"files"`
	Errors      []string        `json:"errors"`
}
