package domain

import "time"

// FixStatus tracks where a fix run ended.
type FixStatus string

const (
	FixPlanned   FixStatus = "planned"
	FixCancelled FixStatus = "cancelled"
	FixApplied   FixStatus = "applied"
)

// RenameChange is one staged rename.
type RenameChange struct {
	File           string   `json:"file"`
	CurrentName    string   `json:"current_name"`
	NewName        string   `json:"new_name"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	Conflict       bool     `json:"conflict"`
	ConflictReason string   `json:"conflict_reason,omitempty"`
}

// Target returns the project-relative path the file would be renamed to.
func (c RenameChange) Target() string {
	dir := parentDir(c.File)
	if dir == "" {
		return c.NewName
	}
	return dir + "/" + c.NewName
}

func parentDir(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return ""
}

// OutcomeStatus is the result of applying a single RenameChange.
type OutcomeStatus string

const (
	OutcomeRenamed  OutcomeStatus = "renamed"
	OutcomeConflict OutcomeStatus = "conflict"
	OutcomeFailed   OutcomeStatus = "failed"
)

// RenameOutcome records what happened to one change during apply.
type RenameOutcome struct {
	File    string        `json:"file"`
	NewFile string        `json:"new_file"`
	Status  OutcomeStatus `json:"status"`
	Error   string        `json:"error,omitempty"`
}

// FixReport is the scan report shape extended with the rename plan.
type FixReport struct {
	RunID       string    `json:"run_id"`
	Timestamp   time.Time `json:"timestamp"`
	ProjectRoot string    `json:"project_root"`
	CommitHash  string    `json:"commit_hash,omitempty"`
	DryRun      bool      `json:"dry_run"`
	Status      FixStatus `json:"status"`
	Tally
	TotalChanges int                      `json:"total_changes"`
	Changes      []RenameChange           `json:"changes"`
	Outcomes     []RenameOutcome          `json:"outcomes,omitempty"`
	BackupDir    string                   `json:"backup_dir"`
	Patterns     map[Category]PatternInfo `json:"patterns"`
	Warnings     []Warning                `json:"warnings"`
}

// Conflicts returns the number of changes flagged as conflicts at plan time.
func (r *FixReport) Conflicts() int {
	n := 0
	for _, c := range r.Changes {
		if c.Conflict {
			n++
		}
	}
	return n
}

// CountOutcomes returns the number of outcomes with the given status.
func (r *FixReport) CountOutcomes(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
