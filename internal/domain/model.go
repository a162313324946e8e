package domain

import (
	"math"
	"time"
)

// Violation describes a file whose name does not follow its category's rule.
type Violation struct {
	File            string   `json:"file"`
	Category        Category `json:"category"`
	Message         string   `json:"message"`
	ExpectedPattern string   `json:"expected_pattern"`
	Examples        []string `json:"examples"`
}

// CategoryStats counts files per category.
type CategoryStats struct {
	Total      int `json:"total"`
	Valid      int `json:"valid"`
	Violations int `json:"violations"`
}

// Summary holds the totals of one naming pass.
type Summary struct {
	TotalFilesAnalyzed int     `json:"total_files_analyzed"`
	ValidFiles         int     `json:"valid_files"`
	ViolationsFound    int     `json:"violations_found"`
	ComplianceRate     float64 `json:"compliance_rate"`
}

// PatternInfo is the traceable view of a naming rule carried in reports.
type PatternInfo struct {
	Pattern     string   `json:"pattern"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Transform   string   `json:"transform"`
}

// Warning is a recovered, non-fatal problem accumulated during a run.
type Warning struct {
	Kind    string `json:"kind"`
	File    string `json:"file,omitempty"`
	Message string `json:"message"`
}

const (
	WarningUnreadable  = "unreadable"
	WarningRuleFailure = "rule_failure"
	WarningBackup      = "backup"
	WarningVCS         = "vcs"
)

// Tally accumulates per-file verdicts into summary and category counters.
// It is embedded by both the scan and the fix reports so they share a shape.
type Tally struct {
	Summary    Summary                    `json:"summary"`
	Categories map[Category]CategoryStats `json:"categories"`
}

// Record counts one file of the given category.
func (t *Tally) Record(cat Category, compliant bool) {
	if t.Categories == nil {
		t.Categories = make(map[Category]CategoryStats)
	}
	stats := t.Categories[cat]
	stats.Total++
	t.Summary.TotalFilesAnalyzed++
	if compliant {
		stats.Valid++
		t.Summary.ValidFiles++
	} else {
		stats.Violations++
		t.Summary.ViolationsFound++
	}
	t.Categories[cat] = stats
	t.Summary.ComplianceRate = ComplianceRate(t.Summary.ValidFiles, t.Summary.TotalFilesAnalyzed)
}

// ComplianceRate returns valid/total as a percentage rounded to two decimals.
func ComplianceRate(valid, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(valid)/float64(total)*100*100) / 100
}

// NamingReport is the result of validating a tree against the catalog.
type NamingReport struct {
	RunID       string    `json:"run_id"`
	Timestamp   time.Time `json:"timestamp"`
	ProjectRoot string    `json:"project_root"`
	CommitHash  string    `json:"commit_hash,omitempty"`
	Tally
	Violations []Violation              `json:"violations"`
	Patterns   map[Category]PatternInfo `json:"patterns"`
	Warnings   []Warning                `json:"warnings"`
}

// Passed reports whether the scan found no violations.
func (r *NamingReport) Passed() bool { return r.Summary.ViolationsFound == 0 }

// HistoryEntry is one naming check recorded for trend tracking.
type HistoryEntry struct {
	Timestamp      string  `json:"timestamp"`
	CommitHash     string  `json:"commit_hash,omitempty"`
	TotalFiles     int     `json:"total_files"`
	Violations     int     `json:"violations"`
	ComplianceRate float64 `json:"compliance_rate"`
}

// Entry summarises the report for the run history.
func (r *NamingReport) Entry() HistoryEntry {
	return HistoryEntry{
		Timestamp:      r.Timestamp.UTC().Format(time.RFC3339),
		CommitHash:     r.CommitHash,
		TotalFiles:     r.Summary.TotalFilesAnalyzed,
		Violations:     r.Summary.ViolationsFound,
		ComplianceRate: r.Summary.ComplianceRate,
	}
}
