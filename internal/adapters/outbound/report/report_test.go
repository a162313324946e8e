package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openkraft/docguard/internal/adapters/outbound/report"
	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNaming() *domain.NamingReport {
	r := &domain.NamingReport{
		RunID:       "run-1",
		Timestamp:   time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC),
		ProjectRoot: "/tmp/project",
		Violations: []domain.Violation{{
			File: "readme.md", Category: domain.CategoryDocumentation,
			Message: "does not follow", ExpectedPattern: "Documentation: UPPER_SNAKE_CASE.md",
		}},
		Patterns: map[domain.Category]domain.PatternInfo{
			domain.CategoryDocumentation: {Description: "Documentation: UPPER_SNAKE_CASE.md", Examples: []string{"README.md"}},
		},
		Warnings: []domain.Warning{{Kind: domain.WarningUnreadable, File: "locked", Message: "permission denied"}},
	}
	r.Record(domain.CategoryDocumentation, false)
	r.Record(domain.CategoryDocumentation, true)
	return r
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "naming_convention_report.json"), report.NamingPath("root"))
	assert.Equal(t, filepath.Join("root", "naming_fix_report_dry_run.json"), report.FixPath("root", true))
	assert.Equal(t, filepath.Join("root", "naming_fix_report_executed.json"), report.FixPath("root", false))
	assert.Equal(t, "a/b.md", report.MarkdownPath("a/b.json"))
}

func TestWriter_SaveNaming(t *testing.T) {
	dir := t.TempDir()
	paths, err := report.Writer{Markdown: true}.SaveNaming(dir, sampleNaming())
	require.NoError(t, err)
	require.Len(t, paths, 2)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	summary := decoded["summary"].(map[string]any)
	assert.InDelta(t, 50, summary["compliance_rate"], 0.001)
	assert.Contains(t, decoded, "categories")

	md, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Naming Convention Report")
	assert.Contains(t, string(md), "| readme.md | documentation |")
	assert.Contains(t, string(md), "permission denied")
}

func TestWriter_SaveFixWithoutMarkdown(t *testing.T) {
	dir := t.TempDir()
	r := &domain.FixReport{RunID: "run-2", DryRun: true, Status: domain.FixPlanned}
	paths, err := report.Writer{}.SaveFix(dir, r)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "naming_fix_report_dry_run.json")}, paths)
	_, err = os.Stat(report.MarkdownPath(paths[0]))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFixMarkdown(t *testing.T) {
	r := &domain.FixReport{
		RunID: "run-3", Status: domain.FixApplied, BackupDir: "backups/naming_fix_20261014_080000",
		Changes:  []domain.RenameChange{{File: "a.ts", NewName: "B.ts", Conflict: true, ConflictReason: "B.ts already exists"}},
		Outcomes: []domain.RenameOutcome{{File: "a.ts", NewFile: "B.ts", Status: domain.OutcomeConflict}},
	}
	md := report.FixMarkdown(r)
	assert.Contains(t, md, "# Naming Fix Report\n")
	assert.Contains(t, md, "backups/naming_fix_20261014_080000")
	assert.Contains(t, md, "B.ts already exists")
	assert.Contains(t, md, "| a.ts | B.ts | conflict |")
}

func TestReportPaths_NeverViolateConventions(t *testing.T) {
	cat := naming.DefaultCatalog()
	paths := []string{report.NamingPath("/p"), report.FixPath("/p", true), report.FixPath("/p", false)}
	for _, p := range paths {
		for _, f := range []string{p, report.MarkdownPath(p)} {
			assert.True(t, cat.Allowed(filepath.Base(f)), f)
		}
	}
}
