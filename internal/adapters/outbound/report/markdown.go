package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openkraft/docguard/internal/domain"
)

// NamingMarkdown renders a scan report as a markdown document.
func NamingMarkdown(r *domain.NamingReport) string {
	var b strings.Builder
	b.WriteString("# Naming Convention Report\n\n")
	writeHeader(&b, r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"), r.ProjectRoot, r.CommitHash)
	writeTally(&b, r.Tally)

	if len(r.Violations) > 0 {
		b.WriteString("## Violations\n\n")
		t := table.NewWriter()
		t.AppendHeader(table.Row{"File", "Category", "Expected"})
		for _, v := range r.Violations {
			t.AppendRow(table.Row{v.File, v.Category, v.ExpectedPattern})
		}
		b.WriteString(t.RenderMarkdown())
		b.WriteString("\n\n")
	}
	writeWarnings(&b, r.Warnings)
	writePatterns(&b, r.Patterns)
	return b.String()
}

// FixMarkdown renders a fix report as a markdown document.
func FixMarkdown(r *domain.FixReport) string {
	var b strings.Builder
	title := "Naming Fix Report (dry run)"
	if !r.DryRun {
		title = "Naming Fix Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	writeHeader(&b, r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"), r.ProjectRoot, r.CommitHash)
	fmt.Fprintf(&b, "- Status: %s\n", r.Status)
	if r.BackupDir != "" {
		fmt.Fprintf(&b, "- Backup: `%s`\n", r.BackupDir)
	}
	b.WriteString("\n")
	writeTally(&b, r.Tally)

	if len(r.Changes) > 0 {
		b.WriteString("## Changes\n\n")
		t := table.NewWriter()
		t.AppendHeader(table.Row{"File", "New name", "Category", "Conflict"})
		for _, c := range r.Changes {
			t.AppendRow(table.Row{c.File, c.NewName, c.Category, c.ConflictReason})
		}
		b.WriteString(t.RenderMarkdown())
		b.WriteString("\n\n")
	}
	if len(r.Outcomes) > 0 {
		b.WriteString("## Outcomes\n\n")
		t := table.NewWriter()
		t.AppendHeader(table.Row{"File", "New file", "Status", "Error"})
		for _, o := range r.Outcomes {
			t.AppendRow(table.Row{o.File, o.NewFile, o.Status, o.Error})
		}
		b.WriteString(t.RenderMarkdown())
		b.WriteString("\n\n")
	}
	writeWarnings(&b, r.Warnings)
	return b.String()
}

func writeHeader(b *strings.Builder, runID, at, root, commit string) {
	fmt.Fprintf(b, "- Run: `%s`\n", runID)
	fmt.Fprintf(b, "- Date: %s\n", at)
	fmt.Fprintf(b, "- Project: `%s`\n", root)
	if commit != "" {
		fmt.Fprintf(b, "- Commit: `%s`\n", commit)
	}
	b.WriteString("\n")
}

func writeTally(b *strings.Builder, tally domain.Tally) {
	s := tally.Summary
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(b, "%d files analyzed, %d valid, %d violations, %.2f%% compliant.\n\n",
		s.TotalFilesAnalyzed, s.ValidFiles, s.ViolationsFound, s.ComplianceRate)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Category", "Total", "Valid", "Violations"})
	for _, cat := range domain.AllCategories {
		stats, ok := tally.Categories[cat]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{cat, stats.Total, stats.Valid, stats.Violations})
	}
	b.WriteString(t.RenderMarkdown())
	b.WriteString("\n\n")
}

func writeWarnings(b *strings.Builder, warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("## Warnings\n\n")
	for _, w := range warnings {
		if w.File != "" {
			fmt.Fprintf(b, "- **%s** `%s`: %s\n", w.Kind, w.File, w.Message)
		} else {
			fmt.Fprintf(b, "- **%s**: %s\n", w.Kind, w.Message)
		}
	}
	b.WriteString("\n")
}

func writePatterns(b *strings.Builder, patterns map[domain.Category]domain.PatternInfo) {
	if len(patterns) == 0 {
		return
	}
	b.WriteString("## Conventions\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Category", "Convention", "Examples"})
	for _, cat := range domain.AllCategories {
		p, ok := patterns[cat]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{cat, p.Description, strings.Join(p.Examples, ", ")})
	}
	b.WriteString(t.RenderMarkdown())
	b.WriteString("\n")
}
