package tui

import (
	"fmt"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
)

// RenderFixReport formats a rename plan, or its applied outcomes, for the
// terminal.
func RenderFixReport(r *domain.FixReport) string {
	var b strings.Builder

	mode := "dry run"
	if !r.DryRun {
		mode = string(r.Status)
	}
	b.WriteString(boxStyle.Render(headerStyle.Render("docguard") + "\n" +
		dimStyle.Render("Naming Fix  "+mode) + "\n\n" +
		titleStyle.Render(fmt.Sprintf("%d changes", r.TotalChanges)) + "  " +
		dimStyle.Render(fmt.Sprintf("%d conflicts", r.Conflicts()))))
	b.WriteString("\n")

	if len(r.Changes) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n", sectionHeaderStyle.Render("Planned Renames"), dimStyle.Render(fmt.Sprintf("(%d)", len(r.Changes))))
		for _, c := range r.Changes {
			icon := passStyle.Render("→")
			if c.Conflict {
				icon = failStyle.Render("✗")
			}
			fmt.Fprintf(&b, "    %s %s %s %s\n", icon, fileStyle.Render(c.File), dimStyle.Render("→"), c.NewName)
			if c.Conflict {
				fmt.Fprintf(&b, "         %s\n", failStyle.Render(c.ConflictReason))
			}
		}
	} else {
		b.WriteString("\n  " + passStyle.Render("Nothing to rename.") + "\n")
	}

	if len(r.Outcomes) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			sectionHeaderStyle.Render("Outcomes"),
			passStyle.Render(fmt.Sprintf("%d renamed", r.CountOutcomes(domain.OutcomeRenamed))),
			warnStyle.Render(fmt.Sprintf("%d conflicts", r.CountOutcomes(domain.OutcomeConflict))),
			failStyle.Render(fmt.Sprintf("%d failed", r.CountOutcomes(domain.OutcomeFailed))),
		)
		for _, o := range r.Outcomes {
			if o.Status == domain.OutcomeRenamed {
				continue
			}
			fmt.Fprintf(&b, "    %s %s  %s\n", failStyle.Render("●"), fileStyle.Render(o.File), dimStyle.Render(o.Error))
		}
	}

	if r.BackupDir != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", dimStyle.Render("backup:"), r.BackupDir)
	}

	renderWarnings(&b, r.Warnings)

	switch {
	case r.Status == domain.FixCancelled:
		b.WriteString("\n  " + warnStyle.Render("Cancelled. No files were renamed.") + "\n")
	case r.DryRun && r.TotalChanges > 0:
		b.WriteString("\n  " + hintStyle.Render("Run again with --execute to apply these renames.") + "\n")
	}
	return b.String()
}
