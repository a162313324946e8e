package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openkraft/docguard/internal/domain"
)

// RenderVersionReport lists every document bump as old → new.
func RenderVersionReport(r *domain.VersionReport) string {
	var b strings.Builder
	mode := ""
	if r.DryRun {
		mode = "  " + dimStyle.Render("(dry run)")
	}
	fmt.Fprintf(&b, "\n  %s %s%s\n\n", sectionHeaderStyle.Render("Version bump"), titleStyle.Render(r.Change), mode)

	if len(r.Documents) == 0 {
		b.WriteString("  " + dimStyle.Render("No documents updated.") + "\n")
	} else {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Document", "From", "To", "Description"})
		for _, d := range r.Documents {
			t.AppendRow(table.Row{d.File, d.From, d.To, d.Description})
		}
		b.WriteString(indent(t.Render()))
		b.WriteString("\n")
	}
	if r.ChangelogFile != "" {
		fmt.Fprintf(&b, "\n  %s %s\n", dimStyle.Render("changelog:"), r.ChangelogFile)
	}
	renderErrors(&b, r.Errors)
	return b.String()
}

// RenderSignatureReport summarises a placeholder replacement run.
func RenderSignatureReport(r *domain.SignatureReport) string {
	var b strings.Builder
	mode := ""
	if r.DryRun {
		mode = "  " + dimStyle.Render("(dry run)")
	}
	fmt.Fprintf(&b, "\n  %s %s%s\n\n", sectionHeaderStyle.Render("Signatures"),
		dimStyle.Render(fmt.Sprintf("%d profiles", len(r.Profiles))), mode)

	for _, f := range r.Files {
		names := make([]string, 0, len(f.Placeholders))
		for ph, n := range f.Placeholders {
			names = append(names, fmt.Sprintf("%s×%d", ph, n))
		}
		slices.Sort(names)
		fmt.Fprintf(&b, "    %s %s  %s\n", passStyle.Render("●"), fileStyle.Render(f.File), faintStyle.Render(strings.Join(names, " ")))
	}

	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %-24s %d\n", "files processed", r.Stats.FilesProcessed)
	fmt.Fprintf(&b, "  %-24s %d\n", "files updated", r.Stats.FilesUpdated)
	fmt.Fprintf(&b, "  %-24s %d\n", "replacements made", r.Stats.ReplacementsMade)
	fmt.Fprintf(&b, "  %-24s %d\n", "errors", len(r.Errors))
	renderErrors(&b, r.Errors)
	if r.DryRun {
		b.WriteString("\n  " + hintStyle.Render("Run again without --dry-run to write the signatures.") + "\n")
	}
	return b.String()
}

// RenderChecklistResult shows which sections and keywords were found.
func RenderChecklistResult(r *domain.ChecklistResult) string {
	var b strings.Builder

	verdict := passStyle.Bold(true).Render("PASSED")
	if !r.Passed {
		verdict = failStyle.Bold(true).Render("FAILED")
	}
	score := fmt.Sprintf("%.2f / 100  (min %d)", r.Score, r.MinScore)
	b.WriteString(boxStyle.Render(titleStyle.Render(r.File) + "\n" +
		dimStyle.Render("checklist: "+r.Checklist) + "\n\n" +
		verdict + "  " + dimStyle.Render(score)))
	b.WriteString("\n")

	renderItems(&b, "Sections", r.FoundSections, r.MissingSections)
	renderItems(&b, "Keywords", r.FoundKeywords, r.MissingKeywords)
	return b.String()
}

func renderItems(b *strings.Builder, title string, found, missing []string) {
	if len(found)+len(missing) == 0 {
		return
	}
	fmt.Fprintf(b, "\n  %s %s\n", sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d/%d)", len(found), len(found)+len(missing))))
	for _, f := range found {
		fmt.Fprintf(b, "    %s %s\n", passStyle.Render("✓"), f)
	}
	for _, m := range missing {
		fmt.Fprintf(b, "    %s %s\n", failStyle.Render("✗"), m)
	}
}

func renderErrors(b *strings.Builder, errs []string) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n  %s %s\n", failStyle.Bold(true).Render("Errors"), dimStyle.Render(fmt.Sprintf("(%d)", len(errs))))
	const limit = 10
	for i, e := range errs {
		if i == limit {
			fmt.Fprintf(b, "    %s\n", dimStyle.Render(fmt.Sprintf("... and %d more", len(errs)-limit)))
			break
		}
		fmt.Fprintf(b, "    %s %s\n", failStyle.Render("●"), e)
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
