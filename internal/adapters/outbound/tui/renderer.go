package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/docguard/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnStyle          = lipgloss.NewStyle().Foreground(warning)
	warnTagStyle       = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle       = lipgloss.NewStyle().Foreground(info)
	fileStyle          = lipgloss.NewStyle().Foreground(dim)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle       = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderNamingReport formats a scan report for the terminal.
func RenderNamingReport(r *domain.NamingReport) string {
	var b strings.Builder

	rate := r.Summary.ComplianceRate
	title := headerStyle.Render("docguard")
	subtitle := dimStyle.Render("Naming Conventions")
	rateStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(rateColor(rate)).
		Render(fmt.Sprintf("%.2f%% compliant", rate))
	counts := dimStyle.Render(fmt.Sprintf("%d files  %d valid  %d violations",
		r.Summary.TotalFilesAnalyzed, r.Summary.ValidFiles, r.Summary.ViolationsFound))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + rateStyled + "\n" + counts))
	b.WriteString("\n\n")

	renderCategories(&b, r.Tally)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	if len(r.Violations) > 0 {
		b.WriteString("  " + titleStyle.Render("Violations") + "  ")
		b.WriteString(failStyle.Bold(true).Render(fmt.Sprintf("%d files", len(r.Violations))))
		b.WriteString("\n\n")
		for _, v := range r.Violations {
			fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"), fileStyle.Render(shortenPath(v.File)))
			fmt.Fprintf(&b, "         %s\n", dimStyle.Render(v.ExpectedPattern))
			if len(v.Examples) > 0 {
				fmt.Fprintf(&b, "         %s\n", faintStyle.Render("e.g. "+strings.Join(v.Examples, ", ")))
			}
		}
	} else {
		b.WriteString("  " + passStyle.Render("All files follow the naming conventions.") + "\n")
	}

	renderWarnings(&b, r.Warnings)
	b.WriteString("\n")
	return b.String()
}

func renderCategories(b *strings.Builder, tally domain.Tally) {
	for _, cat := range domain.AllCategories {
		stats, ok := tally.Categories[cat]
		if !ok {
			continue
		}
		rate := domain.ComplianceRate(stats.Valid, stats.Total)
		name := catNameStyle.Render(padRight(cat.String(), 16))
		bar := coloredBar(rate, 20)
		count := dimStyle.Render(fmt.Sprintf("%d/%d", stats.Valid, stats.Total))
		rateText := lipgloss.NewStyle().Bold(true).Foreground(rateColor(rate)).Render(fmt.Sprintf("%3.0f%%", rate))
		fmt.Fprintf(b, "  %s %s  %s %s\n", name, bar, rateText, count)
	}
}

func renderWarnings(b *strings.Builder, warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n\n", titleStyle.Render("Warnings"), dimStyle.Render(fmt.Sprintf("(%d)", len(warnings))))
	for _, w := range warnings {
		tag := warnTagStyle.Render("warn ")
		if w.Kind == domain.WarningVCS {
			tag = infoTagStyle.Render("info ")
		}
		if w.File != "" {
			fmt.Fprintf(b, "    %s %s\n", tag, fileStyle.Render(w.File))
			fmt.Fprintf(b, "         %s\n", dimStyle.Render(w.Message))
		} else {
			fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(w.Message))
		}
	}
}

func coloredBar(rate float64, width int) string {
	filled := max(0, min(int(math.Round(rate*float64(width)/100)), width))
	empty := width - filled

	color := rateColor(rate)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func rateColor(rate float64) lipgloss.Color {
	switch {
	case rate >= 90:
		return success
	case rate >= 70:
		return lipgloss.Color("#A3E635") // lime
	case rate >= 40:
		return warning
	default:
		return danger
	}
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 4 {
		return ".../" + strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderTrend compares the compliance of the current run with the
// previous one recorded in the history.
func RenderTrend(prev, cur domain.HistoryEntry) string {
	delta := cur.ComplianceRate - prev.ComplianceRate
	var change string
	switch {
	case delta > 0:
		change = passStyle.Render(fmt.Sprintf("▲ +%.2f", delta))
	case delta < 0:
		change = failStyle.Render(fmt.Sprintf("▼ %.2f", delta))
	default:
		change = dimStyle.Render("= no change")
	}
	return fmt.Sprintf("  %s %s %s\n", dimStyle.Render("Since last run:"), change,
		dimStyle.Render(fmt.Sprintf("(%.2f%% → %.2f%%)", prev.ComplianceRate, cur.ComplianceRate)))
}
