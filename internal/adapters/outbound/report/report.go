// Package report persists run reports as JSON files with an optional
// markdown rendering next to them.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openkraft/docguard/internal/adapters/outbound/atomicfile"
	"github.com/openkraft/docguard/internal/domain"
)

const (
	NamingReportFile    = "naming_convention_report.json"
	fixReportFilePrefix = "naming_fix_report_"
)

// NamingPath is where the scan report of root is written.
func NamingPath(root string) string {
	return filepath.Join(root, NamingReportFile)
}

// FixPath is where the fix report of root is written for the given mode.
func FixPath(root string, dryRun bool) string {
	mode := "executed"
	if dryRun {
		mode = "dry_run"
	}
	return filepath.Join(root, fixReportFilePrefix+mode+".json")
}

// MarkdownPath swaps the .json extension of a report path for .md.
func MarkdownPath(jsonPath string) string {
	return strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath)) + ".md"
}

// WriteJSON writes v as indented JSON.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if err := atomicfile.Write(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Writer saves reports under the project root.
type Writer struct {
	// Markdown also writes a .md rendering next to each JSON report.
	Markdown bool
}

// SaveNaming writes the scan report and returns the paths written.
func (w Writer) SaveNaming(root string, r *domain.NamingReport) ([]string, error) {
	path := NamingPath(root)
	return w.save(path, r, func() string { return NamingMarkdown(r) })
}

// SaveFix writes the fix report and returns the paths written.
func (w Writer) SaveFix(root string, r *domain.FixReport) ([]string, error) {
	path := FixPath(root, r.DryRun)
	return w.save(path, r, func() string { return FixMarkdown(r) })
}

func (w Writer) save(path string, v any, md func() string) ([]string, error) {
	if err := WriteJSON(path, v); err != nil {
		return nil, err
	}
	written := []string{path}
	if w.Markdown {
		mdPath := MarkdownPath(path)
		if err := atomicfile.Write(mdPath, []byte(md()), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", mdPath, err)
		}
		written = append(written, mdPath)
	}
	return written, nil
}
