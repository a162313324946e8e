package application

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/versioning"
)

// BumpOptions selects what a version bump touches.
type BumpOptions struct {
	Change      string
	Description string
	// Match keeps only documents whose file name contains it, ignoring case.
	Match  string
	DryRun bool
}

// VersionService bumps the version stamps of the project's markdown
// documents and records each release in the changelog.
type VersionService struct {
	env          Env
	scanner      domain.ProjectScanner
	configLoader domain.ConfigLoader
	store        domain.TextStore
}

func NewVersionService(
	env Env,
	scanner domain.ProjectScanner,
	configLoader domain.ConfigLoader,
	store domain.TextStore,
) *VersionService {
	return &VersionService{
		env:          env.withDefaults(),
		scanner:      scanner,
		configLoader: configLoader,
		store:        store,
	}
}

// Bump rewrites every versioned document under the docs directory.
// A document that fails is reported and the batch moves on.
func (s *VersionService) Bump(projectPath string, opts BumpOptions) (*domain.VersionReport, error) {
	change, err := versioning.ParseChange(opts.Change)
	if err != nil {
		return nil, err
	}
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	docsDir := filepath.Join(projectPath, filepath.FromSlash(cfg.DocsDir))
	scan, err := s.scanner.Scan(docsDir, domain.ScanOptions{
		ExcludeDirs: cfg.EffectiveExcludeDirs(),
		Extensions:  []string{".md"},
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cfg.DocsDir, err)
	}

	now := s.env.Now()
	report := &domain.VersionReport{
		RunID:       s.env.NewID(),
		Timestamp:   now,
		ProjectRoot: projectPath,
		Change:      string(change),
		DryRun:      opts.DryRun,
		Documents:   []domain.DocumentBump{},
		Errors:      []string{},
	}
	for _, w := range scan.Warnings {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", path.Join(cfg.DocsDir, w.File), w.Message))
	}

	date := now.Format(cfg.DateLayout)
	var entries []versioning.Entry
	for _, f := range scan.Files {
		rel := path.Join(filepath.ToSlash(cfg.DocsDir), f)
		if opts.Match != "" && !strings.Contains(strings.ToLower(path.Base(f)), strings.ToLower(opts.Match)) {
			continue
		}
		abs := filepath.Join(docsDir, filepath.FromSlash(f))
		content, err := s.store.Read(abs)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", rel, err))
			continue
		}
		stamp, ok := versioning.FindStamp(content)
		if !ok {
			continue
		}
		current, err := versioning.ParseVersion(stamp.Version)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", rel, err))
			continue
		}

		next := current.Next(change).String()
		desc := firstNonEmpty(opts.Description, stamp.Description, change.DefaultDescription())
		updated, _ := versioning.RewriteStamps(content, next, desc)
		updated, _ = versioning.RewriteDates(updated, date)

		if !opts.DryRun {
			if err := s.store.Write(abs, updated); err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", rel, err))
				continue
			}
		}
		s.env.Logger.Debug("document bumped", "file", rel, "from", stamp.Version, "to", next)
		report.Documents = append(report.Documents, domain.DocumentBump{
			File: rel, From: stamp.Version, To: next, Description: desc,
		})
		entries = append(entries, versioning.Entry{
			Version: next, Change: change, Description: desc,
			File: rel, Author: cfg.Author, At: now,
		})
	}

	if len(report.Documents) == 0 && len(report.Errors) == 0 {
		if opts.Match != "" {
			return nil, fmt.Errorf("%w matching %q in %s", domain.ErrNoDocuments, opts.Match, cfg.DocsDir)
		}
		return nil, fmt.Errorf("%w in %s", domain.ErrNoDocuments, cfg.DocsDir)
	}

	if len(entries) > 0 && !opts.DryRun {
		if err := s.updateChangelog(projectPath, cfg.ChangelogFile, entries); err != nil {
			report.Errors = append(report.Errors, err.Error())
		} else {
			report.ChangelogFile = cfg.ChangelogFile
		}
	}
	return report, nil
}

func (s *VersionService) updateChangelog(projectPath, file string, entries []versioning.Entry) error {
	abs := filepath.Join(projectPath, filepath.FromSlash(file))
	content, err := s.store.Read(abs)
	if errors.Is(err, os.ErrNotExist) {
		s.env.Logger.Info("creating changelog", "file", file)
		content = versioning.DefaultChangelog
	} else if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := s.store.Write(abs, versioning.InsertEntries(content, entries)); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

// NextVersion returns the version that follows version for a change kind.
func NextVersion(version, change string) (string, error) {
	return versioning.Bump(version, change)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
