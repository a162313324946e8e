package application

import (
	"fmt"
	"log/slog"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/naming"
)

const maxExamples = 3

// NamingService validates the filenames of a project against the
// convention catalog.
type NamingService struct {
	env          Env
	scanner      domain.ProjectScanner
	configLoader domain.ConfigLoader
	git          domain.GitInfo
}

func NewNamingService(
	env Env,
	scanner domain.ProjectScanner,
	configLoader domain.ConfigLoader,
	git domain.GitInfo,
) *NamingService {
	return &NamingService{
		env:          env.withDefaults(),
		scanner:      scanner,
		configLoader: configLoader,
		git:          git,
	}
}

// Check scans projectPath, or only the file at only when it is set, and
// reports every filename that breaks its category's convention.
func (s *NamingService) Check(projectPath, only string) (*domain.NamingReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	catalog := naming.DefaultCatalog(cfg.AllowFiles...)

	scan, err := s.scanner.Scan(projectPath, scanOptions(cfg, only))
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.NamingReport{
		RunID:       s.env.NewID(),
		Timestamp:   s.env.Now(),
		ProjectRoot: scan.RootPath,
		CommitHash:  commitHash(s.git, scan.RootPath, s.env.Logger),
		Violations:  []domain.Violation{},
		Patterns:    catalog.Patterns(),
		Warnings:    append([]domain.Warning{}, scan.Warnings...),
	}
	report.Categories = map[domain.Category]domain.CategoryStats{}
	logWarnings(s.env.Logger, scan.Warnings)

	for _, f := range scan.Files {
		v := catalog.Check(f)
		report.Record(v.Category, v.Compliant)
		if v.Compliant {
			continue
		}
		report.Violations = append(report.Violations, domain.Violation{
			File:            f,
			Category:        v.Category,
			Message:         v.Message,
			ExpectedPattern: v.Rule.Description,
			Examples:        firstN(v.Rule.Examples, maxExamples),
		})
	}

	s.env.Logger.Debug("naming check done",
		"files", report.Summary.TotalFilesAnalyzed,
		"violations", report.Summary.ViolationsFound)
	return report, nil
}

// Patterns returns the conventions in effect for projectPath.
func (s *NamingService) Patterns(projectPath string) (map[domain.Category]domain.PatternInfo, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return naming.DefaultCatalog(cfg.AllowFiles...).Patterns(), nil
}

func scanOptions(cfg domain.ProjectConfig, only string) domain.ScanOptions {
	return domain.ScanOptions{
		ExcludeDirs: cfg.EffectiveExcludeDirs(),
		Extensions:  cfg.EffectiveExtensions(),
		Only:        only,
	}
}

// commitHash is best effort: a project outside git simply has no hash.
func commitHash(git domain.GitInfo, root string, logger *slog.Logger) string {
	if git == nil {
		return ""
	}
	hash, err := git.CommitHash(root)
	if err != nil {
		logger.Debug("no commit hash", "root", root, "err", err)
		return ""
	}
	return hash
}

func logWarnings(logger *slog.Logger, warnings []domain.Warning) {
	for _, w := range warnings {
		logger.Warn(w.Message, "kind", w.Kind, "file", w.File)
	}
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	return append([]string(nil), s...)
}
