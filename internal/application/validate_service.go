package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/checklist"
)

// ChecklistService validates a markdown document against a named checklist.
type ChecklistService struct {
	env          Env
	configLoader domain.ConfigLoader
	parser       domain.DocumentParser
	store        domain.TextStore
}

func NewChecklistService(
	env Env,
	configLoader domain.ConfigLoader,
	parser domain.DocumentParser,
	store domain.TextStore,
) *ChecklistService {
	return &ChecklistService{
		env:          env.withDefaults(),
		configLoader: configLoader,
		parser:       parser,
		store:        store,
	}
}

// Check evaluates file, relative to projectPath unless absolute, against
// the checklist called name.
func (s *ChecklistService) Check(projectPath, file, name string) (*domain.ChecklistResult, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	spec, ok := cfg.Checklist(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)",
			domain.ErrUnknownChecklist, name, strings.Join(cfg.ChecklistNames(), ", "))
	}

	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(projectPath, file)
	}
	content, err := s.store.Read(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	result := checklist.Evaluate(filepath.ToSlash(file), s.parser.Parse([]byte(content)), spec)
	s.env.Logger.Debug("checklist evaluated",
		"file", file, "checklist", spec.Name, "score", result.Score, "passed", result.Passed)
	return &result, nil
}

// ProjectFile resolves file against projectPath and rejects anything that
// lands outside it, absolute paths and ".." segments included. It returns
// the cleaned project-relative path.
func ProjectFile(projectPath, file string) (string, error) {
	root, err := filepath.Abs(projectPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", projectPath, err)
	}
	target := file
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	rel, err := filepath.Rel(root, filepath.Clean(target))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", domain.ErrOutsideProject, file)
	}
	return filepath.ToSlash(rel), nil
}

// Checklists lists the checklist names available in projectPath.
func (s *ChecklistService) Checklists(projectPath string) ([]string, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg.ChecklistNames(), nil
}
