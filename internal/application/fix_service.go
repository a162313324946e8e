package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/naming"
)

// FixService stages and applies renames that bring filenames in line with
// the convention catalog. Plan never touches the tree; Apply renames.
type FixService struct {
	env          Env
	scanner      domain.ProjectScanner
	configLoader domain.ConfigLoader
	git          domain.GitInfo
	snapshotter  domain.Snapshotter
}

func NewFixService(
	env Env,
	scanner domain.ProjectScanner,
	configLoader domain.ConfigLoader,
	git domain.GitInfo,
	snapshotter domain.Snapshotter,
) *FixService {
	return &FixService{
		env:          env.withDefaults(),
		scanner:      scanner,
		configLoader: configLoader,
		git:          git,
		snapshotter:  snapshotter,
	}
}

// Plan computes the dry-run rename plan for projectPath.
func (s *FixService) Plan(projectPath, only string) (*domain.FixReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	catalog := naming.DefaultCatalog(cfg.AllowFiles...)

	scan, err := s.scanner.Scan(projectPath, scanOptions(cfg, only))
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	plan := &domain.FixReport{
		RunID:       s.env.NewID(),
		Timestamp:   s.env.Now(),
		ProjectRoot: scan.RootPath,
		CommitHash:  commitHash(s.git, scan.RootPath, s.env.Logger),
		DryRun:      true,
		Status:      domain.FixPlanned,
		Changes:     []domain.RenameChange{},
		Patterns:    catalog.Patterns(),
		Warnings:    append([]domain.Warning{}, scan.Warnings...),
	}
	plan.Categories = map[domain.Category]domain.CategoryStats{}
	logWarnings(s.env.Logger, scan.Warnings)
	s.warnIfDirty(plan)

	targets := make(map[string]string)
	for _, f := range scan.Files {
		v := catalog.Check(f)
		plan.Record(v.Category, v.Compliant)
		if v.Compliant {
			continue
		}

		name := filepath.Base(filepath.FromSlash(f))
		proposed, err := v.Rule.Propose(name)
		if err != nil {
			s.env.Logger.Warn("keeping original name", "file", f, "err", err)
			plan.Warnings = append(plan.Warnings, domain.Warning{
				Kind: domain.WarningRuleFailure, File: f, Message: err.Error(),
			})
			continue
		}
		if proposed == name {
			continue
		}

		change := domain.RenameChange{
			File:        f,
			CurrentName: name,
			NewName:     proposed,
			Category:    v.Category,
			Description: v.Rule.Description,
		}
		target := change.Target()
		switch {
		case destinationTaken(scan.RootPath, f, target):
			change.Conflict = true
			change.ConflictReason = fmt.Sprintf("%s already exists", target)
		case targets[target] != "":
			change.Conflict = true
			change.ConflictReason = fmt.Sprintf("%s is also the target of %s", target, targets[target])
		default:
			targets[target] = f
		}
		plan.Changes = append(plan.Changes, change)
	}
	plan.TotalChanges = len(plan.Changes)

	s.env.Logger.Debug("rename plan ready", "changes", plan.TotalChanges, "conflicts", plan.Conflicts())
	return plan, nil
}

// Cancel marks a plan as declined. Nothing on disk changes.
func (s *FixService) Cancel(plan *domain.FixReport) {
	plan.Status = domain.FixCancelled
}

// Apply snapshots the critical files, then performs every non-conflicting
// rename of plan. Failures are recorded per change and never stop the batch.
// The backup is a plain copy; a failed rename is not rolled back.
func (s *FixService) Apply(plan *domain.FixReport) error {
	if plan.Status != domain.FixPlanned {
		return fmt.Errorf("plan is %s, not %s", plan.Status, domain.FixPlanned)
	}
	cfg, err := s.configLoader.Load(plan.ProjectRoot)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	root := plan.ProjectRoot
	plan.DryRun = false

	if s.snapshotter != nil && pending(plan) > 0 {
		dir, copied, err := s.snapshotter.Snapshot(root, cfg.EffectiveCriticalFiles(), s.env.Now())
		plan.BackupDir = dir
		if err != nil {
			s.env.Logger.Warn("backup incomplete", "dir", dir, "err", err)
			plan.Warnings = append(plan.Warnings, domain.Warning{Kind: domain.WarningBackup, Message: err.Error()})
		}
		s.env.Logger.Debug("backup done", "dir", dir, "files", len(copied))
	}

	for _, c := range plan.Changes {
		outcome := domain.RenameOutcome{File: c.File, NewFile: c.Target()}
		switch {
		case c.Conflict:
			outcome.Status = domain.OutcomeConflict
			outcome.Error = c.ConflictReason
		case destinationTaken(root, c.File, c.Target()):
			outcome.Status = domain.OutcomeConflict
			outcome.Error = fmt.Sprintf("%s already exists", c.Target())
		default:
			src := filepath.Join(root, filepath.FromSlash(c.File))
			dst := filepath.Join(root, filepath.FromSlash(c.Target()))
			if err := os.Rename(src, dst); err != nil {
				outcome.Status = domain.OutcomeFailed
				outcome.Error = err.Error()
				s.env.Logger.Warn("rename failed", "file", c.File, "err", err)
			} else {
				outcome.Status = domain.OutcomeRenamed
			}
		}
		plan.Outcomes = append(plan.Outcomes, outcome)
	}

	plan.Status = domain.FixApplied
	s.env.Logger.Debug("renames applied",
		"renamed", plan.CountOutcomes(domain.OutcomeRenamed),
		"conflicts", plan.CountOutcomes(domain.OutcomeConflict),
		"failed", plan.CountOutcomes(domain.OutcomeFailed))
	return nil
}

// pending counts the changes Apply will attempt to rename.
func pending(plan *domain.FixReport) int {
	n := 0
	for _, c := range plan.Changes {
		if !c.Conflict {
			n++
		}
	}
	return n
}

func (s *FixService) warnIfDirty(plan *domain.FixReport) {
	if s.git == nil {
		return
	}
	dirty, err := s.git.IsDirty(plan.ProjectRoot)
	if err != nil || !dirty {
		return
	}
	s.env.Logger.Warn("worktree has uncommitted changes")
	plan.Warnings = append(plan.Warnings, domain.Warning{
		Kind:    domain.WarningVCS,
		Message: "worktree has uncommitted changes; commit them before renaming so the fix can be reviewed on its own",
	})
}

// destinationTaken reports whether target exists as a different file than
// source. A case-only rename on a case-insensitive filesystem resolves to
// the source itself and is not a conflict.
func destinationTaken(root, source, target string) bool {
	dst, err := os.Lstat(filepath.Join(root, filepath.FromSlash(target)))
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	if err != nil {
		return true
	}
	src, err := os.Lstat(filepath.Join(root, filepath.FromSlash(source)))
	if err != nil {
		return true
	}
	return !os.SameFile(src, dst)
}
