package application

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/signature"
)

// MaxSignatureFileSize is the largest file the signature pass will touch.
const MaxSignatureFileSize = 1 << 20

var signatureExtensions = []string{".md", ".ts", ".tsx", ".js", ".jsx", ".py", ".txt", ".json"}

var skippedLockfiles = map[string]bool{
	"package-lock.json": true, "yarn.lock": true, "pnpm-lock.yaml": true, "bun.lockb": true,
}

var skippedSuffixes = []string{".min.js", ".min.css", ".map"}

// SignatureOptions controls a signature update.
type SignatureOptions struct {
	DryRun bool
	// Only restricts the update to one project-relative file.
	Only string
}

// SignatureService substitutes team signature placeholders across a project.
type SignatureService struct {
	env          Env
	scanner      domain.ProjectScanner
	configLoader domain.ConfigLoader
	parser       domain.DocumentParser
	store        domain.TextStore
}

func NewSignatureService(
	env Env,
	scanner domain.ProjectScanner,
	configLoader domain.ConfigLoader,
	parser domain.DocumentParser,
	store domain.TextStore,
) *SignatureService {
	return &SignatureService{
		env:          env.withDefaults(),
		scanner:      scanner,
		configLoader: configLoader,
		parser:       parser,
		store:        store,
	}
}

// Profiles loads the signature profiles declared for projectPath.
func (s *SignatureService) Profiles(projectPath string) ([]signature.Profile, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s.profiles(projectPath, cfg)
}

func (s *SignatureService) profiles(projectPath string, cfg domain.ProjectConfig) ([]signature.Profile, error) {
	content, err := s.store.Read(filepath.Join(projectPath, filepath.FromSlash(cfg.ProfilesFile)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", domain.ErrNoProfiles, cfg.ProfilesFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.ProfilesFile, err)
	}
	profiles := signature.ExtractProfiles(s.parser.Parse([]byte(content)))
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoProfiles, cfg.ProfilesFile)
	}
	return profiles, nil
}

// Update replaces placeholders in every eligible file. Files that cannot
// be read or written are reported and skipped.
func (s *SignatureService) Update(projectPath string, opts SignatureOptions) (*domain.SignatureReport, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	profiles, err := s.profiles(projectPath, cfg)
	if err != nil {
		return nil, err
	}

	scan, err := s.scanner.Scan(projectPath, domain.ScanOptions{
		ExcludeDirs: cfg.EffectiveExcludeDirs(),
		Extensions:  signatureExtensions,
		Only:        opts.Only,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.SignatureReport{
		RunID:       s.env.NewID(),
		Timestamp:   s.env.Now(),
		ProjectRoot: scan.RootPath,
		DryRun:      opts.DryRun,
		Files:       []domain.SignatureFile{},
		Errors:      []string{},
	}
	for _, p := range profiles {
		report.Profiles = append(report.Profiles, p.Placeholder)
	}
	for _, w := range scan.Warnings {
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", w.File, w.Message))
	}

	profilesFile := path.Clean(filepath.ToSlash(cfg.ProfilesFile))
	for _, f := range scan.Files {
		if f == profilesFile || skipSignatureFile(f) {
			continue
		}
		abs := filepath.Join(scan.RootPath, filepath.FromSlash(f))
		if info, err := os.Stat(abs); err == nil && info.Size() > MaxSignatureFileSize {
			s.env.Logger.Debug("skipping large file", "file", f, "size", info.Size())
			continue
		}

		content, err := s.store.Read(abs)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", f, err))
			continue
		}
		updated, counts := signature.Replace(content, profiles)
		if len(counts) == 0 {
			continue
		}
		report.Stats.FilesProcessed++
		report.Files = append(report.Files, domain.SignatureFile{File: f, Placeholders: counts})
		if opts.DryRun {
			continue
		}

		if err := s.store.Write(abs, updated); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", f, err))
			continue
		}
		report.Stats.FilesUpdated++
		for _, n := range counts {
			report.Stats.ReplacementsMade += n
		}
		s.env.Logger.Debug("signatures replaced", "file", f, "placeholders", len(counts))
	}
	return report, nil
}

func skipSignatureFile(rel string) bool {
	name := path.Base(rel)
	if skippedLockfiles[name] {
		return true
	}
	lower := strings.ToLower(name)
	for _, suffix := range skippedSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
