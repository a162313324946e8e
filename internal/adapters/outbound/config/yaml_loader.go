package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openkraft/docguard/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up at the root.
const FileName = ".docguard.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .docguard.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .docguard.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging so typos in the raw input are reported.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on the defaults. Scalars win when
// set; lists are kept as extras and unioned with the built-ins by the
// Effective* accessors.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := override

	if result.DocsDir == "" {
		result.DocsDir = base.DocsDir
	}
	if result.ProfilesFile == "" {
		result.ProfilesFile = base.ProfilesFile
	}
	if result.ChangelogFile == "" {
		result.ChangelogFile = base.ChangelogFile
	}
	if result.Author == "" {
		result.Author = base.Author
	}
	if result.DateLayout == "" {
		result.DateLayout = base.DateLayout
	}

	return result
}
