package domain

import (
	"fmt"
	"strings"
)

// DefaultExcludeDirs are directory names never descended into.
var DefaultExcludeDirs = []string{
	"node_modules", ".git", ".vscode", ".idea", "dist", "build",
	"coverage", ".nyc_output", ".next", ".cache", "backups", ".docguard",
}

// DefaultExtensions are the file extensions tracked by the naming scan.
var DefaultExtensions = []string{
	".md", ".py", ".js", ".ts", ".tsx", ".jsx", ".vue", ".svelte",
	".json", ".yaml", ".yml", ".toml", ".env", ".ps1", ".sh", ".bat",
}

// DefaultCriticalFiles are copied aside before a rename batch runs.
var DefaultCriticalFiles = []string{
	"package.json", "tsconfig.json", "README.md", "CHANGELOG.md",
}

// BuiltinChecklists are always available to `docs check`.
var BuiltinChecklists = []ChecklistSpec{
	{
		Name: "evaluation",
		Sections: []string{
			"Búsqueda Exhaustiva",
			"Compatibilidad Hacia Atrás",
			"Análisis de Riesgos",
			"Validación de Suposiciones",
		},
		Keywords: []string{"multi-tenant", "seguridad", "escalabilidad", "open source", "comunidad"},
		MinScore: 70,
	},
}

// ProjectConfig holds project-level configuration loaded from .docguard.yaml.
// List fields extend the built-in defaults rather than replacing them.
type ProjectConfig struct {
	ExcludeDirs   []string        `yaml:"exclude_dirs"   json:"exclude_dirs,omitempty"`
	AllowFiles    []string        `yaml:"allow_files"    json:"allow_files,omitempty"`
	Extensions    []string        `yaml:"extensions"     json:"extensions,omitempty"`
	CriticalFiles []string        `yaml:"critical_files" json:"critical_files,omitempty"`
	DocsDir       string          `yaml:"docs_dir"       json:"docs_dir,omitempty"`
	ProfilesFile  string          `yaml:"profiles_file"  json:"profiles_file,omitempty"`
	ChangelogFile string          `yaml:"changelog_file" json:"changelog_file,omitempty"`
	Author        string          `yaml:"author"         json:"author,omitempty"`
	DateLayout    string          `yaml:"date_layout"    json:"date_layout,omitempty"`
	Checklists    []ChecklistSpec `yaml:"checklists"     json:"checklists,omitempty"`
}

// ChecklistSpec lists what a markdown document must contain.
type ChecklistSpec struct {
	Name     string   `yaml:"name"      json:"name"`
	Sections []string `yaml:"sections"  json:"sections,omitempty"`
	Keywords []string `yaml:"keywords"  json:"keywords,omitempty"`
	MinScore int      `yaml:"min_score" json:"min_score"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		DocsDir:       "docs",
		ProfilesFile:  "docs/TEAM_PROFILES.md",
		ChangelogFile: "CHANGELOG.md",
		Author:        "docguard",
		DateLayout:    "2006-01-02",
	}
}

// EffectiveExcludeDirs returns built-in exclusions plus configured extras.
func (c ProjectConfig) EffectiveExcludeDirs() []string {
	return union(DefaultExcludeDirs, c.ExcludeDirs)
}

// EffectiveExtensions returns tracked extensions plus configured extras.
func (c ProjectConfig) EffectiveExtensions() []string {
	extra := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		extra = append(extra, strings.ToLower(e))
	}
	return union(DefaultExtensions, extra)
}

// EffectiveCriticalFiles returns the backup list plus configured extras.
func (c ProjectConfig) EffectiveCriticalFiles() []string {
	return union(DefaultCriticalFiles, c.CriticalFiles)
}

// Checklist looks up a checklist by name, configured entries first.
func (c ProjectConfig) Checklist(name string) (ChecklistSpec, bool) {
	for _, cl := range c.Checklists {
		if strings.EqualFold(cl.Name, name) {
			return cl, true
		}
	}
	for _, cl := range BuiltinChecklists {
		if strings.EqualFold(cl.Name, name) {
			return cl, true
		}
	}
	return ChecklistSpec{}, false
}

// ChecklistNames lists every available checklist name.
func (c ProjectConfig) ChecklistNames() []string {
	names := make([]string, 0, len(c.Checklists)+len(BuiltinChecklists))
	for _, cl := range c.Checklists {
		names = append(names, cl.Name)
	}
	for _, cl := range BuiltinChecklists {
		names = append(names, cl.Name)
	}
	return union(nil, names)
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for _, d := range c.ExcludeDirs {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("exclude_dirs must not contain empty entries")
		}
		if strings.ContainsAny(d, `/\`) {
			return fmt.Errorf("exclude_dirs entry %q must be a directory name, not a path", d)
		}
	}
	for _, f := range c.AllowFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("allow_files must not contain empty entries")
		}
	}
	for _, e := range c.Extensions {
		if !strings.HasPrefix(e, ".") || len(e) < 2 {
			return fmt.Errorf("extensions entry %q must start with a dot", e)
		}
	}
	for _, f := range c.CriticalFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("critical_files must not contain empty entries")
		}
	}

	seen := make(map[string]bool)
	for i, cl := range c.Checklists {
		if strings.TrimSpace(cl.Name) == "" {
			return fmt.Errorf("checklists[%d].name must not be empty", i)
		}
		key := strings.ToLower(cl.Name)
		if seen[key] {
			return fmt.Errorf("checklist %q is defined twice", cl.Name)
		}
		seen[key] = true
		if len(cl.Sections) == 0 && len(cl.Keywords) == 0 {
			return fmt.Errorf("checklist %q needs at least one section or keyword", cl.Name)
		}
		if cl.MinScore < 0 || cl.MinScore > 100 {
			return fmt.Errorf("checklist %q min_score = %d (must be between 0 and 100)", cl.Name, cl.MinScore)
		}
	}
	return nil
}

// union returns base followed by the extras not already present, in order.
func union(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, v := range list {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
