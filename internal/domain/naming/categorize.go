// Package naming holds the filename convention catalog: how a path is
// categorised, what each category accepts and how a bad name is rewritten.
package naming

import (
	"path"
	"slices"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
)

// dirHints map a whole path segment to a category. Order matters.
var dirHints = []struct {
	segment  string
	category domain.Category
}{
	{"docs", domain.CategoryDocumentation},
	{"scripts", domain.CategoryScripts},
}

// subPathHints map a path substring to a category. Order matters.
var subPathHints = []struct {
	sub      string
	category domain.Category
}{
	{"src/components", domain.CategoryComponents},
	{"src/hooks", domain.CategoryHooks},
	{"src/types", domain.CategoryTypes},
	{"src/services", domain.CategoryServices},
	{"src/utils", domain.CategoryUtils},
}

var configExtensions = map[string]bool{
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".env": true,
}

var extensionFallback = map[string]domain.Category{
	".md":  domain.CategoryDocumentation,
	".py":  domain.CategoryScripts,
	".ps1": domain.CategoryScripts,
	".sh":  domain.CategoryScripts,
	".bat": domain.CategoryScripts,
	".ts":  domain.CategorySourceCode,
	".js":  domain.CategorySourceCode,
	".tsx": domain.CategorySourceCode,
	".jsx": domain.CategorySourceCode,
}

// Categorize assigns a category from a project-relative path. Directory
// hints win over the extension, so the same filename can land in different
// categories depending on where it lives.
func Categorize(relPath string) domain.Category {
	p := strings.ReplaceAll(relPath, `\`, "/")
	segments := strings.Split(p, "/")

	for _, h := range dirHints {
		if slices.Contains(segments, h.segment) {
			return h.category
		}
	}
	for _, h := range subPathHints {
		if strings.Contains(p, h.sub) {
			return h.category
		}
	}
	if slices.Contains(segments, "src") {
		return domain.CategorySourceCode
	}

	ext := strings.ToLower(path.Ext(p))
	if configExtensions[ext] {
		return domain.CategoryConfig
	}
	if cat, ok := extensionFallback[ext]; ok {
		return cat
	}
	return domain.CategoryOther
}
