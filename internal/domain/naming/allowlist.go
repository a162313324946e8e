package naming

import "strings"

// standardFiles keep their conventional names regardless of category.
var standardFiles = map[string]bool{
	"README.md": true, "package.json": true, "tsconfig.json": true, "Dockerfile": true,

	// lockfiles
	"package-lock.json": true, "yarn.lock": true, "pnpm-lock.yaml": true, "bun.lockb": true,

	// tool configuration
	"vite.config.ts": true, "vite.config.js": true,
	"webpack.config.js": true,
	"jest.config.js": true, "jest.config.ts": true,
	"cypress.config.js": true, "cypress.config.ts": true,
	"tailwind.config.js": true, "tailwind.config.ts": true,
	"postcss.config.js": true,
	"eslint.config.js": true,
	"prettier.config.js": true, "prettier.config.ts": true,
	"playwright.config.ts": true, "playwright.config.js": true,
	"next.config.js": true, "next.config.ts": true,
	"nuxt.config.js": true, "nuxt.config.ts": true,
	"angular.json": true, "angular-cli.json": true,
	"vue.config.js": true, "vue.config.ts": true,
	"rollup.config.js": true, "rollup.config.ts": true,
	"parcel.config.js": true, "parcel.config.ts": true,

	// docguard's own reports
	"naming_convention_report.json": true, "naming_convention_report.md": true,
	"naming_fix_report_dry_run.json": true, "naming_fix_report_dry_run.md": true,
	"naming_fix_report_executed.json": true, "naming_fix_report_executed.md": true,
}

// AllowList decides which filenames are exempt from every naming rule.
type AllowList struct {
	extra map[string]bool
}

// NewAllowList builds an allow-list from the standard set plus extras.
func NewAllowList(extra ...string) AllowList {
	m := make(map[string]bool, len(extra))
	for _, name := range extra {
		m[name] = true
	}
	return AllowList{extra: m}
}

// Allows reports whether name is always compliant.
func (a AllowList) Allows(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if standardFiles[name] || a.extra[name] {
		return true
	}
	// tsconfig.app.json, tsconfig.node.json, ...
	return strings.HasPrefix(name, "tsconfig.") && strings.HasSuffix(name, ".json")
}
