package naming

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
)

// ErrNoProposal is returned when a rule cannot derive a compliant name.
var ErrNoProposal = errors.New("no compliant name could be derived")

// Rule is the naming convention for one category.
type Rule struct {
	Category    domain.Category
	Pattern     *regexp.Regexp
	Description string
	Examples    []string
	Transform   Transform
}

// Matches reports whether name satisfies the rule.
func (r Rule) Matches(name string) bool {
	return r.Pattern.MatchString(name)
}

// Propose returns a compliant version of name. A name that already
// matches is returned as is, so proposing twice never changes it again.
func (r Rule) Propose(name string) (string, error) {
	if r.Matches(name) {
		return name, nil
	}
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	newStem := r.Transform.Apply(stem)
	if newStem == "" {
		return name, fmt.Errorf("%w: %q has no usable words", ErrNoProposal, name)
	}
	candidate := newStem + strings.ToLower(ext)
	if !r.Matches(candidate) {
		return name, fmt.Errorf("%w: %q became %q, which still breaks %q", ErrNoProposal, name, candidate, r.Description)
	}
	return candidate, nil
}

// Info returns the report view of the rule.
func (r Rule) Info() domain.PatternInfo {
	return domain.PatternInfo{
		Pattern:     r.Pattern.String(),
		Description: r.Description,
		Examples:    append([]string(nil), r.Examples...),
		Transform:   r.Transform.String(),
	}
}

// DefaultRules is the built-in convention table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:    domain.CategoryDocumentation,
			Pattern:     regexp.MustCompile(`^[A-Z][A-Z0-9_]*\.md$`),
			Description: "Documentation: UPPER_SNAKE_CASE.md",
			Examples:    []string{"README.md", "API_DOCUMENTATION.md", "SETUP_GUIDE.md"},
			Transform:   Transform{Kind: UpperSnake},
		},
		{
			Category:    domain.CategoryScripts,
			Pattern:     regexp.MustCompile(`^[a-z][a-z0-9_]*\.(py|js|ts|ps1|sh|bat)$`),
			Description: "Scripts: snake_case.ext",
			Examples:    []string{"validate_naming.py", "setup_environment.ps1", "deploy_app.js"},
			Transform:   Transform{Kind: LowerSnake},
		},
		{
			Category:    domain.CategorySourceCode,
			Pattern:     regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*\.(tsx?|jsx?|vue|svelte)$`),
			Description: "Source code: PascalCase.ext",
			Examples:    []string{"UserProfile.tsx", "ApiClient.ts", "Dashboard.vue"},
			Transform:   Transform{Kind: Pascal},
		},
		{
			Category:    domain.CategoryComponents,
			Pattern:     regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*\.(tsx?|jsx?)$`),
			Description: "Components: PascalCase.tsx",
			Examples:    []string{"UserCard.tsx", "NavigationBar.tsx", "DataTable.jsx"},
			Transform:   Transform{Kind: Pascal},
		},
		{
			Category:    domain.CategoryHooks,
			Pattern:     regexp.MustCompile(`^use[A-Z][a-zA-Z0-9]*\.(tsx?|jsx?)$`),
			Description: "Hooks: usePascalCase.ext",
			Examples:    []string{"useAuth.ts", "useDataFetching.js", "useLocalStorage.ts"},
			Transform:   Transform{Kind: PrefixedPascal, Affix: "use"},
		},
		{
			Category:    domain.CategoryTypes,
			Pattern:     regexp.MustCompile(`^[a-z][a-z0-9_]*\.(ts|js)$`),
			Description: "Types: snake_case.ext",
			Examples:    []string{"user_types.ts", "api_types.js", "database_schema.ts"},
			Transform:   Transform{Kind: LowerSnake},
		},
		{
			Category:    domain.CategoryServices,
			Pattern:     regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*Service\.(ts|js)$`),
			Description: "Services: PascalCaseService.ext",
			Examples:    []string{"AuthService.ts", "ApiService.js", "DatabaseService.ts"},
			Transform:   Transform{Kind: SuffixedPascal, Affix: "Service"},
		},
		{
			Category:    domain.CategoryUtils,
			Pattern:     regexp.MustCompile(`^[a-z][a-z0-9_]*\.(ts|js)$`),
			Description: "Utils: snake_case.ext",
			Examples:    []string{"date_utils.ts", "string_helpers.js", "validation.ts"},
			Transform:   Transform{Kind: LowerSnake},
		},
		{
			Category:    domain.CategoryConfig,
			Pattern:     regexp.MustCompile(`^[a-z][a-z0-9_]*\.(json|yaml|yml|toml|env)$`),
			Description: "Config: snake_case.ext",
			Examples:    []string{"app_settings.json", "docker_compose.yml", "feature_flags.toml"},
			Transform:   Transform{Kind: LowerSnake},
		},
	}
}

// Catalog maps categories to rules. It is immutable once built.
type Catalog struct {
	rules map[domain.Category]Rule
	allow AllowList
}

// NewCatalog builds a catalog from rules and an allow-list.
func NewCatalog(rules []Rule, allow AllowList) *Catalog {
	m := make(map[domain.Category]Rule, len(rules))
	for _, r := range rules {
		m[r.Category] = r
	}
	return &Catalog{rules: m, allow: allow}
}

// DefaultCatalog returns the built-in rules with extra allow-listed names.
func DefaultCatalog(extraAllowed ...string) *Catalog {
	return NewCatalog(DefaultRules(), NewAllowList(extraAllowed...))
}

// Rule returns the rule for a category.
func (c *Catalog) Rule(cat domain.Category) (Rule, bool) {
	r, ok := c.rules[cat]
	return r, ok
}

// Allowed reports whether a filename is on the allow-list.
func (c *Catalog) Allowed(name string) bool {
	return c.allow.Allows(name)
}

// Verdict is the validation result for one path.
type Verdict struct {
	Category  domain.Category
	Compliant bool
	Message   string
	Rule      *Rule
}

// Check validates the file at a project-relative path.
func (c *Catalog) Check(relPath string) Verdict {
	name := path.Base(relPath)
	cat := Categorize(relPath)
	if c.allow.Allows(name) {
		return Verdict{Category: cat, Compliant: true, Message: "standard file, always allowed"}
	}
	rule, ok := c.rules[cat]
	if !ok {
		return Verdict{Category: cat, Compliant: true, Message: "no rule for category"}
	}
	if rule.Matches(name) {
		return Verdict{Category: cat, Compliant: true, Message: "follows convention", Rule: &rule}
	}
	return Verdict{
		Category: cat,
		Message:  "does not follow " + rule.Description,
		Rule:     &rule,
	}
}

// Propose returns the corrected name for a path, or the current name when
// the file is allowed, has no rule, or already complies.
func (c *Catalog) Propose(relPath string) (string, error) {
	v := c.Check(relPath)
	name := path.Base(relPath)
	if v.Compliant || v.Rule == nil {
		return name, nil
	}
	return v.Rule.Propose(name)
}

// Patterns returns the report view of every rule.
func (c *Catalog) Patterns() map[domain.Category]domain.PatternInfo {
	out := make(map[domain.Category]domain.PatternInfo, len(c.rules))
	for cat, r := range c.rules {
		out[cat] = r.Info()
	}
	return out
}
