package naming_test

import (
	"testing"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_AcceptAndReject(t *testing.T) {
	cat := naming.DefaultCatalog()
	tests := []struct {
		category domain.Category
		accept   []string
		reject   []string
	}{
		{domain.CategoryDocumentation, []string{"README.md", "API_DOCS.md", "V2_GUIDE.md"}, []string{"readme.md", "Api.md", "_X.md", "GUIDE.txt"}},
		{domain.CategoryScripts, []string{"deploy_app.sh", "setup.ps1", "a1.py"}, []string{"Deploy.sh", "deploy-app.sh", "run.rb"}},
		{domain.CategorySourceCode, []string{"App.tsx", "Dashboard.vue", "Widget.svelte"}, []string{"app.tsx", "My_App.ts"}},
		{domain.CategoryComponents, []string{"UserCard.tsx", "Nav.jsx"}, []string{"userCard.tsx", "Card.vue"}},
		{domain.CategoryHooks, []string{"useAuth.ts", "useX.jsx"}, []string{"authHook.ts", "use.ts", "useauth.ts"}},
		{domain.CategoryTypes, []string{"user_types.ts"}, []string{"UserTypes.ts", "user_types.tsx"}},
		{domain.CategoryServices, []string{"AuthService.ts"}, []string{"Auth.ts", "authService.ts", "Service.ts"}},
		{domain.CategoryUtils, []string{"date_utils.js"}, []string{"dateUtils.js"}},
		{domain.CategoryConfig, []string{"app_settings.json", "ci.yml"}, []string{"AppSettings.json", "app-settings.yaml"}},
	}
	for _, tt := range tests {
		rule, ok := cat.Rule(tt.category)
		require.True(t, ok, "rule for %s", tt.category)
		for _, name := range tt.accept {
			assert.True(t, rule.Matches(name), "%s should accept %s", tt.category, name)
		}
		for _, name := range tt.reject {
			assert.False(t, rule.Matches(name), "%s should reject %s", tt.category, name)
		}
	}

	_, ok := cat.Rule(domain.CategoryOther)
	assert.False(t, ok)
}

func TestRule_Propose(t *testing.T) {
	cat := naming.DefaultCatalog()
	tests := []struct {
		category domain.Category
		name     string
		want     string
	}{
		{domain.CategoryDocumentation, "readme.md", "README.md"},
		{domain.CategoryDocumentation, "setup-guide.MD", "SETUP_GUIDE.md"},
		{domain.CategoryDocumentation, "guíaRápida.md", "GUIA_RAPIDA.md"},
		{domain.CategoryScripts, "DeployApp.sh", "deploy_app.sh"},
		{domain.CategorySourceCode, "user-profile.tsx", "UserProfile.tsx"},
		{domain.CategoryComponents, "nav_bar.jsx", "NavBar.jsx"},
		{domain.CategoryHooks, "authHook.ts", "useAuthHook.ts"},
		{domain.CategoryHooks, "use-use-fetch.ts", "useFetch.ts"},
		{domain.CategoryServices, "auth.ts", "AuthService.ts"},
		{domain.CategoryServices, "auth-service.ts", "AuthService.ts"},
		{domain.CategoryConfig, "AppSettings.JSON", "app_settings.json"},
	}
	for _, tt := range tests {
		rule, _ := cat.Rule(tt.category)
		got, err := rule.Propose(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestRule_ProposeIdempotent(t *testing.T) {
	cat := naming.DefaultCatalog()
	for _, c := range domain.AllCategories {
		rule, ok := cat.Rule(c)
		if !ok {
			continue
		}
		for _, example := range rule.Examples {
			got, err := rule.Propose(example)
			require.NoError(t, err)
			assert.Equal(t, example, got)
		}
	}
}

func TestRule_ProposeFailure(t *testing.T) {
	cat := naming.DefaultCatalog()
	scripts, _ := cat.Rule(domain.CategoryScripts)

	_, err := scripts.Propose("2fast.py")
	assert.ErrorIs(t, err, naming.ErrNoProposal)

	_, err = scripts.Propose("Tool.rb")
	assert.ErrorIs(t, err, naming.ErrNoProposal)

	hooks, _ := cat.Rule(domain.CategoryHooks)
	_, err = hooks.Propose("use.ts")
	assert.ErrorIs(t, err, naming.ErrNoProposal)

	docs, _ := cat.Rule(domain.CategoryDocumentation)
	_, err = docs.Propose("---.md")
	assert.ErrorIs(t, err, naming.ErrNoProposal)
}

func TestCatalog_Check(t *testing.T) {
	cat := naming.DefaultCatalog("LICENSE.txt")

	v := cat.Check("readme.md")
	assert.False(t, v.Compliant)
	assert.Equal(t, domain.CategoryDocumentation, v.Category)
	assert.Contains(t, v.Message, "UPPER_SNAKE_CASE")

	assert.True(t, cat.Check("README.md").Compliant)
	assert.True(t, cat.Check("src/hooks/useAuth.ts").Compliant)
	assert.False(t, cat.Check("src/hooks/authHook.ts").Compliant)
	assert.True(t, cat.Check("assets/logo.png").Compliant, "other has no rule")
	assert.True(t, cat.Check("docs/LICENSE.txt").Compliant, "configured allow-list")
}

func TestCatalog_AllowListIsAbsolute(t *testing.T) {
	cat := naming.DefaultCatalog()
	for _, p := range []string{
		"package.json", "tsconfig.app.json", "docs/.env", "src/components/vite.config.ts",
		"pnpm-lock.yaml", "scripts/Dockerfile", ".eslintrc.json",
	} {
		assert.True(t, cat.Check(p).Compliant, p)
		got, err := cat.Propose(p)
		require.NoError(t, err)
		assert.Equal(t, p[len(p)-len(got):], got, "%s is never renamed", p)
	}
}

func TestCatalog_ReportFilesAllowed(t *testing.T) {
	cat := naming.DefaultCatalog()
	for _, name := range []string{
		"naming_convention_report.json", "naming_convention_report.md",
		"naming_fix_report_dry_run.md", "naming_fix_report_executed.md",
	} {
		v := cat.Check(name)
		assert.True(t, v.Compliant, name)
		assert.Equal(t, "standard file, always allowed", v.Message)
	}
}

func TestCatalog_Propose(t *testing.T) {
	cat := naming.DefaultCatalog()

	got, err := cat.Propose("src/hooks/authHook.ts")
	require.NoError(t, err)
	assert.Equal(t, "useAuthHook.ts", got)

	got, err = cat.Propose("src/hooks/useAuth.ts")
	require.NoError(t, err)
	assert.Equal(t, "useAuth.ts", got)
}

func TestCatalog_Patterns(t *testing.T) {
	patterns := naming.DefaultCatalog().Patterns()
	assert.Len(t, patterns, 9)
	hooks := patterns[domain.CategoryHooks]
	assert.Equal(t, "prefixed_pascal:use", hooks.Transform)
	assert.LessOrEqual(t, len(hooks.Examples), 3)
}
