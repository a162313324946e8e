package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/docguard/internal/domain"
)

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docguard dev")
}

func TestDocsBump(t *testing.T) {
	root := writeTree(t, map[string]string{"docs/API_GUIDE.md": "**Version**: 1.0.0\n"})

	out, err := run(t, "", "docs", "bump", "MAJOR", "--path", root, "-d", "New API")
	require.NoError(t, err)
	assert.Contains(t, out, "2.0.0")

	data, err := os.ReadFile(filepath.Join(root, "docs", "API_GUIDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "**Version**: 2.0.0 - New API\n", string(data))
	assert.True(t, fileExists(root, "CHANGELOG.md"))
}

func TestDocsBump_DryRunJSON(t *testing.T) {
	root := writeTree(t, map[string]string{"docs/API_GUIDE.md": "**Version**: 1.0.0\n"})

	out, err := run(t, "", "docs", "bump", "patch", "--path", root, "--dry-run", "--json")
	require.NoError(t, err)

	var rep domain.VersionReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Len(t, rep.Documents, 1)
	assert.Equal(t, "1.0.1", rep.Documents[0].To)
	assert.False(t, fileExists(root, "CHANGELOG.md"))
}

func TestDocsBump_InvalidChange(t *testing.T) {
	root := writeTree(t, map[string]string{"docs/A.md": "**Version**: 1.0.0\n"})

	_, err := run(t, "", "docs", "bump", "HUGE", "--path", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownChange)
}

func TestDocsCheck(t *testing.T) {
	root := writeTree(t, map[string]string{
		".docguard.yaml": "checklists:\n  - name: rfc\n    sections: [Motivation]\n    keywords: [rollout]\n    min_score: 50\n",
		"RFC.md":         "# RFC\n\n## Motivation\nThe rollout plan.\n",
		"BAD.md":         "# Nothing\n",
	})

	out, err := run(t, "", "docs", "check", "RFC.md", "--path", root, "--checklist", "rfc")
	require.NoError(t, err)
	assert.Contains(t, out, "PASSED")

	_, err = run(t, "", "docs", "check", "BAD.md", "--path", root, "--checklist", "rfc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not pass checklist rfc")

	_, err = run(t, "", "docs", "check", "RFC.md", "--path", root, "--checklist", "missing")
	assert.ErrorIs(t, err, domain.ErrUnknownChecklist)
}

func TestSignaturesUpdate(t *testing.T) {
	root := writeTree(t, map[string]string{
		"docs/TEAM_PROFILES.md": "## Lead\n\n**Placeholder:** `{{FIRMA_LEAD}}`\n\n```\nAna\n```\n",
		"docs/PLAN.md":          "By {{FIRMA_LEAD}}\n",
	})

	_, err := run(t, "", "signatures", "update", root, "--dry-run")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(root, "docs", "PLAN.md"))
	require.NoError(t, err)
	assert.Equal(t, "By {{FIRMA_LEAD}}\n", string(data))

	_, err = run(t, "", "signatures", "update", root)
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(root, "docs", "PLAN.md"))
	require.NoError(t, err)
	assert.Equal(t, "By Ana\n", string(data))
}

func TestSignaturesUpdate_NoProfiles(t *testing.T) {
	_, err := run(t, "", "signatures", "update", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoProfiles)
}
