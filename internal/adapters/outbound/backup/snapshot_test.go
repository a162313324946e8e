package backup_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openkraft/docguard/internal/adapters/outbound/backup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CopiesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"x"}`), 0600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "app.yaml"), []byte("a: 1"), 0644))
	old := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "package.json"), old, old))

	at := time.Date(2026, 10, 14, 9, 5, 7, 0, time.UTC)
	rel, copied, err := backup.New().Snapshot(dir, []string{"package.json", "README.md", "config/app.yaml"}, at)
	require.NoError(t, err)

	assert.Equal(t, "backups/naming_fix_20261014_090507", rel)
	assert.Equal(t, []string{"package.json", "config/app.yaml"}, copied)

	dest := filepath.Join(dir, filepath.FromSlash(rel))
	data, err := os.ReadFile(filepath.Join(dest, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(data))

	info, err := os.Stat(filepath.Join(dest, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(old))

	_, err = os.Stat(filepath.Join(dest, "config", "app.yaml"))
	assert.NoError(t, err)
}

func TestSnapshot_DirectoryEntryIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "README.md"), 0755))

	_, copied, err := backup.New().Snapshot(dir, []string{"README.md"}, time.Now())
	assert.Error(t, err)
	assert.Empty(t, copied)
}
