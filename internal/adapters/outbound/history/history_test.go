package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/docguard/internal/adapters/outbound/history"
	"github.com/openkraft/docguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.HistoryEntry{
		Timestamp:      "2026-10-14T09:30:00Z",
		CommitHash:     "abc1234",
		TotalFiles:     10,
		Violations:     2,
		ComplianceRate: 80,
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 80.0, entries[0].ComplianceRate)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t1", ComplianceRate: 47}))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t2", ComplianceRate: 62}))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{Timestamp: "t3", ComplianceRate: 85}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 47.0, entries[0].ComplianceRate)

	last, ok := history.Last(entries)
	require.True(t, ok)
	assert.Equal(t, "t3", last.Timestamp)
}

func TestHistory_KeepsMostRecent(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	for i := 0; i < history.MaxEntries+5; i++ {
		require.NoError(t, h.Save(dir, domain.HistoryEntry{TotalFiles: i}))
	}

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, history.MaxEntries)
	assert.Equal(t, 5, entries[0].TotalFiles)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, ok := history.Last(entries)
	assert.False(t, ok)
}

func TestHistory_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, filepath.FromSlash(history.File))
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("{not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}
