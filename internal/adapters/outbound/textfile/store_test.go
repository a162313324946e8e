package textfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/docguard/internal/adapters/outbound/textfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	s, err := textfile.Decode([]byte("\xEF\xBB\xBFVersión"))
	require.NoError(t, err)
	assert.Equal(t, "Versión", s)

	// "Versión" encoded as Windows-1252.
	s, err = textfile.Decode([]byte("Versi\xF3n \x80"))
	require.NoError(t, err)
	assert.Equal(t, "Versión €", s)
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NOTES.md")
	require.NoError(t, os.WriteFile(path, []byte("Fecha: hoy\xE9"), 0600))

	store := textfile.New()
	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Fecha: hoyé", got)

	require.NoError(t, store.Write(path, got+"\n"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fecha: hoy\xC3\xA9\n", string(raw))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_ReadMissing(t *testing.T) {
	_, err := textfile.New().Read(filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
