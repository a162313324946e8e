package runlock_test

import (
	"testing"

	"github.com/openkraft/docguard/internal/adapters/outbound/runlock"
	"github.com/openkraft/docguard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_Exclusive(t *testing.T) {
	dir := t.TempDir()

	first, err := runlock.Acquire(dir)
	require.NoError(t, err)

	_, err = runlock.Acquire(dir)
	assert.ErrorIs(t, err, domain.ErrLocked)

	require.NoError(t, first.Release())

	again, err := runlock.Acquire(dir)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
