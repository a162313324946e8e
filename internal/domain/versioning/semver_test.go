package versioning_test

import (
	"testing"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/openkraft/docguard/internal/domain/versioning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBump(t *testing.T) {
	tests := []struct {
		version, change, want string
	}{
		{"1.0.0", "MAJOR", "2.0.0"},
		{"2.1.3", "MINOR", "2.2.0"},
		{"2.1.3", "PATCH", "2.1.4"},
		{"2.1.3", "major", "3.0.0"},
		{"0.9.9", " Patch ", "0.9.10"},
	}
	for _, tt := range tests {
		got, err := versioning.Bump(tt.version, tt.change)
		require.NoError(t, err, "%s+%s", tt.version, tt.change)
		assert.Equal(t, tt.want, got)
	}
}

func TestBump_Invalid(t *testing.T) {
	for _, v := range []string{"", "1.0", "1.0.0.0", "a.b.c", "1.-1.0", "1..0", "v1.0.0", "1.+2.0"} {
		_, err := versioning.Bump(v, "PATCH")
		assert.ErrorIs(t, err, domain.ErrInvalidVersion, v)
	}

	_, err := versioning.Bump("1.0.0", "HOTFIX")
	assert.ErrorIs(t, err, domain.ErrUnknownChange)
}

func TestChange_Labels(t *testing.T) {
	assert.Equal(t, "Minor", versioning.Minor.Label())
	assert.Equal(t, "Breaking changes", versioning.Major.DefaultDescription())
	assert.Equal(t, "Minor fixes", versioning.Patch.DefaultDescription())
}
