// Package versioning bumps semantic versions and rewrites the version and
// date stamps that markdown documents carry in their headers and footers.
package versioning

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
)

// Change is the kind of edit being released.
type Change string

const (
	Major Change = "MAJOR"
	Minor Change = "MINOR"
	Patch Change = "PATCH"
)

// ParseChange accepts MAJOR, MINOR or PATCH in any case.
func ParseChange(s string) (Change, error) {
	switch c := Change(strings.ToUpper(strings.TrimSpace(s))); c {
	case Major, Minor, Patch:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q (want MAJOR, MINOR or PATCH)", domain.ErrUnknownChange, s)
}

// DefaultDescription is used when neither the caller nor the document
// provides one.
func (c Change) DefaultDescription() string {
	switch c {
	case Major:
		return "Breaking changes"
	case Minor:
		return "New features"
	case Patch:
		return "Minor fixes"
	}
	return "Update"
}

// Label is the changelog subheading for the change, e.g. "Minor".
func (c Change) Label() string {
	s := strings.ToLower(string(c))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Version is a MAJOR.MINOR.PATCH triple.
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses "1.2.3". Pre-release and build suffixes are rejected.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", domain.ErrInvalidVersion, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p == "" || p[0] == '+' {
			return Version{}, fmt.Errorf("%w: %q", domain.ErrInvalidVersion, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Next returns the version after applying change.
func (v Version) Next(c Change) Version {
	switch c {
	case Major:
		return Version{Major: v.Major + 1}
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case Patch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
	return v
}

// Bump parses version and change and returns the next version string.
func Bump(version, change string) (string, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return "", err
	}
	c, err := ParseChange(change)
	if err != nil {
		return "", err
	}
	return v.Next(c).String(), nil
}
