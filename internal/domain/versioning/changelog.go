package versioning

import (
	"fmt"
	"strings"
	"time"
)

const unreleasedHeading = "## [Unreleased]"

// DefaultChangelog seeds a changelog file that does not exist yet.
const DefaultChangelog = `# Changelog

## [Unreleased]
### Added

### Changed

### Fixed

`

// Entry is one document release recorded in the changelog.
type Entry struct {
	Version     string
	Change      Change
	Description string
	File        string
	Author      string
	At          time.Time
}

// Render formats the entry as a changelog release block.
func (e Entry) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## [%s] - %s\n\n", e.Version, e.At.Format(time.DateTime))
	fmt.Fprintf(&b, "### %s\n", e.Change.Label())
	fmt.Fprintf(&b, "- %s\n\n", e.Description)
	fmt.Fprintf(&b, "**File**: %s\n", e.File)
	fmt.Fprintf(&b, "**Owner**: %s\n\n", e.Author)
	return b.String()
}

// InsertEntries places entries right after the Unreleased section, or
// before the first release heading when there is none, or at the end.
func InsertEntries(changelog string, entries []Entry) string {
	if len(entries) == 0 {
		return changelog
	}
	var block strings.Builder
	for _, e := range entries {
		block.WriteString(e.Render())
	}

	pos := -1
	if u := strings.Index(changelog, unreleasedHeading); u >= 0 {
		from := u + len(unreleasedHeading)
		if next := strings.Index(changelog[from:], "\n## ["); next >= 0 {
			pos = from + next + 1
		} else {
			pos = len(changelog)
		}
	} else if strings.HasPrefix(changelog, "## [") {
		pos = 0
	} else if first := strings.Index(changelog, "\n## ["); first >= 0 {
		pos = first + 1
	}

	if pos < 0 || pos == len(changelog) {
		if changelog != "" && !strings.HasSuffix(changelog, "\n\n") {
			if strings.HasSuffix(changelog, "\n") {
				changelog += "\n"
			} else {
				changelog += "\n\n"
			}
		}
		return changelog + block.String()
	}
	return changelog[:pos] + block.String() + changelog[pos:]
}
