package versioning

import (
	"regexp"
	"strings"
)

// A version stamp is a label, a ':' or '|' separator, a version and an
// optional " - description", as in "**Versión** | 1.2.0 - Draft" or
// "VERSION: 2.0.0". Table cells end the description at the next pipe.
var versionStamp = regexp.MustCompile(
	`(?i)(\*\*versi[oó]n\*\*|\bversi[oó]n)([ \t]*[:|][ \t]*)(\d+\.\d+\.\d+)(?:([ \t]*-[ \t]*)([^\r\n|]*))?`)

var dateStamp = regexp.MustCompile(
	`(?i)(\*\*(?:fecha|date)\*\*|\b(?:fecha|date)\b)([ \t]*[:|][ \t]*)([^\r\n|]*)`)

// Stamp is one version stamp found in a document.
type Stamp struct {
	Label       string
	Separator   string
	Version     string
	Description string
}

// FindStamp returns the first version stamp in content.
func FindStamp(content string) (Stamp, bool) {
	m := versionStamp.FindStringSubmatch(content)
	if m == nil {
		return Stamp{}, false
	}
	return Stamp{
		Label:       m[1],
		Separator:   m[2],
		Version:     m[3],
		Description: strings.TrimSpace(m[5]),
	}, true
}

// HasStamp reports whether content carries a version stamp.
func HasStamp(content string) bool {
	return versionStamp.MatchString(content)
}

// RewriteStamps replaces every version stamp with version and description,
// keeping each stamp's own label and separator. It returns the new content
// and the number of stamps rewritten.
func RewriteStamps(content, version, description string) (string, int) {
	n := 0
	out := versionStamp.ReplaceAllStringFunc(content, func(match string) string {
		m := versionStamp.FindStringSubmatch(match)
		n++
		_, trail := splitTrailing(m[5])
		var b strings.Builder
		b.WriteString(m[1])
		b.WriteString(m[2])
		b.WriteString(version)
		if description != "" {
			b.WriteString(" - ")
			b.WriteString(description)
		}
		b.WriteString(trail)
		return b.String()
	})
	return out, n
}

// RewriteDates replaces the value of every date stamp with date.
func RewriteDates(content, date string) (string, int) {
	n := 0
	out := dateStamp.ReplaceAllStringFunc(content, func(match string) string {
		m := dateStamp.FindStringSubmatch(match)
		n++
		_, trail := splitTrailing(m[3])
		return m[1] + m[2] + date + trail
	})
	return out, n
}

func splitTrailing(s string) (string, string) {
	trimmed := strings.TrimRight(s, " \t")
	return trimmed, s[len(trimmed):]
}
