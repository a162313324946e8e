// Package signature resolves author signature placeholders such as
// {{FIRMA_LEAD}} from a team profiles document and substitutes them in text.
package signature

import (
	"regexp"
	"strings"

	"github.com/openkraft/docguard/internal/domain"
)

var placeholder = regexp.MustCompile(`\{\{(?:FIRMA|SIGNATURE)_[^{}\s]+\}\}`)

// Profile binds a placeholder to the signature block that replaces it.
type Profile struct {
	Name        string
	Placeholder string
	Signature   string
}

// ExtractProfiles reads every H2 section of the profiles document. A
// section declares a profile when its text contains a placeholder; the
// first fenced code block of the section is the signature. Sections
// missing either are skipped, and the first definition of a placeholder
// wins.
func ExtractProfiles(doc *domain.Document) []Profile {
	var profiles []Profile
	seen := make(map[string]bool)
	for _, s := range doc.Enclosing(2) {
		ph := placeholder.FindString(s.Title + "\n" + s.Body)
		if ph == "" || seen[ph] || len(s.CodeBlocks) == 0 {
			continue
		}
		sig := strings.TrimSpace(s.CodeBlocks[0])
		if sig == "" {
			continue
		}
		seen[ph] = true
		profiles = append(profiles, Profile{Name: s.Title, Placeholder: ph, Signature: sig})
	}
	return profiles
}

// Replace substitutes every known placeholder in content. Counts are taken
// from the original content, so they are the same whether or not the
// result is written back.
func Replace(content string, profiles []Profile) (string, map[string]int) {
	counts := make(map[string]int)
	pairs := make([]string, 0, len(profiles)*2)
	for _, p := range profiles {
		if n := strings.Count(content, p.Placeholder); n > 0 {
			counts[p.Placeholder] = n
			pairs = append(pairs, p.Placeholder, p.Signature)
		}
	}
	if len(pairs) == 0 {
		return content, counts
	}
	return strings.NewReplacer(pairs...).Replace(content), counts
}
