// Package checklist scores a markdown document against a list of required
// section headings and keywords.
package checklist

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/openkraft/docguard/internal/domain"
)

// fold drops accents so "Busqueda" finds "Búsqueda".
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s, folds accents and drops emphasis markers,
// emoji and other symbols, collapsing whitespace.
func Normalize(s string) string {
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r == '*' || r == '_' || r == '`' || r == '~':
			continue
		case unicode.IsSpace(r):
			space = true
			continue
		case unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r) || unicode.IsControl(r):
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// Evaluate checks doc against spec. file only labels the result.
func Evaluate(file string, doc *domain.Document, spec domain.ChecklistSpec) domain.ChecklistResult {
	res := domain.ChecklistResult{
		File:            file,
		Checklist:       spec.Name,
		FoundSections:   []string{},
		MissingSections: []string{},
		FoundKeywords:   []string{},
		MissingKeywords: []string{},
		MinScore:        spec.MinScore,
	}

	titles := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		if s.Title != "" {
			titles = append(titles, Normalize(s.Title))
		}
	}
	for _, want := range spec.Sections {
		if containsAny(titles, Normalize(want)) {
			res.FoundSections = append(res.FoundSections, want)
		} else {
			res.MissingSections = append(res.MissingSections, want)
		}
	}

	text := Normalize(doc.Text())
	for _, kw := range spec.Keywords {
		if strings.Contains(text, Normalize(kw)) {
			res.FoundKeywords = append(res.FoundKeywords, kw)
		} else {
			res.MissingKeywords = append(res.MissingKeywords, kw)
		}
	}

	found := len(res.FoundSections) + len(res.FoundKeywords)
	total := len(spec.Sections) + len(spec.Keywords)
	res.Score = 100
	if total > 0 {
		res.Score = math.Round(float64(found)/float64(total)*100*100) / 100
	}
	res.Passed = len(res.MissingSections) == 0 && res.Score >= float64(spec.MinScore)
	return res
}

func containsAny(titles []string, want string) bool {
	for _, t := range titles {
		if strings.Contains(t, want) {
			return true
		}
	}
	return false
}
