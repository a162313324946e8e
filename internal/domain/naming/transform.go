package naming

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TransformKind is one of the closed set of rename strategies.
type TransformKind string

const (
	UpperSnake     TransformKind = "upper_snake"
	LowerSnake     TransformKind = "lower_snake"
	Pascal         TransformKind = "pascal"
	PrefixedPascal TransformKind = "prefixed_pascal"
	SuffixedPascal TransformKind = "suffixed_pascal"
)

// Transform rewrites a filename stem. Affix is the prefix for
// PrefixedPascal and the suffix for SuffixedPascal.
type Transform struct {
	Kind  TransformKind `json:"kind"`
	Affix string        `json:"affix,omitempty"`
}

func (t Transform) String() string {
	if t.Affix == "" {
		return string(t.Kind)
	}
	return string(t.Kind) + ":" + t.Affix
}

// Apply re-cases the words of a stem. An empty result means the stem had
// nothing left to build a name from.
func (t Transform) Apply(stem string) string {
	words := SplitWords(stem)
	switch t.Kind {
	case UpperSnake:
		return joinMapped(words, "_", strings.ToUpper)
	case LowerSnake:
		return joinMapped(words, "_", strings.ToLower)
	case Pascal:
		return joinMapped(words, "", title)
	case PrefixedPascal:
		for len(words) > 0 && strings.EqualFold(words[0], t.Affix) {
			words = words[1:]
		}
		if len(words) == 0 {
			return ""
		}
		return t.Affix + joinMapped(words, "", title)
	case SuffixedPascal:
		for len(words) > 0 && strings.EqualFold(words[len(words)-1], t.Affix) {
			words = words[:len(words)-1]
		}
		if len(words) == 0 {
			return ""
		}
		return joinMapped(words, "", title) + t.Affix
	}
	return ""
}

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SplitWords breaks a stem into words on separators and camel humps.
// Accents are folded away first; runs of digits stay attached to the
// word before them ("guide-v2" gives guide, v2).
func SplitWords(stem string) []string {
	folded, _, err := transform.String(asciiFold, stem)
	if err != nil {
		folded = stem
	}

	var words []string
	parts := strings.FieldsFunc(folded, func(r rune) bool { return !isASCIIAlnum(r) })
	for _, part := range parts {
		for _, w := range camelcase.Split(part) {
			if isDigits(w) && len(words) > 0 {
				words[len(words)-1] += w
				continue
			}
			words = append(words, w)
		}
	}
	return words
}

func joinMapped(words []string, sep string, f func(string) string) string {
	mapped := make([]string, len(words))
	for i, w := range words {
		mapped[i] = f(w)
	}
	return strings.Join(mapped, sep)
}

func title(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
