package domain

import "strings"

// Section is a heading and the content up to the next heading of any level.
// Content before the first heading is a level-0 section with an empty title.
type Section struct {
	Level      int      `json:"level"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	CodeBlocks []string `json:"code_blocks,omitempty"`
}

// Document is a markdown file reduced to its ordered sections.
type Document struct {
	Sections []Section `json:"sections"`
}

// Text returns every title and body joined, for keyword lookups.
func (d *Document) Text() string {
	var b strings.Builder
	for _, s := range d.Sections {
		if s.Title != "" {
			b.WriteString(s.Title)
			b.WriteByte('\n')
		}
		b.WriteString(s.Body)
		b.WriteByte('\n')
	}
	return b.String()
}

// Enclosing folds every section deeper than level into the nearest
// preceding section at that level, returning only the level sections.
// Folded titles become body lines so nothing under a heading is lost.
func (d *Document) Enclosing(level int) []Section {
	var out []Section
	current := -1
	for _, s := range d.Sections {
		switch {
		case s.Level == level:
			out = append(out, Section{
				Level:      s.Level,
				Title:      s.Title,
				Body:       s.Body,
				CodeBlocks: append([]string(nil), s.CodeBlocks...),
			})
			current = len(out) - 1
		case s.Level > level && current >= 0:
			parent := &out[current]
			parent.Body = joinLines(parent.Body, s.Title, s.Body)
			parent.CodeBlocks = append(parent.CodeBlocks, s.CodeBlocks...)
		case s.Level < level:
			current = -1
		}
	}
	return out
}

func joinLines(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
