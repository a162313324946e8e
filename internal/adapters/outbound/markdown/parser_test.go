package markdown_test

import (
	"testing"

	"github.com/openkraft/docguard/internal/adapters/outbound/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profiles = "Intro line.\n\n" +
	"# Team Profiles\n\n" +
	"## Ana Torres\n\n" +
	"Tech lead for **platform**.\n\n" +
	"### **Placeholder:** `{{FIRMA_ANA}}`\n\n" +
	"```\n**ANA_TORRES**\nTech Lead\n```\n\n" +
	"- item one\n- item two\n\n" +
	"## Luis\n\n" +
	"    indented code\n"

func TestParser_Sections(t *testing.T) {
	doc := markdown.New().Parse([]byte(profiles))
	require.Len(t, doc.Sections, 5)

	assert.Equal(t, 0, doc.Sections[0].Level)
	assert.Equal(t, "Intro line.", doc.Sections[0].Body)

	assert.Equal(t, 1, doc.Sections[1].Level)
	assert.Equal(t, "Team Profiles", doc.Sections[1].Title)

	ana := doc.Sections[2]
	assert.Equal(t, 2, ana.Level)
	assert.Equal(t, "Ana Torres", ana.Title)
	assert.Equal(t, "Tech lead for **platform**.", ana.Body)

	ph := doc.Sections[3]
	assert.Equal(t, 3, ph.Level)
	assert.Equal(t, "Placeholder: {{FIRMA_ANA}}", ph.Title)
	require.Len(t, ph.CodeBlocks, 1)
	assert.Equal(t, "**ANA_TORRES**\nTech Lead\n", ph.CodeBlocks[0])
	assert.Contains(t, ph.Body, "item one")
	assert.Contains(t, ph.Body, "item two")

	luis := doc.Sections[4]
	require.Len(t, luis.CodeBlocks, 1)
	assert.Equal(t, "indented code\n", luis.CodeBlocks[0])
}

func TestParser_EmptyDocument(t *testing.T) {
	doc := markdown.New().Parse(nil)
	assert.Empty(t, doc.Sections)
}

func TestParser_HeadingOnly(t *testing.T) {
	doc := markdown.New().Parse([]byte("## 🔍 Búsqueda Exhaustiva\n"))
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "🔍 Búsqueda Exhaustiva", doc.Sections[0].Title)
	assert.Empty(t, doc.Sections[0].Body)
}
