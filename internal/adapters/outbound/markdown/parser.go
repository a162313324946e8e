// Package markdown builds the heading-driven section model of a markdown
// document from the goldmark AST.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/openkraft/docguard/internal/domain"
)

// Parser implements domain.DocumentParser.
type Parser struct {
	markdown goldmark.Markdown
}

func New() *Parser {
	return &Parser{markdown: goldmark.New()}
}

// Parse splits source into sections at every heading. Paragraph and HTML
// text is kept raw in the body; fenced and indented code blocks are kept
// both in the body and in CodeBlocks.
func (p *Parser) Parse(source []byte) *domain.Document {
	root := p.markdown.Parser().Parse(text.NewReader(source))

	doc := &domain.Document{}
	current := domain.Section{}
	var body []string
	flush := func() {
		current.Body = strings.Join(body, "\n")
		if current.Level > 0 || current.Body != "" || len(current.CodeBlocks) > 0 {
			doc.Sections = append(doc.Sections, current)
		}
		body = nil
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			flush()
			current = domain.Section{Level: node.Level, Title: strings.TrimSpace(inlineText(node, source))}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			code := linesText(n, source)
			current.CodeBlocks = append(current.CodeBlocks, code)
			body = append(body, code)
			return ast.WalkSkipChildren, nil
		}
		if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
			body = append(body, strings.TrimRight(linesText(n, source), "\n"))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	flush()

	return doc
}

// inlineText concatenates the text of every inline descendant, so emphasis
// and code spans contribute their content without markup.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(inlineText(c, source))
		}
	}
	return buf.String()
}

func linesText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
