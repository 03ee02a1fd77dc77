package docs

import (
	"strings"

	md "github.com/nao1215/markdown"
)

// MarkdownBuilder wraps the markdown package with the blocks the list form needs.
type MarkdownBuilder struct {
	md     *md.Markdown
	buffer *strings.Builder
	blocks int
}

// NewMarkdownBuilder creates a new markdown builder with an internal buffer.
func NewMarkdownBuilder() *MarkdownBuilder {
	buffer := &strings.Builder{}
	return &MarkdownBuilder{
		md:     md.NewMarkdown(buffer),
		buffer: buffer,
	}
}

// separate puts a blank line between consecutive blocks.
func (m *MarkdownBuilder) separate() {
	if m.blocks > 0 {
		m.md.PlainText("")
	}
	m.blocks++
}

// LinkedHeading adds a level 3 header whose text links to url.
func (m *MarkdownBuilder) LinkedHeading(text, url string) *MarkdownBuilder {
	m.separate()
	m.md.H3(md.Link(text, url))
	return m
}

// Paragraph adds a block of plain text.
func (m *MarkdownBuilder) Paragraph(text string) *MarkdownBuilder {
	m.separate()
	m.md.PlainText(text)
	return m
}

// LabeledList adds a bold label line followed by a bullet list.
func (m *MarkdownBuilder) LabeledList(label string, items ...string) *MarkdownBuilder {
	m.separate()
	m.md.PlainText(md.Bold(label))
	m.md.BulletList(items...)
	return m
}

// LabeledLine adds a bold label followed by text on the same line.
func (m *MarkdownBuilder) LabeledLine(label, text string) *MarkdownBuilder {
	m.separate()
	m.md.PlainText(md.Bold(label) + " " + text)
	return m
}

// Build finalizes the markdown and returns it without trailing newlines.
func (m *MarkdownBuilder) Build() (string, error) {
	if err := m.md.Build(); err != nil {
		return "", err
	}
	return strings.TrimRight(m.buffer.String(), "\r\n"), nil
}
