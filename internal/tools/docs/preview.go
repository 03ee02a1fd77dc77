package docs

import (
	"github.com/charmbracelet/glamour"
)

// previewWidth is the wrap width used for terminal previews.
const previewWidth = 100

// Preview renders markdown for display in a terminal. If the renderer
// cannot be created or fails, the raw markdown is returned.
func Preview(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
