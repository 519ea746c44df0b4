// Package topics serves the embedded help topics rendered as rich
// markdown in the terminal.
package topics

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/modelshape/modelshape/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

// List returns the available topic names.
func List() []string {
	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Render returns a topic rendered for the terminal. Plain output skips
// markdown styling entirely.
func Render(name string, plain bool) (string, error) {
	content, err := docsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown topic %q (available: %s)",
			name, strings.Join(List(), ", "))
	}
	if plain {
		return string(content), nil
	}
	return renderMarkdown(string(content)), nil
}

// renderMarkdown converts markdown to styled terminal output, falling
// back to the raw text when the renderer can't be built.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
