package catalog

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderOptions control how notes are rendered for the terminal.
type RenderOptions struct {
	// Style is auto, dark, light or notty.
	Style    string
	WordWrap int
}

// RenderNotes renders the topic's markdown notes. A topic without notes
// renders as the empty string.
func RenderNotes(t Topic, opts RenderOptions) (string, error) {
	if t.Notes == "" {
		return "", nil
	}

	var rendererOpts []glamour.TermRendererOption
	switch opts.Style {
	case "", "auto":
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	default:
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}
	if opts.WordWrap > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.WordWrap))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", fmt.Errorf("notes renderer: %w", err)
	}
	out, err := renderer.Render(t.Notes)
	if err != nil {
		return "", fmt.Errorf("render notes for %s: %w", t.Name, err)
	}
	return out, nil
}
