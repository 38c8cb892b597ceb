package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown for the terminal.
// When styled is false the markdown is returned unchanged, which keeps
// piped output plain.
func NewRenderer(styled bool) (func(string) (string, error), error) {
	if !styled {
		return func(markdown string) (string, error) {
			return markdown, nil
		}, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
