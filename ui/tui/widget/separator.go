package widget

import (
	"strings"

	"github.com/drake/shelf/ui/tui/layout"
	"github.com/drake/shelf/ui/tui/style"
)

// Compile-time check that Separator implements layout.Renderer
var _ layout.Renderer = (*Separator)(nil)

// Separator is a dim rule between the grid and a dock.
type Separator struct {
	width  int
	styles style.Styles
}

// NewSeparator creates a new separator.
func NewSeparator(styles style.Styles) *Separator {
	return &Separator{styles: styles}
}

// View implements layout.Renderer.
func (s *Separator) View() string {
	return s.styles.Muted.Render(strings.Repeat("─", s.width))
}

// SetWidth implements layout.Renderer.
func (s *Separator) SetWidth(w int) {
	s.width = w
}

// Height implements layout.Renderer.
func (s *Separator) Height() int {
	return 1
}
