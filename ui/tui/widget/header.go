package widget

import (
	"fmt"
	"strings"

	"github.com/drake/shelf/ui/tui/layout"
	"github.com/drake/shelf/ui/tui/style"
	"github.com/drake/shelf/ui/tui/util"
)

// Compile-time check that Header implements layout.Renderer
var _ layout.Renderer = (*Header)(nil)

// Header renders the title bar with the read tally on the right.
type Header struct {
	read, total int
	width       int
	styles      style.Styles
}

// NewHeader creates a new header bar.
func NewHeader(styles style.Styles) *Header {
	return &Header{styles: styles}
}

// SetTally updates the read/total counts.
func (h *Header) SetTally(read, total int) {
	h.read = read
	h.total = total
}

// View implements layout.Renderer.
func (h *Header) View() string {
	left := h.styles.Brand.Render("◆ shelf")
	right := h.styles.Header.Render(fmt.Sprintf("%d of %d read", h.read, h.total))

	pad := h.width - util.VisibleLen(left) - util.VisibleLen(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// SetWidth implements layout.Renderer.
func (h *Header) SetWidth(w int) {
	h.width = w
}

// Height implements layout.Renderer.
func (h *Header) Height() int {
	return 1
}
