package widget

import (
	"fmt"
	"strings"

	"github.com/drake/shelf/ui/tui/layout"
	"github.com/drake/shelf/ui/tui/style"
	"github.com/drake/shelf/ui/tui/util"
)

// Compile-time check that Status implements layout.Renderer
var _ layout.Renderer = (*Status)(nil)

// Status displays the last message on the left and grid stats on the right.
type Status struct {
	message string
	books   int
	column  int
	width   int
	styles  style.Styles
}

// NewStatus creates a new status widget.
func NewStatus(styles style.Styles) *Status {
	return &Status{styles: styles}
}

// View implements layout.Renderer.
func (s *Status) View() string {
	right := s.styles.StatusCount.Render(fmt.Sprintf("%d books · column %d", s.books, s.column))
	rightLen := util.VisibleLen(right)

	left := util.Truncate(s.message, s.width-rightLen-2)
	left = s.styles.StatusText.Render(left)

	padding := s.width - util.VisibleLen(left) - rightLen
	if padding < 1 {
		padding = 1
	}

	return left + strings.Repeat(" ", padding) + right
}

// SetWidth implements layout.Renderer.
func (s *Status) SetWidth(w int) {
	s.width = w
}

// Height implements layout.Renderer.
func (s *Status) Height() int {
	return 1
}

// SetMessage replaces the status message.
func (s *Status) SetMessage(text string) {
	s.message = text
}

// Message returns the current status message.
func (s *Status) Message() string {
	return s.message
}

// SetCounts updates the book count and column width indicator.
func (s *Status) SetCounts(books, column int) {
	s.books = books
	s.column = column
}
