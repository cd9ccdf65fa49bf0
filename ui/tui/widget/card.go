package widget

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/shelf/library"
	"github.com/drake/shelf/ui/tui/style"
)

const (
	readLabel   = "● read"
	unreadLabel = "○ unread"
	removeLabel = "✕"
)

// Card renders a single book.
type Card struct {
	book    *library.Book
	styles  style.Styles
	version int // bumped on Refresh; part of the render cache key
}

// NewCard creates a card for the book.
func NewCard(b *library.Book, styles style.Styles) *Card {
	return &Card{book: b, styles: styles}
}

// Book returns the card's book.
func (c *Card) Book() *library.Book {
	return c.book
}

// IntrinsicWidth is the card's natural width, border included, before any
// column width is applied.
func (c *Card) IntrinsicWidth() int {
	return lipgloss.Width(c.styles.Card.Render(c.body()))
}

// Render draws the card at exactly width cells, border included.
func (c *Card) Render(width int, selected bool) string {
	frame := c.styles.Card
	if selected {
		frame = c.styles.CardSelected
	}
	inner := width - frame.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return frame.Width(inner).Render(c.body())
}

func (c *Card) body() string {
	b := c.book
	return lipgloss.JoinVertical(lipgloss.Left,
		c.styles.CardTitle.Render(b.Title()),
		c.styles.CardAuthor.Render(b.Author()),
		c.styles.CardPages.Render(strconv.Itoa(b.Pages())+" pages"),
		c.footer(),
	)
}

// footer holds the read indicator and the remove marker. The indicator is
// padded to a fixed width so toggling never changes the card's width.
func (c *Card) footer() string {
	indicator := c.styles.Unread.Render(unreadLabel)
	if c.book.Read() {
		indicator = c.styles.Read.Render(readLabel)
	}
	slot := max(lipgloss.Width(readLabel), lipgloss.Width(unreadLabel))
	indicator = lipgloss.NewStyle().Width(slot).Render(indicator)
	return indicator + "  " + c.styles.Remove.Render(removeLabel)
}
