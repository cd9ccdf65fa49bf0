package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/shelf/library"
	"github.com/drake/shelf/ui/tui/layout"
	"github.com/drake/shelf/ui/tui/style"
)

// Compile-time check that Grid implements Widget
var _ Widget = (*Grid)(nil)

// cardKey identifies one rendering of a card.
type cardKey struct {
	id       library.ID
	version  int
	read     bool
	selected bool
	width    int
}

// Grid lays cards out in uniform columns and keeps the selection visible.
type Grid struct {
	cards    []*Card
	column   int
	selected int
	offset   int // first visible row
	gap      int
	width    int
	height   int
	styles   style.Styles
	cache    *lru.Cache[cardKey, string]
}

// NewGrid creates an empty grid.
func NewGrid(styles style.Styles) *Grid {
	cache, _ := lru.New[cardKey, string](512)
	return &Grid{
		gap:    1,
		styles: styles,
		cache:  cache,
	}
}

// Add appends a card for the book and returns its intrinsic width.
func (g *Grid) Add(b *library.Book) int {
	c := NewCard(b, g.styles)
	g.cards = append(g.cards, c)
	return c.IntrinsicWidth()
}

// Select moves the cursor to the card for id.
func (g *Grid) Select(id library.ID) {
	if i := g.indexOf(id); i >= 0 {
		g.selected = i
	}
}

// Remove detaches the card for id. The selection stays on the same slot.
func (g *Grid) Remove(id library.ID) {
	i := g.indexOf(id)
	if i < 0 {
		return
	}
	g.cards = append(g.cards[:i], g.cards[i+1:]...)
	if g.selected >= len(g.cards) {
		g.selected = max(0, len(g.cards)-1)
	}
}

// Refresh marks the card for id as changed so it is redrawn.
func (g *Grid) Refresh(id library.ID) {
	if i := g.indexOf(id); i >= 0 {
		g.cards[i].version++
	}
}

// SetColumnWidth sets the width of every column.
func (g *Grid) SetColumnWidth(w int) {
	g.column = w
}

// ColumnWidth returns the width applied to every column.
func (g *Grid) ColumnWidth() int {
	return g.column
}

// Len returns the number of cards.
func (g *Grid) Len() int {
	return len(g.cards)
}

// ReadCount returns how many displayed books are marked read.
func (g *Grid) ReadCount() int {
	n := 0
	for _, c := range g.cards {
		if c.book.Read() {
			n++
		}
	}
	return n
}

// Selected returns the book under the cursor.
func (g *Grid) Selected() (*library.Book, bool) {
	if len(g.cards) == 0 {
		return nil, false
	}
	return g.cards[g.selected].book, true
}

// SelectedIndex returns the cursor position.
func (g *Grid) SelectedIndex() int {
	return g.selected
}

// Columns returns how many cards fit in a row at the current size.
func (g *Grid) Columns() int {
	return layout.Columns(g.width, g.cellWidth(), g.gap)
}

// Move shifts the selection by dx cards and dy rows, clamped to the grid.
func (g *Grid) Move(dx, dy int) {
	if len(g.cards) == 0 {
		return
	}
	cols := g.Columns()
	last := len(g.cards) - 1
	next := g.selected + dx + dy*cols

	switch {
	case next >= 0 && next <= last:
	case dy > 0 && g.selected/cols < last/cols:
		// Moving down into a short last row lands on its final card.
		next = last
	case dy != 0:
		return
	default:
		next = min(max(next, 0), last)
	}
	g.selected = next
}

// SetSize implements Widget.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// PreferredHeight implements Widget.
func (g *Grid) PreferredHeight() int {
	return g.height
}

// View implements Widget.
func (g *Grid) View() string {
	if len(g.cards) == 0 {
		empty := g.styles.Muted.Render("No books yet. Press a to add one.")
		return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center, empty)
	}

	rows := g.renderRows()
	g.adjustOffset(rows)

	var lines []string
	for _, row := range rows[g.offset:] {
		lines = append(lines, strings.Split(row, "\n")...)
		if g.height > 0 && len(lines) >= g.height {
			break
		}
	}
	if g.height > 0 && len(lines) > g.height {
		lines = lines[:g.height]
	}
	return strings.Join(lines, "\n")
}

// cellWidth is the column width capped to what the screen can show.
func (g *Grid) cellWidth() int {
	if g.width > 0 && g.column > g.width {
		return g.width
	}
	return g.column
}

func (g *Grid) renderRows() []string {
	cols := g.Columns()
	width := g.cellWidth()
	spacer := strings.Repeat(" ", g.gap)

	var rows []string
	for start := 0; start < len(g.cards); start += cols {
		end := min(start+cols, len(g.cards))
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, spacer)
			}
			parts = append(parts, g.renderCard(i, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return rows
}

func (g *Grid) renderCard(i, width int) string {
	c := g.cards[i]
	key := cardKey{
		id:       c.book.ID(),
		version:  c.version,
		read:     c.book.Read(),
		selected: i == g.selected,
		width:    width,
	}
	if s, ok := g.cache.Get(key); ok {
		return s
	}
	s := c.Render(width, key.selected)
	g.cache.Add(key, s)
	return s
}

// adjustOffset scrolls so the selected row is fully visible.
func (g *Grid) adjustOffset(rows []string) {
	selRow := g.selected / g.Columns()
	if g.offset > selRow {
		g.offset = selRow
	}
	if g.offset >= len(rows) {
		g.offset = max(0, len(rows)-1)
	}
	if g.height <= 0 {
		return
	}
	for g.offset < selRow {
		used := 0
		for _, row := range rows[g.offset : selRow+1] {
			used += lipgloss.Height(row)
		}
		if used <= g.height {
			break
		}
		g.offset++
	}
}

func (g *Grid) indexOf(id library.ID) int {
	for i, c := range g.cards {
		if c.book.ID() == id {
			return i
		}
	}
	return -1
}
