package layout

import "strings"

// Renderer is a fixed-height bar stacked above or below the card grid.
type Renderer interface {
	SetWidth(w int)
	Height() int
	View() string
}

// Dock represents renderers in a dock (top or bottom).
type Dock struct {
	Renderers []Renderer
}

// Height returns the total height of all renderers in the dock.
func (d *Dock) Height() int {
	h := 0
	for _, r := range d.Renderers {
		h += r.Height()
	}
	return h
}

// SetWidth sets the width on all renderers in the dock.
func (d *Dock) SetWidth(w int) {
	for _, r := range d.Renderers {
		r.SetWidth(w)
	}
}

// View returns the rendered view of all visible renderers concatenated.
func (d *Dock) View() string {
	var parts []string
	for _, r := range d.Renderers {
		if r.Height() > 0 {
			parts = append(parts, r.View())
		}
	}
	return strings.Join(parts, "\n")
}

// Engine calculates layout for top dock, card grid, and bottom dock.
type Engine struct {
	width  int
	height int
}

// NewEngine creates a new layout engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetSize sets the total available size.
func (e *Engine) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// Width returns the current width.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the current height.
func (e *Engine) Height() int {
	return e.height
}

// Calculate computes layout given top and bottom docks.
// Sets width on all renderers and returns the grid height.
func (e *Engine) Calculate(top, bottom *Dock) int {
	top.SetWidth(e.width)
	bottom.SetWidth(e.width)

	gridHeight := e.height - top.Height() - bottom.Height()
	if gridHeight < 1 {
		gridHeight = 1
	}

	return gridHeight
}

// Columns returns how many columns of the given width fit in avail cells
// with gap cells between neighbours. Always at least one.
func Columns(avail, column, gap int) int {
	if column <= 0 || avail <= column {
		return 1
	}
	n := (avail + gap) / (column + gap)
	if n < 1 {
		return 1
	}
	return n
}
