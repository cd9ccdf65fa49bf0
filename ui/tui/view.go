package tui

import (
	"github.com/drake/shelf/library"
	"github.com/drake/shelf/session"
	"github.com/drake/shelf/ui/tui/style"
	"github.com/drake/shelf/ui/tui/widget"
)

// Compile-time check that View implements session.Presenter
var _ session.Presenter = (*View)(nil)

// View is the display side of a session: the card grid plus the bars
// that summarize it.
type View struct {
	grid   *widget.Grid
	header *widget.Header
	status *widget.Status
}

// NewView creates an empty view.
func NewView(styles style.Styles) *View {
	return &View{
		grid:   widget.NewGrid(styles),
		header: widget.NewHeader(styles),
		status: widget.NewStatus(styles),
	}
}

// Grid returns the card grid.
func (v *View) Grid() *widget.Grid { return v.grid }

// Header returns the title bar.
func (v *View) Header() *widget.Header { return v.header }

// Status returns the status bar.
func (v *View) Status() *widget.Status { return v.status }

// Render implements session.Presenter.
func (v *View) Render(b *library.Book) int {
	w := v.grid.Add(b)
	v.sync()
	return w
}

// ApplyColumnWidth implements session.Presenter.
func (v *View) ApplyColumnWidth(width int) {
	v.grid.SetColumnWidth(width)
	v.sync()
}

// Refresh implements session.Presenter.
func (v *View) Refresh(b *library.Book) {
	v.grid.Refresh(b.ID())
	v.sync()
}

// Detach implements session.Presenter.
func (v *View) Detach(id library.ID) {
	v.grid.Remove(id)
	v.sync()
}

// Notify implements session.Presenter.
func (v *View) Notify(text string) {
	v.status.SetMessage(text)
}

func (v *View) sync() {
	v.status.SetCounts(v.grid.Len(), v.grid.ColumnWidth())
	v.header.SetTally(v.grid.ReadCount(), v.grid.Len())
}
