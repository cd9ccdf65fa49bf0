package session

import (
	"github.com/drake/shelf/library"
)

// MockPresenter implements Presenter for testing.
// Card widths are looked up by title; unknown titles measure as len(title).
type MockPresenter struct {
	Widths map[string]int

	// Captured calls
	Rendered  []library.ID
	Applied   []int
	Refreshed []library.ID
	Detached  []library.ID
	Notices   []string

	// Calls in order, e.g. "render", "apply", "detach".
	Calls []string
}

func NewMockPresenter(widths map[string]int) *MockPresenter {
	return &MockPresenter{Widths: widths}
}

func (m *MockPresenter) Render(b *library.Book) int {
	m.Calls = append(m.Calls, "render")
	m.Rendered = append(m.Rendered, b.ID())
	if w, ok := m.Widths[b.Title()]; ok {
		return w
	}
	return len(b.Title())
}

func (m *MockPresenter) ApplyColumnWidth(width int) {
	m.Calls = append(m.Calls, "apply")
	m.Applied = append(m.Applied, width)
}

func (m *MockPresenter) Refresh(b *library.Book) {
	m.Calls = append(m.Calls, "refresh")
	m.Refreshed = append(m.Refreshed, b.ID())
}

func (m *MockPresenter) Detach(id library.ID) {
	m.Calls = append(m.Calls, "detach")
	m.Detached = append(m.Detached, id)
}

func (m *MockPresenter) Notify(text string) {
	m.Calls = append(m.Calls, "notify")
	m.Notices = append(m.Notices, text)
}

// LastApplied returns the most recent column width pushed to the view.
func (m *MockPresenter) LastApplied() int {
	if len(m.Applied) == 0 {
		return -1
	}
	return m.Applied[len(m.Applied)-1]
}
