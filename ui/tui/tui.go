package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/shelf/session"
	"github.com/drake/shelf/ui/tui/style"
)

// UI runs a session in a full-screen Bubble Tea program.
type UI struct {
	program *tea.Program
	model   Model
}

// New creates a UI for sess. view must be the Presenter sess was built with.
func New(sess *session.Session, view *View, styles style.Styles) *UI {
	return &UI{model: NewModel(sess, view, styles)}
}

// Run starts the TUI and blocks until exit.
func (u *UI) Run() error {
	u.program = tea.NewProgram(
		u.model,
		tea.WithAltScreen(),
	)
	_, err := u.program.Run()
	return err
}

// Quit signals the TUI to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}
