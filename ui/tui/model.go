package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/drake/shelf/form"
	"github.com/drake/shelf/session"
	"github.com/drake/shelf/ui/tui/layout"
	"github.com/drake/shelf/ui/tui/style"
	"github.com/drake/shelf/ui/tui/widget"
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Layout
	engine *layout.Engine
	top    *layout.Dock
	bottom *layout.Dock

	// Widgets
	view   *View
	form   *widget.Form
	help   *widget.HelpBar
	styles style.Styles

	keys     keyMap
	formKeys formKeyMap

	sess     *session.Session
	quitting bool
}

// NewModel creates a model driving sess, which must present through view.
func NewModel(sess *session.Session, view *View, styles style.Styles) Model {
	keys := defaultKeyMap()
	helpBar := widget.NewHelpBar(keys)

	return Model{
		engine:   layout.NewEngine(),
		top:      &layout.Dock{Renderers: []layout.Renderer{view.Header(), widget.NewSeparator(styles)}},
		bottom:   &layout.Dock{Renderers: []layout.Renderer{widget.NewSeparator(styles), view.Status(), helpBar}},
		view:     view,
		form:     widget.NewForm(styles),
		help:     helpBar,
		styles:   styles,
		keys:     keys,
		formKeys: defaultFormKeyMap(),
		sess:     sess,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.engine.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.form.IsOpen() {
			return m.handleFormKey(msg)
		}
		return m.handleGridKey(msg)
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	grid := m.view.Grid()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		grid.Move(0, -1)
	case key.Matches(msg, m.keys.Down):
		grid.Move(0, 1)
	case key.Matches(msg, m.keys.Left):
		grid.Move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		grid.Move(1, 0)

	case key.Matches(msg, m.keys.Add):
		m.help.SetKeys(m.formKeys)
		return m, m.form.Open()

	case key.Matches(msg, m.keys.Toggle):
		if b, ok := grid.Selected(); ok {
			if err := m.sess.ToggleRead(b.ID()); err != nil {
				m.sess.Notify(err.Error())
			}
		}

	case key.Matches(msg, m.keys.Remove):
		if b, ok := grid.Selected(); ok {
			title := b.Title()
			if err := m.sess.RemoveBook(b.ID()); err != nil {
				m.sess.Notify(err.Error())
			} else {
				m.sess.Notify(fmt.Sprintf("Removed %q", title))
			}
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ToggleFull()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	action, cmd := m.form.Update(msg)
	switch action {
	case widget.FormCancel:
		m.closeForm()

	case widget.FormSubmit:
		b, err := m.sess.AddBook(m.form.Fields())
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			m.form.SetMessage(verr.Error())
			return m, nil
		}
		if err != nil {
			m.form.SetMessage(err.Error())
			return m, nil
		}
		m.closeForm()
		m.view.Grid().Select(b.ID())
		m.sess.Notify(fmt.Sprintf("Added %q", b.Title()))
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form.Close()
	m.help.SetKeys(m.keys)
}

// resize lays out the docks and hands the rest of the screen to the grid.
// The help bar can change height, so this runs on every frame.
func (m *Model) resize() int {
	gridHeight := m.engine.Calculate(m.top, m.bottom)
	m.view.Grid().SetSize(m.engine.Width(), gridHeight)
	return gridHeight
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	gridHeight := m.resize()

	var middle string
	if m.form.IsOpen() {
		middle = m.form.Overlay(m.engine.Width(), gridHeight)
	} else {
		middle = lipgloss.NewStyle().Height(gridHeight).Render(m.view.Grid().View())
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.top.View(),
		middle,
		m.bottom.View(),
	))
}
