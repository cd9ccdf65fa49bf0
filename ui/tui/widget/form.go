package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/shelf/form"
	"github.com/drake/shelf/ui/tui/style"
)

// FormAction tells the caller what a key did to the form.
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmit
	FormCancel
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldPages
	fieldRead
	fieldCount
)

var fieldLabels = [...]string{"Title", "Author", "Pages"}

// Form is the modal add-book dialog.
type Form struct {
	inputs  []textinput.Model
	read    bool
	focus   int
	open    bool
	message string
	styles  style.Styles
}

// NewForm creates a closed form.
func NewForm(styles style.Styles) *Form {
	f := &Form{styles: styles}
	for i := range fieldLabels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Width = 32
		ti.CharLimit = 120
		if i == fieldPages {
			ti.CharLimit = 6
			ti.Width = 8
		}
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// Open resets the form and focuses the first field.
func (f *Form) Open() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.read = false
	f.message = ""
	f.open = true
	return f.setFocus(fieldTitle)
}

// Close hides the form.
func (f *Form) Close() {
	f.open = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsOpen returns true if the form is visible.
func (f *Form) IsOpen() bool {
	return f.open
}

// Fields returns the current raw field values.
func (f *Form) Fields() form.Fields {
	return form.Fields{
		Title:  f.inputs[fieldTitle].Value(),
		Author: f.inputs[fieldAuthor].Value(),
		Pages:  f.inputs[fieldPages].Value(),
		Read:   f.read,
	}
}

// SetMessage shows a validation message under the fields.
func (f *Form) SetMessage(msg string) {
	f.message = msg
}

// Message returns the validation message currently shown.
func (f *Form) Message() string {
	return f.message
}

// Update handles a key while the form is open.
func (f *Form) Update(msg tea.KeyMsg) (FormAction, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return FormCancel, nil
	case tea.KeyEnter:
		return FormSubmit, nil
	case tea.KeyTab, tea.KeyDown:
		return FormNone, f.setFocus((f.focus + 1) % fieldCount)
	case tea.KeyShiftTab, tea.KeyUp:
		return FormNone, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
	}

	if f.focus == fieldRead {
		if msg.Type == tea.KeySpace || msg.String() == " " || msg.String() == "x" {
			f.read = !f.read
		}
		return FormNone, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return FormNone, cmd
}

func (f *Form) setFocus(field int) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == field {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// View renders the dialog box.
func (f *Form) View() string {
	var lines []string
	lines = append(lines, f.styles.FormTitle.Render("Add a book"), "")

	for i, label := range fieldLabels {
		lines = append(lines, f.label(i, label), f.inputs[i].View())
	}

	box := "[ ]"
	if f.read {
		box = "[x]"
	}
	lines = append(lines, "", f.label(fieldRead, box+" Read"))

	if f.message != "" {
		lines = append(lines, "", f.styles.FormError.Render(f.message))
	}
	lines = append(lines, "", f.styles.Muted.Render("enter submit · tab next · esc cancel"))

	return f.styles.FormBorder.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (f *Form) label(field int, text string) string {
	if f.focus == field {
		return f.styles.FormFocused.Render(text)
	}
	return f.styles.FormLabel.Render(text)
}

// Overlay centers the dialog in a width x height area.
func (f *Form) Overlay(width, height int) string {
	view := f.View()
	if width <= 0 || height <= 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
