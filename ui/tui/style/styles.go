package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Brand  lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardAuthor   lipgloss.Style
	CardPages    lipgloss.Style
	Read         lipgloss.Style
	Unread       lipgloss.Style
	Remove       lipgloss.Style

	// Form dialog
	FormBorder  lipgloss.Style
	FormTitle   lipgloss.Style
	FormLabel   lipgloss.Style
	FormFocused lipgloss.Style
	FormError   lipgloss.Style

	// Status
	StatusText  lipgloss.Style
	StatusCount lipgloss.Style

	// Misc
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle(),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Brand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),

		// Cards - selected and normal share the same frame so widths match
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true),
		CardAuthor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Italic(true),
		CardPages: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Read: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		Unread: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow
		Remove: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		FormBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		FormTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Bold(true),
		FormLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		FormFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")),
		FormError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		StatusText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		StatusCount: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}
