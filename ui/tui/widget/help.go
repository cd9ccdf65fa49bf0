package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/drake/shelf/ui/tui/layout"
)

// Compile-time check that HelpBar implements layout.Renderer
var _ layout.Renderer = (*HelpBar)(nil)

// HelpBar renders key binding hints from a help.KeyMap.
type HelpBar struct {
	model help.Model
	keys  help.KeyMap
}

// NewHelpBar creates a help bar for keys.
func NewHelpBar(keys help.KeyMap) *HelpBar {
	return &HelpBar{
		model: help.New(),
		keys:  keys,
	}
}

// SetKeys swaps the key map, e.g. while the form is open.
func (h *HelpBar) SetKeys(keys help.KeyMap) {
	h.keys = keys
}

// ToggleFull switches between short and full help.
func (h *HelpBar) ToggleFull() {
	h.model.ShowAll = !h.model.ShowAll
}

// ShowingFull reports whether full help is visible.
func (h *HelpBar) ShowingFull() bool {
	return h.model.ShowAll
}

// View implements layout.Renderer.
func (h *HelpBar) View() string {
	return h.model.View(h.keys)
}

// SetWidth implements layout.Renderer.
func (h *HelpBar) SetWidth(w int) {
	h.model.Width = w
}

// Height implements layout.Renderer.
func (h *HelpBar) Height() int {
	return strings.Count(h.View(), "\n") + 1
}
