package layout

import "testing"

type fixedRenderer struct {
	height int
	width  int
	text   string
}

func (f *fixedRenderer) SetWidth(w int) { f.width = w }
func (f *fixedRenderer) Height() int    { return f.height }
func (f *fixedRenderer) View() string   { return f.text }

func TestCalculate(t *testing.T) {
	e := NewEngine()
	e.SetSize(80, 24)

	header := &fixedRenderer{height: 1, text: "header"}
	status := &fixedRenderer{height: 1, text: "status"}
	help := &fixedRenderer{height: 2, text: "help\nmore"}

	top := &Dock{Renderers: []Renderer{header}}
	bottom := &Dock{Renderers: []Renderer{status, help}}

	if got := e.Calculate(top, bottom); got != 20 {
		t.Errorf("grid height = %d, want 20", got)
	}
	if header.width != 80 || help.width != 80 {
		t.Errorf("widths not propagated: %d %d", header.width, help.width)
	}

	e.SetSize(80, 3)
	if got := e.Calculate(top, bottom); got != 1 {
		t.Errorf("cramped grid height = %d, want 1", got)
	}
}

func TestDockViewSkipsHidden(t *testing.T) {
	d := &Dock{Renderers: []Renderer{
		&fixedRenderer{height: 1, text: "a"},
		&fixedRenderer{height: 0, text: "hidden"},
		&fixedRenderer{height: 1, text: "b"},
	}}
	if got := d.View(); got != "a\nb" {
		t.Errorf("View() = %q", got)
	}
	if d.Height() != 2 {
		t.Errorf("Height() = %d", d.Height())
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		avail, column, gap, want int
	}{
		{80, 24, 1, 3}, // 3*24 + 2 = 74
		{74, 24, 1, 3}, // exact fit
		{73, 24, 1, 2},
		{24, 24, 1, 1},
		{10, 24, 1, 1}, // wider than the screen still gets one column
		{100, 0, 1, 1},
		{49, 24, 1, 2},
		{48, 24, 1, 1},
	}
	for _, tt := range tests {
		if got := Columns(tt.avail, tt.column, tt.gap); got != tt.want {
			t.Errorf("Columns(%d, %d, %d) = %d, want %d", tt.avail, tt.column, tt.gap, got, tt.want)
		}
	}
}
