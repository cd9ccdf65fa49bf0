package util

import "testing"

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"shelf", 5},
		{"\x1b[31mred\x1b[0m", 3},
		{"\x1b[1mbold\x1b[0m and plain", 14},
		{"本棚", 4},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate kept = %q", got)
	}
	if got := Truncate("a longer message", 8); VisibleLen(got) > 8 {
		t.Errorf("Truncate(…, 8) = %q (%d cells)", got, VisibleLen(got))
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate(…, 0) = %q", got)
	}
}
