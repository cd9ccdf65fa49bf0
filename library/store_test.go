package library

import (
	"testing"

	"github.com/pkg/errors"
)

func TestStoreAddKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	titles := []string{"No Longer Human", "1984", "The Bell Jar"}
	for _, title := range titles {
		s.Add(title, "Someone", 100, false)
	}

	list := s.List()
	if len(list) != len(titles) {
		t.Fatalf("List() len = %d, want %d", len(list), len(titles))
	}
	for i, b := range list {
		if b.Title() != titles[i] {
			t.Errorf("List()[%d] = %q, want %q", i, b.Title(), titles[i])
		}
	}
}

func TestStoreAssignsUniqueIDs(t *testing.T) {
	s := NewStore()
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		b := s.Add("Same", "Same", 1, false)
		if b.ID() == "" {
			t.Fatal("empty id")
		}
		if seen[b.ID()] {
			t.Fatalf("duplicate id %s", b.ID())
		}
		seen[b.ID()] = true
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	a := s.Add("A", "X", 1, false)
	b := s.Add("B", "X", 2, false)
	c := s.Add("C", "X", 3, false)

	removed, err := s.Remove(b.ID())
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != b {
		t.Errorf("Remove returned %v, want %v", removed, b)
	}

	list := s.List()
	if len(list) != 2 || list[0] != a || list[1] != c {
		t.Errorf("List() after remove = %v", list)
	}
	if _, ok := s.Get(b.ID()); ok {
		t.Error("removed book still reachable via Get")
	}

	if _, err := s.Remove(b.ID()); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("second Remove err = %v, want ErrBookNotFound", err)
	}
}

func TestStoreToggleRead(t *testing.T) {
	s := NewStore()
	b := s.Add("Dune", "Frank Herbert", 412, false)

	got, err := s.ToggleRead(b.ID())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Read() {
		t.Error("ToggleRead did not set read")
	}
	s.ToggleRead(b.ID())
	if b.Read() {
		t.Error("second ToggleRead did not clear read")
	}

	if _, err := s.ToggleRead("nope"); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("ToggleRead unknown err = %v", err)
	}
}

func TestListIsSnapshot(t *testing.T) {
	s := NewStore()
	s.Add("A", "X", 1, false)
	list := s.List()
	s.Add("B", "X", 1, false)
	if len(list) != 1 {
		t.Errorf("snapshot grew to %d", len(list))
	}
}

func TestClampPages(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 0},
		{0, 0},
		{176, 176},
		{9999, 9999},
		{10000, 9999},
		{123456, 9999},
	}
	for _, tt := range tests {
		if got := ClampPages(tt.in); got != tt.want {
			t.Errorf("ClampPages(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if b := NewBook("T", "A", 20000, true); b.Pages() != MaxPages {
		t.Errorf("NewBook pages = %d, want %d", b.Pages(), MaxPages)
	}
}
