package session

import (
	"github.com/drake/shelf/form"
	"github.com/drake/shelf/library"
	"github.com/drake/shelf/lua"
)

// Compile-time check that luaHost implements lua.Host
var _ lua.Host = (*luaHost)(nil)

// luaHost adapts Session to the script API.
type luaHost struct {
	s *Session
}

// LuaHost returns the lua.Host backed by this session.
func (s *Session) LuaHost() lua.Host {
	return &luaHost{s: s}
}

func (h *luaHost) AddBook(title, author, pages string, read bool) (string, error) {
	b, err := h.s.AddBook(form.Fields{Title: title, Author: author, Pages: pages, Read: read})
	if err != nil {
		return "", err
	}
	return string(b.ID()), nil
}

func (h *luaHost) RemoveBook(id string) error {
	return h.s.RemoveBook(library.ID(id))
}

func (h *luaHost) ToggleRead(id string) error {
	return h.s.ToggleRead(library.ID(id))
}

func (h *luaHost) Books() []lua.BookInfo {
	books := h.s.Books()
	out := make([]lua.BookInfo, len(books))
	for i, b := range books {
		out[i] = lua.BookInfo{
			ID:     string(b.ID()),
			Title:  b.Title(),
			Author: b.Author(),
			Pages:  b.Pages(),
			Read:   b.Read(),
		}
	}
	return out
}

func (h *luaHost) Print(text string) {
	h.s.Notify(text)
}
