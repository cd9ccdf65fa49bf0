// Package library holds the in-memory book collection.
package library

import "github.com/google/uuid"

// MaxPages is the largest page count a book can carry.
const MaxPages = 9999

// ID identifies a book for its whole lifetime.
type ID string

// Book is a single library record. Only the read flag changes after creation.
type Book struct {
	id     ID
	title  string
	author string
	pages  int
	read   bool
}

// NewBook creates a book with a fresh identifier.
// The page count is clamped to [0, MaxPages].
func NewBook(title, author string, pages int, read bool) *Book {
	return &Book{
		id:     ID(uuid.NewString()),
		title:  title,
		author: author,
		pages:  ClampPages(pages),
		read:   read,
	}
}

func (b *Book) ID() ID         { return b.id }
func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Pages() int     { return b.pages }
func (b *Book) Read() bool     { return b.read }

// ToggleRead flips the read flag and returns the new value.
func (b *Book) ToggleRead() bool {
	b.read = !b.read
	return b.read
}

// ClampPages bounds a page count to [0, MaxPages].
func ClampPages(pages int) int {
	if pages < 0 {
		return 0
	}
	if pages > MaxPages {
		return MaxPages
	}
	return pages
}
