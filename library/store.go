package library

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrBookNotFound = errors.New("book not found")

// Store owns the books in insertion order.
// Thread-safe for concurrent access.
type Store struct {
	mu    sync.RWMutex
	books []*Book
	index map[ID]*Book
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index: make(map[ID]*Book),
	}
}

// Add creates a book and appends it to the store.
func (s *Store) Add(title, author string, pages int, read bool) *Book {
	b := NewBook(title, author, pages, read)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, b)
	s.index[b.id] = b
	return b
}

// Remove deletes the book with the given id and returns it.
func (s *Store) Remove(id ID) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrBookNotFound, "remove %s", id)
	}
	delete(s.index, id)

	for i, candidate := range s.books {
		if candidate == b {
			s.books = append(s.books[:i], s.books[i+1:]...)
			break
		}
	}
	return b, nil
}

// Get looks up a book by id.
func (s *Store) Get(id ID) (*Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.index[id]
	return b, ok
}

// ToggleRead flips the read flag of the book with the given id.
func (s *Store) ToggleRead(id ID) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrBookNotFound, "toggle %s", id)
	}
	b.ToggleRead()
	return b, nil
}

// List returns a snapshot of the books in insertion order.
func (s *Store) List() []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the number of books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
