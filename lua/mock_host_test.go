package lua

import (
	"errors"
	"strconv"
	"sync"
)

type addCall struct {
	Title  string
	Author string
	Pages  string
	Read   bool
}

// MockHost implements Host for testing.
type MockHost struct {
	mu sync.Mutex

	// Captured calls
	AddCalls    []addCall
	RemoveCalls []string
	ToggleCalls []string
	PrintCalls  []string

	// Canned state
	books  []BookInfo
	addErr error
	nextID int
}

func NewMockHost() *MockHost {
	return &MockHost{}
}

func (m *MockHost) AddBook(title, author, pages string, read bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls = append(m.AddCalls, addCall{title, author, pages, read})
	if m.addErr != nil {
		return "", m.addErr
	}
	m.nextID++
	id := "book-" + strconv.Itoa(m.nextID)
	n, _ := strconv.Atoi(pages)
	m.books = append(m.books, BookInfo{ID: id, Title: title, Author: author, Pages: n, Read: read})
	return id, nil
}

func (m *MockHost) RemoveBook(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, id)
	for i, b := range m.books {
		if b.ID == id {
			m.books = append(m.books[:i], m.books[i+1:]...)
			return nil
		}
	}
	return errors.New("book not found")
}

func (m *MockHost) ToggleRead(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToggleCalls = append(m.ToggleCalls, id)
	for i := range m.books {
		if m.books[i].ID == id {
			m.books[i].Read = !m.books[i].Read
			return nil
		}
	}
	return errors.New("book not found")
}

func (m *MockHost) Books() []BookInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]BookInfo, len(m.books))
	copy(out, m.books)
	return out
}

func (m *MockHost) Print(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PrintCalls = append(m.PrintCalls, text)
}
