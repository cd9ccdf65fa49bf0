// Package session sequences the library, the width tracker and the view
// for each user action.
package session

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/drake/shelf/form"
	"github.com/drake/shelf/library"
	"github.com/drake/shelf/sizing"
)

// Presenter is the display side of the session.
type Presenter interface {
	// Render displays a card for the book and returns its intrinsic width.
	Render(b *library.Book) int
	// ApplyColumnWidth sets the width shared by every grid column.
	ApplyColumnWidth(width int)
	// Refresh redraws the read indicator of a displayed book.
	Refresh(b *library.Book)
	// Detach removes a book's card from display.
	Detach(id library.ID)
	// Notify shows a one-line message to the user.
	Notify(text string)
}

// Session owns no state of its own; it drives the store, tracker and view
// in the order each action requires. All methods are expected to run on
// the UI loop.
type Session struct {
	store   *library.Store
	tracker *sizing.Tracker[library.ID]
	view    Presenter
	logger  *slog.Logger
}

// New creates a session over the given components.
func New(store *library.Store, tracker *sizing.Tracker[library.ID], view Presenter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		store:   store,
		tracker: tracker,
		view:    view,
		logger:  logger,
	}
	view.ApplyColumnWidth(tracker.ColumnWidth())
	return s
}

// AddBook validates the form fields, stores the book and displays it.
// A *form.ValidationError leaves everything untouched.
func (s *Session) AddBook(f form.Fields) (*library.Book, error) {
	entry, err := form.Validate(f)
	if err != nil {
		s.logger.Debug("book rejected", slog.String("reason", form.KindOf(err).String()))
		return nil, err
	}
	return s.addEntry(entry), nil
}

// Seed adds pre-validated entries, as the starter library does.
func (s *Session) Seed(entries []form.Entry) {
	for _, e := range entries {
		s.addEntry(e)
	}
}

func (s *Session) addEntry(e form.Entry) *library.Book {
	b := s.store.Add(e.Title, e.Author, e.Pages, e.Read)
	s.display(b)
	s.logger.Debug("book added",
		slog.String("id", string(b.ID())),
		slog.String("title", b.Title()),
		slog.Int("pages", b.Pages()),
	)
	return b
}

// display renders the card, records its width and widens the grid if needed.
func (s *Session) display(b *library.Book) {
	width := s.view.Render(b)

	column, changed, err := s.tracker.Record(b.ID(), width)
	if err != nil {
		invariant(err, "record width")
	}
	if changed {
		s.applyColumn(column)
	}
}

// RemoveBook removes the book from the store, releases its width and
// detaches its card.
func (s *Session) RemoveBook(id library.ID) error {
	b, err := s.store.Remove(id)
	if err != nil {
		return err
	}

	column, changed, err := s.tracker.Remove(id)
	if err != nil {
		invariant(err, "remove width")
	}
	if changed {
		s.applyColumn(column)
	}

	s.view.Detach(id)
	s.logger.Debug("book removed", slog.String("id", string(id)), slog.String("title", b.Title()))
	return nil
}

// ToggleRead flips a book's read flag and refreshes its indicator.
func (s *Session) ToggleRead(id library.ID) error {
	b, err := s.store.ToggleRead(id)
	if err != nil {
		return err
	}
	s.view.Refresh(b)
	s.logger.Debug("read toggled", slog.String("id", string(id)), slog.Bool("read", b.Read()))
	return nil
}

// Notify forwards a message to the view.
func (s *Session) Notify(text string) {
	s.view.Notify(text)
}

// Books returns the books in insertion order.
func (s *Session) Books() []*library.Book {
	return s.store.List()
}

// Book looks up a single book.
func (s *Session) Book(id library.ID) (*library.Book, bool) {
	return s.store.Get(id)
}

// ColumnWidth returns the tracker's current column width.
func (s *Session) ColumnWidth() int {
	return s.tracker.ColumnWidth()
}

func (s *Session) applyColumn(width int) {
	s.view.ApplyColumnWidth(width)
	s.logger.Debug("column width changed", slog.Int("width", width))
}

// invariant aborts on a store/tracker mismatch. These are never user errors.
func invariant(err error, op string) {
	panic(errors.Wrap(err, "session: "+op))
}
