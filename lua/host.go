package lua

// BookInfo is the script-facing view of a book.
// Session converts library books to this (decoupling lua from library).
type BookInfo struct {
	ID     string
	Title  string
	Author string
	Pages  int
	Read   bool
}

// Host provides the bridge between Engine and the rest of the system.
// This abstraction keeps Engine testable without a UI.
type Host interface {
	// AddBook submits raw form fields; validation applies as for the form.
	AddBook(title, author, pages string, read bool) (string, error)
	RemoveBook(id string) error
	ToggleRead(id string) error
	Books() []BookInfo

	// Print shows a message on the status line.
	Print(text string)
}
