// layout-test is a headless testbed for card sizing. It replays a scenario
// against a real session and prints the grid after each step.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/drake/shelf/form"
	"github.com/drake/shelf/library"
	"github.com/drake/shelf/session"
	"github.com/drake/shelf/sizing"
	"github.com/drake/shelf/ui/tui"
	"github.com/drake/shelf/ui/tui/style"
)

// step is one scenario action: add Fields, or remove the book titled Remove.
type step struct {
	Add    *form.Fields
	Remove string
}

func add(title, author, pages string) step {
	return step{Add: &form.Fields{Title: title, Author: author, Pages: pages}}
}

func remove(title string) step {
	return step{Remove: title}
}

func main() {
	scenario := flag.String("scenario", "default", "Sizing scenario (default, starter, ties)")
	width := flag.Int("width", 80, "Screen width in cells")
	height := flag.Int("height", 40, "Screen height in cells")
	minWidth := flag.Int("min-width", 24, "Minimum column width")
	flag.Parse()

	steps, seed, ok := setupScenario(*scenario)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown scenario: %s\n", *scenario)
		fmt.Fprintln(os.Stderr, "Available: default, starter, ties")
		os.Exit(1)
	}

	tracker, err := sizing.NewTracker[library.ID](*minWidth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	view := tui.NewView(style.DefaultStyles())
	view.Grid().SetSize(*width, *height)
	sess := session.New(library.NewStore(), tracker, view, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if seed {
		sess.Seed(session.StarterBooks)
		report(sess, view, "seed starter library")
	}

	for _, st := range steps {
		switch {
		case st.Add != nil:
			if _, err := sess.AddBook(*st.Add); err != nil {
				fmt.Printf("\033[31madd %q rejected: %v\033[0m\n\n", st.Add.Title, err)
				continue
			}
			report(sess, view, "add "+st.Add.Title)
		default:
			b, found := findTitle(sess, st.Remove)
			if !found {
				fmt.Printf("\033[31mremove %q: no such book\033[0m\n\n", st.Remove)
				continue
			}
			if err := sess.RemoveBook(b.ID()); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			report(sess, view, "remove "+st.Remove)
		}
	}
}

func setupScenario(name string) ([]step, bool, bool) {
	switch name {
	case "default":
		// Second widest takes over when the widest goes away.
		return []step{
			add("Emma", "Jane Austen", "474"),
			add("The Unbearable Lightness of Being", "Milan Kundera", "320"),
			add("Middlemarch", "George Eliot", "880"),
			remove("The Unbearable Lightness of Being"),
			remove("Middlemarch"),
			remove("Emma"),
		}, false, true

	case "starter":
		return []step{
			remove("Playing for the Commandant"),
			remove("I'm Glad My Mom Died"),
			add("bad author", "J. D. Salinger", "1"),
			add("A Very Long Title That Widens Every Column", "Anon", "12"),
		}, true, true

	case "ties":
		// Removing one of two equally wide cards keeps the column.
		return []step{
			add("Twelve chars", "Author One", "10"),
			add("Twelve chars", "Author Two", "20"),
			add("Short", "Author Three", "30"),
			remove("Twelve chars"),
			remove("Twelve chars"),
		}, false, true
	}
	return nil, false, false
}

func findTitle(sess *session.Session, title string) (*library.Book, bool) {
	for _, b := range sess.Books() {
		if b.Title() == title {
			return b, true
		}
	}
	return nil, false
}

func report(sess *session.Session, view *tui.View, label string) {
	fmt.Printf("\033[1;36m== %s\033[0m  books=%d column=%d cols=%d\n",
		label, len(sess.Books()), sess.ColumnWidth(), view.Grid().Columns())
	fmt.Println(view.Grid().View())
	fmt.Println()
}
