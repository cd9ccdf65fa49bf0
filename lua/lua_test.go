package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setupTest creates a test environment and returns a cleanup function
func setupTest(t *testing.T) (*Engine, *MockHost, func()) {
	t.Helper()

	host := NewMockHost()
	engine := NewEngine(host)
	if err := engine.Init(); err != nil {
		t.Fatal("Failed to initialize engine:", err)
	}

	cleanup := func() {
		engine.Close()
	}
	return engine, host, cleanup
}

func TestAddPassesFieldsAsText(t *testing.T) {
	engine, host, cleanup := setupTest(t)
	defer cleanup()

	err := engine.DoString("test", `
		local id = shelf.add{title = "dune", author = "frank herbert", pages = 412, read = true}
		assert(id == "book-1", "unexpected id " .. tostring(id))
		shelf.add{title = "Emma", author = "Jane Austen", pages = "474"}
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}

	if len(host.AddCalls) != 2 {
		t.Fatalf("expected 2 add calls, got %d", len(host.AddCalls))
	}
	first := host.AddCalls[0]
	if first.Title != "dune" || first.Author != "frank herbert" || first.Pages != "412" || !first.Read {
		t.Errorf("first add = %+v", first)
	}
	second := host.AddCalls[1]
	if second.Pages != "474" || second.Read {
		t.Errorf("second add = %+v", second)
	}
}

func TestAddReportsValidationMessage(t *testing.T) {
	engine, host, cleanup := setupTest(t)
	defer cleanup()
	host.addErr = errors.New("Author name can only include letters and single spaces")

	err := engine.DoString("test", `
		local id, msg = shelf.add{title = "T", author = "John3", pages = 1}
		assert(id == nil, "expected nil id")
		shelf.print(msg)
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if len(host.PrintCalls) != 1 || host.PrintCalls[0] != host.addErr.Error() {
		t.Errorf("PrintCalls = %v", host.PrintCalls)
	}
}

func TestBooksToggleRemove(t *testing.T) {
	engine, host, cleanup := setupTest(t)
	defer cleanup()

	err := engine.DoString("test", `
		shelf.add{title = "A", author = "X", pages = 1}
		shelf.add{title = "B", author = "Y", pages = 2}
		assert(shelf.count() == 2, "count")

		local books = shelf.books()
		assert(#books == 2, "books len")
		assert(books[2].title == "B" and books[2].pages == 2, "second book fields")

		assert(shelf.toggle(books[1].id) == true, "toggle")
		assert(shelf.remove(books[2].id) == true, "remove")

		local ok, msg = shelf.remove("missing")
		assert(ok == nil and msg == "book not found", "remove missing")
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}

	books := host.Books()
	if len(books) != 1 || !books[0].Read {
		t.Errorf("books after script = %+v", books)
	}
	if len(host.ToggleCalls) != 1 || len(host.RemoveCalls) != 2 {
		t.Errorf("toggle=%v remove=%v", host.ToggleCalls, host.RemoveCalls)
	}
}

func TestScriptErrorsSurface(t *testing.T) {
	engine, _, cleanup := setupTest(t)
	defer cleanup()

	if err := engine.DoString("broken", `shelf.add(`); err == nil {
		t.Error("expected syntax error")
	}
	if err := engine.DoString("runtime", `shelf.add("not a table")`); err == nil {
		t.Error("expected argument error")
	}
}

func TestDoFileIfExists(t *testing.T) {
	engine, host, cleanup := setupTest(t)
	defer cleanup()

	dir := t.TempDir()

	ran, err := engine.DoFileIfExists(filepath.Join(dir, "init.lua"))
	if err != nil || ran {
		t.Fatalf("missing file: ran=%v err=%v", ran, err)
	}

	// Local requires resolve relative to the script.
	if err := os.WriteFile(filepath.Join(dir, "books.lua"), []byte(`return {{title = "Emma", author = "Jane Austen", pages = 474}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	script := `for _, b in ipairs(require("books")) do shelf.add(b) end`
	if err := os.WriteFile(filepath.Join(dir, "init.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	ran, err = engine.DoFileIfExists(filepath.Join(dir, "init.lua"))
	if err != nil || !ran {
		t.Fatalf("init.lua: ran=%v err=%v", ran, err)
	}
	if len(host.AddCalls) != 1 || host.AddCalls[0].Title != "Emma" {
		t.Errorf("AddCalls = %+v", host.AddCalls)
	}
}

func TestInitResetsState(t *testing.T) {
	engine, _, cleanup := setupTest(t)
	defer cleanup()

	if err := engine.DoString("set", `leftover = 1`); err != nil {
		t.Fatal(err)
	}
	if err := engine.Init(); err != nil {
		t.Fatal(err)
	}
	if err := engine.DoString("check", `assert(leftover == nil, "state survived Init")`); err != nil {
		t.Errorf("Init did not reset state: %v", err)
	}
}
