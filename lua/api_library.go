package lua

import (
	"strconv"

	glua "github.com/yuin/gopher-lua"
)

// registerLibraryFuncs registers shelf.* functions.
func (e *Engine) registerLibraryFuncs() {
	// shelf.add{title=, author=, pages=, read=}: returns id, or nil and a message
	e.L.SetField(e.shelfTable, "add", e.L.NewFunction(func(L *glua.LState) int {
		tbl := L.CheckTable(1)
		id, err := e.host.AddBook(
			fieldString(L.GetField(tbl, "title")),
			fieldString(L.GetField(tbl, "author")),
			fieldString(L.GetField(tbl, "pages")),
			glua.LVAsBool(L.GetField(tbl, "read")),
		)
		if err != nil {
			L.Push(glua.LNil)
			L.Push(glua.LString(err.Error()))
			return 2
		}
		L.Push(glua.LString(id))
		return 1
	}))

	// shelf.remove(id): returns true, or nil and a message
	e.L.SetField(e.shelfTable, "remove", e.L.NewFunction(func(L *glua.LState) int {
		return pushResult(L, e.host.RemoveBook(L.CheckString(1)))
	}))

	// shelf.toggle(id): returns true, or nil and a message
	e.L.SetField(e.shelfTable, "toggle", e.L.NewFunction(func(L *glua.LState) int {
		return pushResult(L, e.host.ToggleRead(L.CheckString(1)))
	}))

	// shelf.books(): array of {id, title, author, pages, read}
	e.L.SetField(e.shelfTable, "books", e.L.NewFunction(func(L *glua.LState) int {
		books := e.host.Books()
		list := L.CreateTable(len(books), 0)
		for _, b := range books {
			row := L.CreateTable(0, 5)
			row.RawSetString("id", glua.LString(b.ID))
			row.RawSetString("title", glua.LString(b.Title))
			row.RawSetString("author", glua.LString(b.Author))
			row.RawSetString("pages", glua.LNumber(b.Pages))
			row.RawSetString("read", glua.LBool(b.Read))
			list.Append(row)
		}
		L.Push(list)
		return 1
	}))

	// shelf.count(): number of books
	e.L.SetField(e.shelfTable, "count", e.L.NewFunction(func(L *glua.LState) int {
		L.Push(glua.LNumber(len(e.host.Books())))
		return 1
	}))

	// shelf.print(text): status line message
	e.L.SetField(e.shelfTable, "print", e.L.NewFunction(func(L *glua.LState) int {
		e.host.Print(L.CheckString(1))
		return 0
	}))
}

func pushResult(L *glua.LState, err error) int {
	if err != nil {
		L.Push(glua.LNil)
		L.Push(glua.LString(err.Error()))
		return 2
	}
	L.Push(glua.LTrue)
	return 1
}

// fieldString reads a form field the way the form would see it: as text.
func fieldString(v glua.LValue) string {
	switch v := v.(type) {
	case glua.LString:
		return string(v)
	case glua.LNumber:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	default:
		return ""
	}
}
