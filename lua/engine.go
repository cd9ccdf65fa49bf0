package lua

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	glua "github.com/yuin/gopher-lua"
)

// Engine wraps gopher-lua and manages the VM lifecycle.
// It knows how to run Lua code and expose the shelf API, nothing more.
type Engine struct {
	L *glua.LState

	// Cached table reference
	shelfTable *glua.LTable

	host Host
}

// NewEngine creates an Engine with the given Host.
func NewEngine(host Host) *Engine {
	return &Engine{host: host}
}

// Init initializes (or re-initializes) the Lua VM with fresh state.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}
	e.L = glua.NewState()
	e.registerAPIs()
	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return errors.Wrapf(err, "load %s", name)
	}
	e.L.Push(fn)
	return errors.Wrapf(e.L.PCall(0, 0, nil), "run %s", name)
}

// DoFile executes a Lua file from the filesystem.
// It temporarily adjusts package.path to allow local requires.
func (e *Engine) DoFile(path string) error {
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", path)
	}
	dir := filepath.Dir(absPath)

	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(dir+"/?.lua;"+oldPath))

	err = e.L.DoFile(absPath)

	e.L.SetField(pkg, "path", glua.LString(oldPath))

	return errors.Wrapf(err, "run %s", absPath)
}

// DoFileIfExists runs path if it exists. Reports whether it ran.
func (e *Engine) DoFileIfExists(path string) (bool, error) {
	if _, err := os.Stat(expandTilde(path)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", path)
	}
	return true, e.DoFile(path)
}

func (e *Engine) registerAPIs() {
	e.shelfTable = e.L.NewTable()
	e.L.SetGlobal("shelf", e.shelfTable)

	e.registerLibraryFuncs()
}

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
