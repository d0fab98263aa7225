package luaent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Errors for script loading and execution.
var (
	// ErrEngineClosed is returned when operating on a closed engine.
	ErrEngineClosed = errors.New("luaent: engine is closed")

	// ErrNotTable is returned when a script does not return a table.
	ErrNotTable = errors.New("luaent: script must return a table")

	// ErrNoDispatch is returned when the returned table has no
	// dispatchAction function.
	ErrNoDispatch = errors.New("luaent: script table has no dispatchAction function")
)

// DefaultCallTimeout bounds a single dispatchAction call.
const DefaultCallTimeout = 5 * time.Second

// Engine owns the Lua state that scripted entities run in.
//
// The state is sandboxed: only base, table, string, and math are
// opened, and the load family is removed. One engine serves all
// scripts loaded through it. Calls are not synchronized; the engine
// belongs to the dispatch goroutine.
type Engine struct {
	state   *lua.LState
	timeout time.Duration
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCallTimeout bounds each dispatchAction call. Zero disables the
// timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// NewEngine creates a sandboxed engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		state:   lua.NewState(lua.Options{SkipOpenLibs: true}),
		timeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	openSafeLibraries(e.state)
	removeLoaders(e.state)
	return e
}

// openSafeLibraries opens only the libraries scripts are allowed to
// use. No os, io, or debug.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// removeLoaders strips the functions that let a script load more code.
func removeLoaders(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Close releases the Lua state. Entities loaded from this engine stop
// working once it is closed.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}

// LoadScript runs one script file and builds an entity from the table
// it returns. The entity name comes from the table's name field, or
// from the file name when the field is absent.
func (e *Engine) LoadScript(path string) (*Entity, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	base := e.state.GetTop()
	if err := e.doWithRecovery(func() error {
		return e.state.DoFile(path)
	}); err != nil {
		e.state.SetTop(base)
		return nil, fmt.Errorf("luaent: %s: %w", filepath.Base(path), err)
	}
	if e.state.GetTop() <= base {
		return nil, fmt.Errorf("%w: %s", ErrNotTable, filepath.Base(path))
	}
	ret := e.state.Get(base + 1)
	e.state.SetTop(base)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned %s", ErrNotTable, filepath.Base(path), ret.Type())
	}

	fn, ok := tbl.RawGetString("dispatchAction").(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDispatch, filepath.Base(path))
	}

	name := scriptName(path)
	if v, ok := tbl.RawGetString("name").(lua.LString); ok && v != "" {
		name = string(v)
	}

	return &Entity{engine: e, name: name, dispatch: fn}, nil
}

// LoadDir loads every *.lua file in dir, in lexical order. Scripts
// that fail to load are skipped; their errors are joined into the
// returned error alongside the entities that did load.
func (e *Engine) LoadDir(dir string) ([]*Entity, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return nil, fmt.Errorf("luaent: scan %s: %w", dir, err)
	}
	if matches == nil {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, fmt.Errorf("luaent: scan %s: %w", dir, statErr)
		}
	}
	sort.Strings(matches)

	var entities []*Entity
	var errs []error
	for _, path := range matches {
		ent, loadErr := e.LoadScript(path)
		if loadErr != nil {
			errs = append(errs, loadErr)
			continue
		}
		entities = append(entities, ent)
	}
	return entities, errors.Join(errs...)
}

// doWithRecovery executes a function with panic recovery.
func (e *Engine) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// scriptName derives an entity name from a script path.
func scriptName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
