package luaent

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modalkey/internal/entity"
	"github.com/dshills/modalkey/internal/input/key"
)

// Entity is one scripted entity. It dispatches actions by calling the
// script's dispatchAction function.
type Entity struct {
	engine   *Engine
	name     string
	dispatch *lua.LFunction
}

// Name returns the entity name used for registration.
func (e *Entity) Name() string {
	return e.name
}

// DispatchAction calls the script's dispatchAction with the action
// string and a flags table. The script's return value, coerced to a
// boolean, becomes autoExit. Script errors are returned, not raised.
func (e *Entity) DispatchAction(action string, ev key.Event, flags entity.Flags) (bool, error) {
	if e.engine.closed {
		return false, ErrEngineClosed
	}

	L := e.engine.state
	if e.engine.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.engine.timeout)
		defer cancel()
		L.SetContext(ctx)
		defer L.RemoveContext()
	}

	base := L.GetTop()
	L.Push(e.dispatch)
	L.Push(lua.LString(action))
	L.Push(e.flagsTable(ev, flags))

	err := e.engine.doWithRecovery(func() error {
		return L.PCall(2, 1, nil)
	})
	if err != nil {
		L.SetTop(base)
		return false, fmt.Errorf("luaent: %s.%s: %w", e.name, action, err)
	}

	ret := L.Get(-1)
	L.SetTop(base)
	return lua.LVAsBool(ret), nil
}

// flagsTable builds the flags argument passed to dispatchAction.
func (e *Entity) flagsTable(ev key.Event, flags entity.Flags) *lua.LTable {
	L := e.engine.state

	mods := L.NewTable()
	for i, name := range ev.Modifiers.Names() {
		mods.RawSetInt(i+1, lua.LString(name))
	}

	tbl := L.NewTable()
	tbl.RawSetString("chainedFrom", lua.LString(flags.ChainedFrom))
	tbl.RawSetString("key", lua.LString(ev.Name))
	tbl.RawSetString("mods", mods)
	return tbl
}
