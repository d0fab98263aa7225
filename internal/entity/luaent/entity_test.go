package luaent

import (
	"strings"
	"testing"

	"github.com/dshills/modalkey/internal/entity"
	"github.com/dshills/modalkey/internal/input/key"
)

func pressEvent(name string, mods ...key.Modifier) key.Event {
	var m key.Modifier
	for _, mod := range mods {
		m = m.With(mod)
	}
	return key.NewEvent(name, m)
}

func noFlags() entity.Flags {
	return entity.Flags{}
}

func loadBody(t *testing.T, body string) *Entity {
	t.Helper()
	engine := NewEngine()
	t.Cleanup(engine.Close)

	path := writeScript(t, t.TempDir(), "ent.lua", body)
	ent, err := engine.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error = %v", err)
	}
	return ent
}

func TestDispatchActionAutoExit(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{
			name: "returns true",
			body: `return { dispatchAction = function() return true end }`,
			want: true,
		},
		{
			name: "returns false",
			body: `return { dispatchAction = function() return false end }`,
			want: false,
		},
		{
			name: "returns nothing",
			body: `return { dispatchAction = function() end }`,
			want: false,
		},
		{
			name: "truthy non-boolean",
			body: `return { dispatchAction = function() return "done" end }`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ent := loadBody(t, tt.body)
			got, err := ent.DispatchAction("go", pressEvent("g"), noFlags())
			if err != nil {
				t.Fatalf("DispatchAction() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DispatchAction() autoExit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDispatchActionArguments(t *testing.T) {
	ent := loadBody(t, `
		return {
			dispatchAction = function(action, flags)
				return action == "volumeUp"
					and flags.key == "k"
					and flags.chainedFrom == "shift+c"
					and #flags.mods == 2
					and flags.mods[1] == "cmd"
					and flags.mods[2] == "shift"
			end,
		}
	`)

	ev := pressEvent("k", key.ModCmd, key.ModShift)
	ok, err := ent.DispatchAction("volumeUp", ev, entity.Flags{ChainedFrom: "shift+c"})
	if err != nil {
		t.Fatalf("DispatchAction() error = %v", err)
	}
	if !ok {
		t.Error("script did not see the expected action, key, mods, and chainedFrom")
	}
}

func TestDispatchActionEmptyChain(t *testing.T) {
	ent := loadBody(t, `
		return {
			dispatchAction = function(action, flags)
				return flags.chainedFrom == ""
			end,
		}
	`)

	ok, err := ent.DispatchAction("status", pressEvent("s"), noFlags())
	if err != nil {
		t.Fatalf("DispatchAction() error = %v", err)
	}
	if !ok {
		t.Error("chainedFrom should be the empty string when no action is pending")
	}
}

func TestDispatchActionScriptError(t *testing.T) {
	ent := loadBody(t, `
		return {
			dispatchAction = function(action, flags)
				error("refusing " .. action)
			end,
		}
	`)

	_, err := ent.DispatchAction("explode", pressEvent("x"), noFlags())
	if err == nil {
		t.Fatal("DispatchAction() error = nil, want script error")
	}
	if !strings.Contains(err.Error(), "refusing explode") {
		t.Errorf("DispatchAction() error = %v, want script message included", err)
	}
	if !strings.Contains(err.Error(), "ent.explode") {
		t.Errorf("DispatchAction() error = %v, want entity and action named", err)
	}
}

func TestDispatchActionErrorLeavesStateUsable(t *testing.T) {
	ent := loadBody(t, `
		local calls = 0
		return {
			dispatchAction = function(action, flags)
				calls = calls + 1
				if action == "fail" then
					error("boom")
				end
				return calls == 2
			end,
		}
	`)

	if _, err := ent.DispatchAction("fail", pressEvent("f"), noFlags()); err == nil {
		t.Fatal("DispatchAction(fail) error = nil, want error")
	}
	ok, err := ent.DispatchAction("count", pressEvent("c"), noFlags())
	if err != nil {
		t.Fatalf("DispatchAction(count) error = %v", err)
	}
	if !ok {
		t.Error("state after a script error lost upvalues or miscounted calls")
	}
}

func TestDispatchActionKeepsState(t *testing.T) {
	ent := loadBody(t, `
		local level = 0
		return {
			dispatchAction = function(action, flags)
				if action == "up" then
					level = level + 1
				elseif action == "down" then
					level = level - 1
				end
				return level >= 3
			end,
		}
	`)

	for i, want := range []bool{false, false, true} {
		got, err := ent.DispatchAction("up", pressEvent("k"), noFlags())
		if err != nil {
			t.Fatalf("DispatchAction() call %d error = %v", i+1, err)
		}
		if got != want {
			t.Errorf("DispatchAction() call %d = %v, want %v", i+1, got, want)
		}
	}
}
