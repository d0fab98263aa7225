package luaent

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	path := writeScript(t, t.TempDir(), "browser.lua", `
		return {
			name = "browser",
			dispatchAction = function(action, flags)
				return true
			end,
		}
	`)

	ent, err := engine.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error = %v", err)
	}
	if ent.Name() != "browser" {
		t.Errorf("Name() = %q, want %q", ent.Name(), "browser")
	}
}

func TestLoadScriptNameFromFile(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	path := writeScript(t, t.TempDir(), "music.lua", `
		return {
			dispatchAction = function(action, flags) end,
		}
	`)

	ent, err := engine.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error = %v", err)
	}
	if ent.Name() != "music" {
		t.Errorf("Name() = %q, want %q", ent.Name(), "music")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "returns nothing",
			body:    `local x = 1`,
			wantErr: ErrNotTable,
		},
		{
			name:    "returns a number",
			body:    `return 42`,
			wantErr: ErrNotTable,
		},
		{
			name:    "no dispatchAction",
			body:    `return { name = "empty" }`,
			wantErr: ErrNoDispatch,
		},
		{
			name:    "dispatchAction not a function",
			body:    `return { dispatchAction = "nope" }`,
			wantErr: ErrNoDispatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()
			defer engine.Close()

			path := writeScript(t, t.TempDir(), "bad.lua", tt.body)
			if _, err := engine.LoadScript(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadScript() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadScriptSyntaxError(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	path := writeScript(t, t.TempDir(), "broken.lua", `return {`)
	if _, err := engine.LoadScript(path); err == nil {
		t.Error("LoadScript() error = nil, want syntax error")
	}
}

func TestLoadDir(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	dir := t.TempDir()
	writeScript(t, dir, "b.lua", `return { dispatchAction = function() end }`)
	writeScript(t, dir, "a.lua", `return { dispatchAction = function() end }`)
	writeScript(t, dir, "notes.txt", `not a script`)

	entities, err := engine.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("LoadDir() loaded %d entities, want 2", len(entities))
	}
	if entities[0].Name() != "a" || entities[1].Name() != "b" {
		t.Errorf("LoadDir() order = [%s, %s], want [a, b]",
			entities[0].Name(), entities[1].Name())
	}
}

func TestLoadDirSkipsBroken(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	dir := t.TempDir()
	writeScript(t, dir, "good.lua", `return { dispatchAction = function() end }`)
	writeScript(t, dir, "broken.lua", `return {`)

	entities, err := engine.LoadDir(dir)
	if err == nil {
		t.Error("LoadDir() error = nil, want error for broken script")
	}
	if len(entities) != 1 {
		t.Fatalf("LoadDir() loaded %d entities, want 1", len(entities))
	}
	if entities[0].Name() != "good" {
		t.Errorf("LoadDir() loaded %q, want %q", entities[0].Name(), "good")
	}
}

func TestLoadDirMissing(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	if _, err := engine.LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("LoadDir() error = nil, want error for missing directory")
	}
}

func TestSandbox(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	tests := []struct {
		name string
		body string
	}{
		{"no os", `return { dispatchAction = function() return os ~= nil end }`},
		{"no io", `return { dispatchAction = function() return io ~= nil end }`},
		{"no dofile", `return { dispatchAction = function() return dofile ~= nil end }`},
		{"no loadstring", `return { dispatchAction = function() return loadstring ~= nil end }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, t.TempDir(), "probe.lua", tt.body)
			ent, err := engine.LoadScript(path)
			if err != nil {
				t.Fatalf("LoadScript() error = %v", err)
			}
			leaked, err := ent.DispatchAction("probe", pressEvent("p"), noFlags())
			if err != nil {
				t.Fatalf("DispatchAction() error = %v", err)
			}
			if leaked {
				t.Error("sandbox leaked a forbidden global")
			}
		})
	}
}

func TestSafeLibrariesAvailable(t *testing.T) {
	engine := NewEngine()
	defer engine.Close()

	path := writeScript(t, t.TempDir(), "libs.lua", `
		return {
			dispatchAction = function(action, flags)
				return string.upper("ok") == "OK"
					and math.max(1, 2) == 2
					and #flags.mods >= 0
			end,
		}
	`)
	ent, err := engine.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error = %v", err)
	}
	ok, err := ent.DispatchAction("check", pressEvent("c"), noFlags())
	if err != nil {
		t.Fatalf("DispatchAction() error = %v", err)
	}
	if !ok {
		t.Error("string/table/math libraries not usable from script")
	}
}

func TestClosedEngine(t *testing.T) {
	engine := NewEngine()
	path := writeScript(t, t.TempDir(), "late.lua", `return { dispatchAction = function() end }`)
	ent, err := engine.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error = %v", err)
	}

	engine.Close()

	if _, err := engine.LoadScript(path); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("LoadScript() after Close error = %v, want %v", err, ErrEngineClosed)
	}
	if _, err := engine.LoadDir(t.TempDir()); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("LoadDir() after Close error = %v, want %v", err, ErrEngineClosed)
	}
	if _, err := ent.DispatchAction("x", pressEvent("x"), noFlags()); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("DispatchAction() after Close error = %v, want %v", err, ErrEngineClosed)
	}
}
