package entity

import (
	"errors"
	"testing"

	"github.com/dshills/modalkey/internal/input/key"
)

func nopEntity() Dispatcher {
	return Func(func(string, key.Event, Flags) (bool, error) {
		return false, nil
	})
}

func TestRegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("browser", nopEntity()); err != nil {
		t.Fatalf("Register error = %v", err)
	}

	if _, ok := r.Resolve("browser"); !ok {
		t.Error("Resolve should find registered entity")
	}
	if _, ok := r.Resolve("music"); ok {
		t.Error("Resolve should not find unregistered entity")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("browser", nopEntity()); err != nil {
		t.Fatalf("Register error = %v", err)
	}
	err := r.Register("browser", nopEntity())
	if !errors.Is(err, ErrDuplicateEntity) {
		t.Errorf("duplicate Register = %v, want ErrDuplicateEntity", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", nopEntity()); err == nil {
		t.Error("Register with empty name should fail")
	}
	if err := r.Register("browser", nil); err == nil {
		t.Error("Register with nil dispatcher should fail")
	}
}

func TestReplaceAndRemove(t *testing.T) {
	r := NewRegistry()
	called := ""
	r.Replace("browser", Func(func(action string, ev key.Event, flags Flags) (bool, error) {
		called = action
		return false, nil
	}))

	d, ok := r.Resolve("browser")
	if !ok {
		t.Fatal("Resolve after Replace failed")
	}
	d.DispatchAction("open", key.Event{}, Flags{})
	if called != "open" {
		t.Errorf("dispatched action = %q, want open", called)
	}

	r.Remove("browser")
	if _, ok := r.Resolve("browser"); ok {
		t.Error("Resolve after Remove should fail")
	}
}

func TestNames(t *testing.T) {
	r := NewRegistry()
	r.Replace("music", nopEntity())
	r.Replace("browser", nopEntity())

	names := r.Names()
	if len(names) != 2 || names[0] != "browser" || names[1] != "music" {
		t.Errorf("Names = %v, want sorted [browser music]", names)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestFuncPassesThroughResults(t *testing.T) {
	wantErr := errors.New("boom")
	f := Func(func(action string, ev key.Event, flags Flags) (bool, error) {
		if flags.ChainedFrom != "t" {
			t.Errorf("ChainedFrom = %q, want t", flags.ChainedFrom)
		}
		return true, wantErr
	})

	autoExit, err := f.DispatchAction("open", key.Event{Name: "o"}, Flags{ChainedFrom: "t"})
	if !autoExit {
		t.Error("autoExit should pass through")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want boom", err)
	}
}
