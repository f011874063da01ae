package nextstep_test

import (
	"errors"
	"testing"

	"nextstep-go/internal/nextstep"
	"nextstep-go/internal/store"
	"nextstep-go/internal/testutil"
)

func TestThemePreference(t *testing.T) {
	t.Run("defaults to light with auto on", func(t *testing.T) {
		svc := newTestService(testutil.NewMockBackend(), nil, nil)

		pref := svc.ThemePreference()
		if pref.Theme != nextstep.ThemeLight || !pref.Auto {
			t.Errorf("default preference = %+v, want light/auto", pref)
		}
	})

	t.Run("storage failure falls back to the default", func(t *testing.T) {
		faulty := &testutil.FaultyStore{
			Store:  store.NewMemoryStore(),
			GetErr: errors.New("disk I/O error"),
		}
		svc := newTestService(testutil.NewMockBackend(), faulty, nil)

		pref := svc.ThemePreference()
		if pref.Theme != nextstep.ThemeLight || !pref.Auto {
			t.Errorf("preference on failure = %+v, want light/auto", pref)
		}
	})
}

func TestSetTheme(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(testutil.NewMockBackend(), st, nil)

	pref, err := svc.SetTheme(nextstep.ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if pref.Theme != nextstep.ThemeDark || pref.Auto {
		t.Errorf("preference = %+v, want dark/manual", pref)
	}

	// The explicit choice survives a re-read.
	pref = svc.ThemePreference()
	if pref.Theme != nextstep.ThemeDark || pref.Auto {
		t.Errorf("reloaded preference = %+v, want dark/manual", pref)
	}

	if _, err := svc.SetTheme("sepia"); err == nil {
		t.Error("expected an error for unknown theme")
	}
}

func TestToggleTheme(t *testing.T) {
	svc := newTestService(testutil.NewMockBackend(), nil, nil)

	pref := svc.ToggleTheme()
	if pref.Theme != nextstep.ThemeDark || pref.Auto {
		t.Errorf("first toggle = %+v, want dark/manual", pref)
	}

	pref = svc.ToggleTheme()
	if pref.Theme != nextstep.ThemeLight || pref.Auto {
		t.Errorf("second toggle = %+v, want light/manual", pref)
	}
}

func TestSetAutoTheme(t *testing.T) {
	svc := newTestService(testutil.NewMockBackend(), nil, nil)

	// Turning auto back on keeps the last explicit choice.
	if _, err := svc.SetTheme(nextstep.ThemeDark); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	pref := svc.SetAutoTheme(true)
	if pref.Theme != nextstep.ThemeDark || !pref.Auto {
		t.Errorf("preference = %+v, want dark/auto", pref)
	}

	pref = svc.SetAutoTheme(false)
	if pref.Theme != nextstep.ThemeDark || pref.Auto {
		t.Errorf("preference = %+v, want dark/manual", pref)
	}
}
