package keys

import (
	"strings"
	"testing"
)

func TestDefaultGlobalBindings(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		key  string
		want Action
	}{
		{key: "q", want: ActionQuit},
		{key: "ctrl+c", want: ActionQuit},
		{key: "ctrl+k", want: ActionPaletteToggle},
		{key: "ctrl+t", want: ActionThemeToggle},
		{key: "tab", want: ActionNextView},
		{key: "shift+tab", want: ActionPrevView},
	}
	for _, tc := range cases {
		b := r.Lookup(tc.key, ScopeGlobal)
		if b == nil {
			t.Fatalf("lookup(%q) = nil", tc.key)
		}
		if b.Action != tc.want {
			t.Fatalf("lookup(%q) = %q, want %q", tc.key, b.Action, tc.want)
		}
	}
}

func TestLookupFallsBackToGlobal(t *testing.T) {
	r := NewRegistry()
	b := r.Lookup("ctrl+k", ScopePalette)
	if b == nil || b.Action != ActionPaletteToggle {
		t.Fatalf("lookup in palette scope did not fall back to global, got %v", b)
	}
}

func TestLookupInHasNoGlobalFallback(t *testing.T) {
	r := NewRegistry()
	if b := r.LookupIn("q", ScopePalette); b != nil {
		t.Fatalf("lookupIn(q, palette) = %q, want nil", b.Action)
	}
	if b := r.LookupIn("enter", ScopePalette); b == nil || b.Action != ActionSelect {
		t.Fatalf("lookupIn(enter, palette) = %v, want select", b)
	}
}

func TestIsAction(t *testing.T) {
	r := NewRegistry()
	if !r.IsAction("esc", ActionClose, ScopePalette) {
		t.Fatal("esc should close the palette")
	}
	if r.IsAction("esc", ActionQuit, ScopePalette) {
		t.Fatal("esc should not quit")
	}
}

func TestNormalizeKeyName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{in: "control+k", want: "ctrl+k"},
		{in: "ctl+k", want: "ctrl+k"},
		{in: "option+p", want: "alt+p"},
		{in: "cmd+k", want: "ctrl+k"},
		{in: "super+k", want: "ctrl+k"},
		{in: "Return", want: "enter"},
		{in: "Escape", want: "esc"},
		{in: "spacebar", want: "space"},
		{in: " ", want: "space"},
		{in: "  CTRL+T  ", want: "ctrl+t"},
		{in: "G", want: "G"},
		{in: "g", want: "g"},
	}
	for _, tc := range cases {
		if got := normalizeKeyName(tc.in); got != tc.want {
			t.Fatalf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRegisterFirstWinsWithinScope(t *testing.T) {
	r := NewRegistry()
	r.Register(Binding{Action: Action("other"), Keys: []string{"ctrl+k"}, Scopes: []string{ScopeGlobal}})
	b := r.Lookup("ctrl+k", ScopeGlobal)
	if b == nil || b.Action != ActionPaletteToggle {
		t.Fatalf("ctrl+k rebound by later registration, got %v", b)
	}
}

func TestApplyOverridesRebindsPaletteShortcut(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyOverrides([]Override{
		{Scope: ScopeGlobal, Action: string(ActionPaletteToggle), Keys: []string{"control+p"}},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if b := r.Lookup("ctrl+p", ScopeGlobal); b == nil || b.Action != ActionPaletteToggle {
		t.Fatalf("ctrl+p = %v, want palette toggle", b)
	}
	if b := r.Lookup("ctrl+k", ScopeGlobal); b != nil {
		t.Fatalf("ctrl+k still bound to %q after override", b.Action)
	}
}

func TestApplyOverridesUnknownScope(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyOverrides([]Override{
		{Scope: "popup", Action: string(ActionClose), Keys: []string{"esc"}},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown scope") {
		t.Fatalf("err = %v, want unknown scope", err)
	}
}

func TestApplyOverridesUnknownAction(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyOverrides([]Override{
		{Scope: ScopeGlobal, Action: "teleport", Keys: []string{"ctrl+x"}},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Fatalf("err = %v, want unknown action", err)
	}
}

func TestApplyOverridesDuplicateEntry(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyOverrides([]Override{
		{Scope: ScopeGlobal, Action: string(ActionQuit), Keys: []string{"ctrl+q"}},
		{Scope: ScopeGlobal, Action: string(ActionQuit), Keys: []string{"ctrl+d"}},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicated") {
		t.Fatalf("err = %v, want duplicated override entry", err)
	}
}

func TestApplyOverridesDetectsConflicts(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyOverrides([]Override{
		{Scope: ScopeGlobal, Action: string(ActionThemeToggle), Keys: []string{"ctrl+k"}},
	})
	if err == nil || !strings.Contains(err.Error(), "conflict") {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestApplyOverridesEmptyKeys(t *testing.T) {
	r := NewRegistry()
	err := r.ApplyOverrides([]Override{
		{Scope: ScopeGlobal, Action: string(ActionQuit), Keys: []string{"  "}},
	})
	if err == nil || !strings.Contains(err.Error(), "keys are required") {
		t.Fatalf("err = %v, want keys are required", err)
	}
}

func TestHelpBindings(t *testing.T) {
	r := NewRegistry()
	help := r.HelpBindings(ScopePalette)
	if len(help) != 3 {
		t.Fatalf("help entries = %d, want 3", len(help))
	}
	if help[0].Help().Key != "up/down" {
		t.Fatalf("first help key = %q, want up/down", help[0].Help().Key)
	}
}

func TestExportIsSortedAndComplete(t *testing.T) {
	r := NewRegistry()
	out := r.Export()
	if len(out) != 8 {
		t.Fatalf("export entries = %d, want 8", len(out))
	}
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.Scope > cur.Scope || (prev.Scope == cur.Scope && prev.Action > cur.Action) {
			t.Fatalf("export not sorted at %d: %+v before %+v", i, prev, cur)
		}
	}
}
