// Package keys holds the scoped key-binding registry. Bindings map
// normalized key names to actions within a scope, with a global scope as
// fallback. The palette shortcut (and any other binding) can be overridden
// from configuration, so the exact modifier is never hard-coded.
package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Action identifies what a key press should do.
type Action string

// Scopes. The active scope is resolved by the UI dispatch table.
const (
	ScopeGlobal  = "global"
	ScopePalette = "palette"
	ScopeView    = "view"
)

const (
	ActionQuit          Action = "quit"
	ActionNextView      Action = "next_view"
	ActionPrevView      Action = "prev_view"
	ActionPaletteToggle Action = "palette_toggle"
	ActionThemeToggle   Action = "theme_toggle"
	ActionNavigate      Action = "navigate"
	ActionSelect        Action = "select"
	ActionClose         Action = "close"
)

// Binding attaches one or more keys to an action within its scopes.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// Override replaces the keys of an existing scope/action pair. Overrides
// come from user configuration.
type Override struct {
	Scope  string
	Action string
	Keys   []string
}

// Registry indexes bindings by scope and by normalized key name.
type Registry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

// NewRegistry builds the default binding table.
func NewRegistry() *Registry {
	r := &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(ScopeGlobal, ActionQuit, []string{"q", "ctrl+c"}, "quit")
	reg(ScopeGlobal, ActionPaletteToggle, []string{"ctrl+k"}, "commands")
	reg(ScopeGlobal, ActionThemeToggle, []string{"ctrl+t"}, "theme")
	reg(ScopeGlobal, ActionNextView, []string{"tab"}, "next view")
	reg(ScopeGlobal, ActionPrevView, []string{"shift+tab"}, "prev view")

	reg(ScopePalette, ActionNavigate, []string{"up/down", "up", "down", "ctrl+p", "ctrl+n"}, "navigate")
	reg(ScopePalette, ActionSelect, []string{"enter"}, "run")
	reg(ScopePalette, ActionClose, []string{"esc"}, "close")

	return r
}

// Register adds a binding per scope, skipping keys already taken in that
// scope (first registration wins).
func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 || r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		entry := b
		entry.Keys = normKeys
		entry.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &entry)
		for _, k := range entry.Keys {
			r.indexByScope[scope][k] = &entry
		}
	}
}

// Lookup resolves a pressed key in the given scope, falling back to the
// global scope.
func (r *Registry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != ScopeGlobal {
		return r.lookupInScope(keyName, ScopeGlobal)
	}
	return nil
}

// LookupIn resolves a pressed key strictly within one scope, without the
// global fallback. Overlays use this so printable keys fall through to text
// input instead of triggering global bindings.
func (r *Registry) LookupIn(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	return r.lookupInScope(normalizeKeyName(keyName), scope)
}

// IsAction reports whether the pressed key maps to the action in scope
// (including the global fallback).
func (r *Registry) IsAction(keyName string, action Action, scope string) bool {
	b := r.Lookup(keyName, scope)
	return b != nil && b.Action == action
}

// BindingsForScope returns the scope's bindings in registration order.
func (r *Registry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// HelpBindings converts a scope's bindings to bubbles help entries. The
// first key doubles as the display key, so "up/down" style labels come
// first in the key list.
func (r *Registry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// ApplyOverrides rebinds scope/action pairs from configuration, then
// validates that no key serves two actions within a scope.
func (r *Registry) ApplyOverrides(overrides []Override) error {
	if r == nil || len(overrides) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range overrides {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("keybinding override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("keybinding override scope=%q: action is required", scope)
		}
		normKeys := normalizeKeyList(o.Keys)
		if len(normKeys) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("keybinding override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("keybinding override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = normKeys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

// Export returns the effective bindings as override entries, sorted for
// stable output. Useful for writing a reference config.
func (r *Registry) Export() []Override {
	if r == nil {
		return nil
	}
	var out []Override
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, Override{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *Registry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *Registry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func (r *Registry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// normalizeKeyName canonicalizes modifier spellings so config files can say
// control+k, cmd+k, or option+p and still match what the terminal reports.
// Terminals report the primary modifier as ctrl regardless of platform, so
// cmd and super fold into it.
func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Uppercase and lowercase single runes stay distinct bindings.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "option+", "alt+")
	s = strings.ReplaceAll(s, "cmd+", "ctrl+")
	s = strings.ReplaceAll(s, "super+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "escape", "esc")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
