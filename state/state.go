/*
File    : condeval/state/state.go
*/

// Package state implements the default in-memory eval.State: flat
// property/item/metadata tables standing in for the project model a
// real build engine would otherwise own. Where the teacher's scope
// package chains parent/child maps to implement lexical variable
// scoping, a condition's evaluation context has no such nesting — every
// property, item list, and metadata table is simply looked up by name
// against the one project state active for the evaluation — so this
// package keeps the teacher's map-backed lookup idiom but drops the
// parent-chain machinery entirely.
package state

import (
	"strings"

	"github.com/gomsbuild/condeval/escaping"
	"github.com/gomsbuild/condeval/eval"
)

// State is the default in-memory implementation of eval.State.
type State struct {
	properties map[string]string
	items      map[string][]eval.Item
	metadata   map[string]map[string]string // itemType ("" = ambient) -> name -> value
	fs         eval.FileSystem
	loaded     map[string]bool
	warnings   []string
	warnFunc   func(key string, args ...interface{})
	condition  map[string][]string
}

// New creates an empty State backed by fs for Exists() lookups.
func New(fs eval.FileSystem) *State {
	return &State{
		properties: make(map[string]string),
		items:      make(map[string][]eval.Item),
		metadata:   make(map[string]map[string]string),
		fs:         fs,
		loaded:     make(map[string]bool),
		condition:  make(map[string][]string),
	}
}

// SetProperty assigns a property's value, overwriting any prior value.
func (s *State) SetProperty(name, value string) {
	s.properties[name] = value
}

func (s *State) GetProperty(name string) (string, bool) {
	v, ok := s.properties[name]
	return v, ok
}

// SetItems replaces the item list for itemType.
func (s *State) SetItems(itemType string, items []eval.Item) {
	s.items[itemType] = items
}

func (s *State) GetItems(itemType string) ([]eval.Item, bool) {
	v, ok := s.items[itemType]
	return v, ok
}

// SetMetadata assigns a metadata value under itemType (empty string for
// ambient metadata not scoped to any item type).
func (s *State) SetMetadata(itemType, name, value string) {
	table, ok := s.metadata[itemType]
	if !ok {
		table = make(map[string]string)
		s.metadata[itemType] = table
	}
	table[name] = value
}

func (s *State) GetMetadata(itemType, name string) (string, bool) {
	if table, ok := s.metadata[itemType]; ok {
		if v, ok := table[name]; ok {
			return v, true
		}
	}
	if itemType != "" {
		if table, ok := s.metadata[""]; ok {
			if v, ok := table[name]; ok {
				return v, true
			}
		}
	}
	return "", false
}

func (s *State) Exists(path string) bool {
	if s.fs == nil {
		return false
	}
	return s.fs.Exists(path)
}

// MarkLoaded records that path is considered an already-loaded project,
// so Exists() (and similarly motivated functions) can short-circuit
// without touching disk.
func (s *State) MarkLoaded(path string) {
	s.loaded[path] = true
}

func (s *State) IsLoaded(path string) bool {
	return s.loaded[path]
}

func (s *State) Warn(key string, args ...interface{}) {
	s.warnings = append(s.warnings, key)
	if s.warnFunc != nil {
		s.warnFunc(key, args...)
	}
}

// SetWarnFunc installs a callback invoked alongside Warn's own history
// recording, letting a caller surface warnings live (e.g. to a CLI's
// colored output) without losing the accumulated history.
func (s *State) SetWarnFunc(f func(key string, args ...interface{})) {
	s.warnFunc = f
}

// Warnings returns every warning key recorded so far, in order.
func (s *State) Warnings() []string {
	return s.warnings
}

func (s *State) RecordConditionedProperty(name, value string) {
	s.condition[name] = append(s.condition[name], value)
}

// ConditionedValues returns the values a property has been conditioned
// against so far, in the order they were recorded.
func (s *State) ConditionedValues(name string) []string {
	return s.condition[name]
}

// ExpandIntoString resolves every $(Property), %(Metadata), and
// @(ItemList) reference in text against this state's tables, then
// unescapes any %-escape sequences left in the result. Unlike the
// parser's scanning, nested quoted sub-expressions are not specially
// tracked here — property, metadata, and item names are themselves
// plain identifiers, so balanced-parenthesis matching is sufficient for
// the default in-memory model.
func (s *State) ExpandIntoString(text string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		if (c == '$' || c == '%' || c == '@') && i+1 < len(text) && text[i+1] == '(' {
			end := matchParen(text, i+1)
			if end < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			body := text[i+2 : end]
			switch c {
			case '$':
				val, _ := s.GetProperty(body)
				b.WriteString(val)
			case '%':
				itemType, name := splitItemQualified(body)
				val, _ := s.GetMetadata(itemType, name)
				b.WriteString(val)
			case '@':
				items, _ := s.GetItems(body)
				identities := make([]string, len(items))
				for j, it := range items {
					identities[j] = it.Identity
				}
				b.WriteString(strings.Join(identities, ";"))
			}
			i = end + 1
			continue
		}
		b.WriteByte(c)
		i++
	}
	return escaping.UnescapeAll(b.String(), false), nil
}

func splitItemQualified(body string) (itemType, name string) {
	if dot := strings.IndexByte(body, '.'); dot >= 0 {
		return body[:dot], body[dot+1:]
	}
	return "", body
}

// matchParen returns the index of the ')' balancing the '(' at s[open],
// or -1 if text runs out first.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
