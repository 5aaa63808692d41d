package repolist

import (
	"fmt"
	"sort"
	"strings"
)

// Style is a named, ordered selection of column kinds.
type Style struct {
	Name    string
	Columns []string
}

// DefaultStyles returns the built-in style presets.
func DefaultStyles() map[string][]string {
	return map[string][]string{
		"simple":    {"name", "path"},
		"versioned": {"name", "version", "behind-up", "ahead-up", "path"},
		"status":    {"name", "status", "branches", "stashes", "path"},
	}
}

// DefaultCycle returns the built-in cycle order.
func DefaultCycle() []string {
	return []string{"simple", "versioned", "status"}
}

// Merged builds the effective style set: the built-in presets overlaid
// with user styles, cycling through cycle. An empty cycle falls back to
// the built-in order.
func Merged(user map[string][]string, cycle []string) (*StyleSet, error) {
	styles := DefaultStyles()
	for name, cols := range user {
		styles[name] = append([]string(nil), cols...)
	}
	if len(cycle) == 0 {
		cycle = DefaultCycle()
	}
	return NewStyleSet(styles, cycle)
}

// StyleSet holds the configured styles and the cycle order. The first
// cycle entry is the default listing style.
type StyleSet struct {
	styles map[string]Style
	cycle  []string
}

// NewStyleSet validates styles and cycle against each other and the
// column registry: the cycle must be non-empty, cycle entries must name
// styles, and style columns must be registered kinds.
func NewStyleSet(styles map[string][]string, cycle []string) (*StyleSet, error) {
	if len(cycle) == 0 {
		return nil, fmt.Errorf("style cycle is empty")
	}

	set := &StyleSet{
		styles: make(map[string]Style, len(styles)),
		cycle:  append([]string(nil), cycle...),
	}
	for name, columns := range styles {
		if len(columns) == 0 {
			return nil, fmt.Errorf("style %q has no columns", name)
		}
		if _, err := Columns(columns); err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		set.styles[name] = Style{Name: name, Columns: append([]string(nil), columns...)}
	}
	for _, name := range cycle {
		if _, ok := set.styles[name]; !ok {
			return nil, fmt.Errorf("cycle entry %q is not a configured style", name)
		}
	}
	return set, nil
}

// Default returns the default listing style, the first cycle entry.
func (s *StyleSet) Default() Style {
	return s.styles[s.cycle[0]]
}

// Lookup returns the style registered under name.
func (s *StyleSet) Lookup(name string) (Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

// Names returns all configured style names, sorted.
func (s *StyleSet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cycle returns the cycle order.
func (s *StyleSet) Cycle() []string {
	return append([]string(nil), s.cycle...)
}

// String lists the set for diagnostics.
func (s *StyleSet) String() string {
	return fmt.Sprintf("styles [%s], cycle [%s]",
		strings.Join(s.Names(), " "), strings.Join(s.cycle, " "))
}

// Session tracks the active style of one interactive listing. The
// active style is per-session state; nothing global is touched.
type Session struct {
	set    *StyleSet
	active string
}

// NewSession starts a session with no active style.
func NewSession(set *StyleSet) *Session {
	return &Session{set: set}
}

// SetActive pins the active style by name.
func (s *Session) SetActive(name string) error {
	if _, ok := s.set.Lookup(name); !ok {
		return fmt.Errorf("unknown style %q (known: %s)", name, strings.Join(s.set.Names(), ", "))
	}
	s.active = name
	return nil
}

// Current returns the active style, or the set's default when none has
// been activated yet.
func (s *Session) Current() Style {
	if s.active == "" {
		return s.set.Default()
	}
	st, _ := s.set.Lookup(s.active)
	return st
}

// Cycle advances to the next style in cycle order and returns it. With
// no active style, or an active style outside the cycle, it returns the
// first cycle entry. After the last entry it wraps to the first.
func (s *Session) Cycle() Style {
	cycle := s.set.cycle
	if s.active != "" {
		for i, name := range cycle {
			if name == s.active {
				s.active = cycle[(i+1)%len(cycle)]
				return s.Current()
			}
		}
	}
	s.active = cycle[0]
	return s.Current()
}
