package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/repols/repols/internal/scan"
)

// keyMsg creates a KeyPressMsg for testing.
func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+n":
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case "ctrl+p":
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			r := rune(key[0])
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

func selectorRepos() []scan.Repo {
	return []scan.Repo{
		{Name: "api", Path: "/src/api"},
		{Name: "frontend", Path: "/src/frontend"},
		{Name: "backend", Path: "/src/backend"},
	}
}

// updateSelector sends a key to the model and returns it.
func updateSelector(t *testing.T, m *selectorModel, key string) *selectorModel {
	t.Helper()
	next, _ := m.Update(keyMsg(key))
	return next.(*selectorModel)
}

// typeFilter types each rune of text into the filter input.
func typeFilter(t *testing.T, m *selectorModel, text string) *selectorModel {
	t.Helper()
	for _, r := range text {
		m = updateSelector(t, m, string(r))
	}
	return m
}

func TestSelector_UnfilteredShowsAll(t *testing.T) {
	m := newSelectorModel(selectorRepos())

	if len(m.filtered) != 3 {
		t.Fatalf("filtered = %d entries, want 3", len(m.filtered))
	}
	// Empty filter keeps scan order.
	for i, want := range []string{"api", "frontend", "backend"} {
		if m.filtered[i].Str != want {
			t.Errorf("filtered[%d] = %q, want %q", i, m.filtered[i].Str, want)
		}
	}
}

func TestSelector_Filter(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = typeFilter(t, m, "end")

	if len(m.filtered) != 2 {
		t.Fatalf("filtered = %d entries, want 2 (frontend, backend)", len(m.filtered))
	}
	for _, match := range m.filtered {
		if match.Str != "frontend" && match.Str != "backend" {
			t.Errorf("unexpected match %q", match.Str)
		}
	}
}

func TestSelector_FilterNoMatches(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = typeFilter(t, m, "zzz")

	if len(m.filtered) != 0 {
		t.Errorf("filtered = %d entries, want 0", len(m.filtered))
	}
}

func TestSelector_Navigation(t *testing.T) {
	m := newSelectorModel(selectorRepos())

	m = updateSelector(t, m, "down")
	m = updateSelector(t, m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	// Stops at the last entry.
	m = updateSelector(t, m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d after extra down, want 2", m.cursor)
	}

	m = updateSelector(t, m, "up")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// Emacs-style bindings move too.
	m = updateSelector(t, m, "ctrl+p")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after ctrl+p, want 0", m.cursor)
	}
	m = updateSelector(t, m, "ctrl+n")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after ctrl+n, want 1", m.cursor)
	}
}

func TestSelector_CursorClampedByFilter(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = updateSelector(t, m, "down")
	m = updateSelector(t, m, "down")

	// Narrowing the list pulls the cursor back in bounds.
	m = typeFilter(t, m, "api")
	if len(m.filtered) != 1 {
		t.Fatalf("filtered = %d entries, want 1", len(m.filtered))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestSelector_EnterSelects(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = updateSelector(t, m, "down")
	m = updateSelector(t, m, "enter")

	if !m.done {
		t.Error("model should be done after enter")
	}
	if m.selected == nil {
		t.Fatal("expected a selection")
	}
	if m.selected.Name != "frontend" {
		t.Errorf("selected %q, want %q", m.selected.Name, "frontend")
	}
}

func TestSelector_EnterWithNoMatches(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = typeFilter(t, m, "zzz")
	m = updateSelector(t, m, "enter")

	if !m.done {
		t.Error("model should be done after enter")
	}
	if m.selected != nil {
		t.Errorf("expected no selection, got %q", m.selected.Name)
	}
}

func TestSelector_EscClearsFilterFirst(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = typeFilter(t, m, "api")

	m = updateSelector(t, m, "esc")
	if m.cancelled {
		t.Fatal("first esc should clear the filter, not cancel")
	}
	if got := m.textInput.Value(); got != "" {
		t.Errorf("filter = %q after esc, want empty", got)
	}
	if len(m.filtered) != 3 {
		t.Errorf("filtered = %d entries after clear, want 3", len(m.filtered))
	}

	m = updateSelector(t, m, "esc")
	if !m.cancelled {
		t.Error("second esc should cancel")
	}
}

func TestSelector_CtrlCCancels(t *testing.T) {
	m := newSelectorModel(selectorRepos())
	m = typeFilter(t, m, "api")
	m = updateSelector(t, m, "ctrl+c")

	// ctrl+c cancels even with an active filter.
	if !m.cancelled {
		t.Error("ctrl+c should cancel")
	}
	if !m.done {
		t.Error("model should be done after ctrl+c")
	}
}

func TestSelector_VisibleRangeScrolls(t *testing.T) {
	repos := make([]scan.Repo, 25)
	for i := range repos {
		repos[i] = scan.Repo{Name: string(rune('a' + i))}
	}
	m := newSelectorModel(repos)

	start, end := m.visibleRange()
	if start != 0 || end != m.maxHeight {
		t.Errorf("initial window = [%d,%d), want [0,%d)", start, end, m.maxHeight)
	}

	m.cursor = 20
	start, end = m.visibleRange()
	if m.cursor < start || m.cursor >= end {
		t.Errorf("cursor %d outside window [%d,%d)", m.cursor, start, end)
	}
	if end-start != m.maxHeight {
		t.Errorf("window size = %d, want %d", end-start, m.maxHeight)
	}

	m.cursor = 24
	start, end = m.visibleRange()
	if end != 25 {
		t.Errorf("window end = %d at list bottom, want 25", end)
	}
	if m.cursor < start || m.cursor >= end {
		t.Errorf("cursor %d outside window [%d,%d)", m.cursor, start, end)
	}
}

func TestRunSelector_EmptyList(t *testing.T) {
	result, err := RunSelector(nil)
	if err != nil {
		t.Fatalf("RunSelector: %v", err)
	}
	if !result.Cancelled {
		t.Error("empty repo list should cancel immediately")
	}
	if result.Selected {
		t.Error("empty repo list should not select")
	}
}
