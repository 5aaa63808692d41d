package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/repols/repols/internal/scan"
	"github.com/repols/repols/internal/ui/styles"
)

// SelectorResult contains the result of the selection
type SelectorResult struct {
	Repo      scan.Repo
	Selected  bool // true if user selected, false if cancelled
	Cancelled bool
}

// repoSource implements fuzzy.Source over repository display names.
type repoSource []scan.Repo

func (s repoSource) String(i int) string { return s[i].Name }
func (s repoSource) Len() int            { return len(s) }

// selectorModel is the bubbletea model for repository selection
type selectorModel struct {
	repos     []scan.Repo
	filtered  []fuzzy.Match
	textInput textinput.Model
	cursor    int
	selected  *scan.Repo
	cancelled bool
	done      bool
	maxHeight int
}

func newSelectorModel(repos []scan.Repo) *selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.SetWidth(40)

	tiStyles := ti.Styles()
	tiStyles.Cursor.Shape = tea.CursorBar
	tiStyles.Cursor.Blink = true
	ti.SetStyles(tiStyles)
	ti.Focus()

	m := &selectorModel{
		repos:     repos,
		textInput: ti,
		maxHeight: 10,
	}
	m.applyFilter()
	return m
}

func (m *selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "esc":
			// Clear the filter first, cancel on a second esc
			if m.textInput.Value() != "" {
				m.textInput.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				repo := m.repos[m.filtered[m.cursor].Index]
				m.selected = &repo
			}
			m.done = true
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the match list from the current filter text.
// An empty filter keeps every repository in scan order.
func (m *selectorModel) applyFilter() {
	filter := m.textInput.Value()
	if filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.repos))
		for i := range m.repos {
			m.filtered[i] = fuzzy.Match{Str: m.repos[i].Name, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(filter, repoSource(m.repos))
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *selectorModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var sb strings.Builder

	sb.WriteString(styles.PrimaryStyle.Render("Select repository:"))
	sb.WriteString("\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(styles.MutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start, end := m.visibleRange()
		for i := start; i < end; i++ {
			if i == m.cursor {
				sb.WriteString(styles.AccentStyle.Render("> "))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(m.renderMatch(m.filtered[i], i == m.cursor))
			sb.WriteString("\n")
		}

		// Scroll indicator
		if len(m.filtered) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return tea.NewView(sb.String())
}

// visibleRange computes the scroll window, centering the cursor when
// the list is longer than maxHeight.
func (m *selectorModel) visibleRange() (int, int) {
	if len(m.filtered) <= m.maxHeight {
		return 0, len(m.filtered)
	}

	start := m.cursor - m.maxHeight/2
	if start < 0 {
		start = 0
	}
	end := start + m.maxHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
		start = end - m.maxHeight
	}
	return start, end
}

// renderMatch renders one list entry, highlighting fuzzy-matched
// characters.
func (m *selectorModel) renderMatch(match fuzzy.Match, active bool) string {
	base := styles.NormalStyle
	if active {
		base = styles.AccentStyle
	}

	if len(match.MatchedIndexes) == 0 {
		return base.Render(match.Str)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(match.Str) {
		if matchSet[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// RunSelector shows an interactive fuzzy selector over the given
// repositories. The TUI renders to stderr so stdout remains available
// for piping (e.g., cd $(repols cd -i) works correctly). Returns a
// cancelled result when repos is empty.
func RunSelector(repos []scan.Repo) (*SelectorResult, error) {
	if len(repos) == 0 {
		return &SelectorResult{Cancelled: true}, nil
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newSelectorModel(repos),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(*selectorModel)
	if m.cancelled || m.selected == nil {
		return &SelectorResult{Cancelled: true}, nil
	}
	return &SelectorResult{Repo: *m.selected, Selected: true}, nil
}
