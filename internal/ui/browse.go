package ui

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/repols/repols/internal/repolist"
	"github.com/repols/repols/internal/scan"
	"github.com/repols/repols/internal/ui/static"
	"github.com/repols/repols/internal/ui/styles"
)

// BrowseParams configures the interactive repository browser.
type BrowseParams struct {
	Repos   []scan.Repo
	Session *repolist.Session
	Widths  map[string]int

	// Scan re-runs repository discovery. Style switches and refreshes
	// rescan before rebuilding rows.
	Scan func() []scan.Repo
	// Build computes display rows for the given style, typically
	// sorting them the way the plain listing would.
	Build func(style repolist.Style, repos []scan.Repo) []repolist.Row
}

// BrowseResult contains the result of a browse session.
type BrowseResult struct {
	Repo      scan.Repo
	Selected  bool
	Cancelled bool
}

// rowsMsg delivers a finished rebuild back to the model.
type rowsMsg struct {
	repos []scan.Repo
	rows  []repolist.Row
}

// browseModel is the bubbletea model for the repository browser.
type browseModel struct {
	params    BrowseParams
	repos     []scan.Repo
	rows      []repolist.Row
	cursor    int
	selected  *scan.Repo
	cancelled bool
	done      bool
	loading   bool
	height    int
}

func newBrowseModel(params BrowseParams) *browseModel {
	m := &browseModel{
		params: params,
		repos:  params.Repos,
		height: 24,
	}
	m.rows = params.Build(params.Session.Current(), m.repos)
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case rowsMsg:
		m.repos = msg.repos
		m.rows = msg.rows
		m.loading = false
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			if m.cursor < len(m.rows) {
				repo := m.rows[m.cursor].Repo
				m.selected = &repo
				m.done = true
				return m, tea.Quit
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case "home":
			m.cursor = 0

		case "end":
			m.cursor = max(0, len(m.rows)-1)

		case "s":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.refreshCmd(m.params.Session.Cycle())

		case "r":
			if m.loading || m.params.Scan == nil {
				return m, nil
			}
			m.loading = true
			return m, m.refreshCmd(m.params.Session.Current())
		}
	}

	return m, nil
}

// refreshCmd rediscovers repositories and rebuilds rows off the update
// loop. Discovery and naming run from scratch on every refresh; the
// held repo set is reused only when no scan function is wired.
func (m *browseModel) refreshCmd(style repolist.Style) tea.Cmd {
	scanFn, build, repos := m.params.Scan, m.params.Build, m.repos
	return func() tea.Msg {
		if scanFn != nil {
			repos = scanFn()
		}
		return rowsMsg{repos: repos, rows: build(style, repos)}
	}
}

func (m *browseModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder

	b.WriteString(styles.Bold.Render("Repositories"))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("style: %s • %d repositories",
		m.params.Session.Current().Name, len(m.rows))))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No repositories found"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	if m.loading {
		b.WriteString(styles.MutedStyle.Render("Refreshing..."))
	} else {
		b.WriteString(styles.MutedStyle.Render("↑/↓ navigate • s style • r refresh • enter status • q quit"))
	}

	return tea.NewView(b.String())
}

// renderRows renders the table and marks the cursor row. The full
// table is rendered each time so column widths stay stable while
// scrolling; only the visible line range is shown.
func (m *browseModel) renderRows() string {
	cols, err := repolist.Columns(m.params.Session.Current().Columns)
	if err != nil {
		return styles.ErrorStyle.Render("  " + err.Error() + "\n")
	}

	table := static.RenderRepoTable(cols, m.rows, m.params.Widths)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) == 0 {
		return ""
	}

	header, body := lines[0], lines[1:]
	start, end := m.visibleRange(len(body))

	var b strings.Builder
	b.WriteString("  " + header + "\n")
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(styles.AccentStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(body[i])
		b.WriteString("\n")
	}

	if len(body) > end-start {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(body))))
		b.WriteString("\n")
	}

	return b.String()
}

// visibleRange computes the scroll window over n rows, keeping the
// cursor centered once the list outgrows the terminal.
func (m *browseModel) visibleRange(n int) (int, int) {
	// Header, status line, help line and margins.
	maxRows := m.height - 7
	if maxRows < 3 {
		maxRows = 3
	}
	if n <= maxRows {
		return 0, n
	}

	start := m.cursor - maxRows/2
	if start < 0 {
		start = 0
	}
	end := start + maxRows
	if end > n {
		end = n
		start = end - maxRows
	}
	return start, end
}

// Browse runs the interactive repository browser. The TUI renders to
// stderr so stdout remains available for piping. Selecting a row
// returns its repository; q, esc and ctrl+c cancel.
func Browse(params BrowseParams) (*BrowseResult, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newBrowseModel(params),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(*browseModel)
	if m.cancelled || m.selected == nil {
		return &BrowseResult{Cancelled: true}, nil
	}
	return &BrowseResult{Repo: *m.selected, Selected: true}, nil
}
