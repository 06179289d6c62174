// Package tui renders the portfolio in a terminal. It drives the same
// pipeline view state as the web server: every key press maps to one
// transition and View redraws from the resulting state.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/guna-thota/portfolio/internal/pipeline"
	"github.com/guna-thota/portfolio/internal/portfolio"
)

// CopyConfirmation is how long "Copied!" stays visible.
const CopyConfirmation = 1200 * time.Millisecond

// copyExpiredMsg hides the copy confirmation it was scheduled for. A newer
// copy bumps the sequence, so an older timer cannot hide the newer message.
type copyExpiredMsg struct{ seq int }

// Model is copied on every Update. All copies share one view controller,
// which is safe because bubbletea runs a single event loop.
type Model struct {
	view     *pipeline.Controller
	profile  portfolio.Profile
	projects []portfolio.Project
	cursor   int
	overlay  bool

	copied  bool
	copySeq int

	width int

	writeClipboard func(string) error
	log            *zap.Logger
}

func NewModel(profile portfolio.Profile, log *zap.Logger) Model {
	log = log.Named("tui")
	view := pipeline.NewController(pipeline.NewViewState())
	view.Subscribe(func(v pipeline.ViewState) {
		log.Info("view state", zap.Stringer("stage", v.Stage), zap.Stringer("mode", v.Mode))
	})
	return Model{
		view:           view,
		profile:        profile,
		projects:       portfolio.Projects(),
		writeClipboard: clipboard.WriteAll,
		log:            log,
	}
}

// State exposes the current view state.
func (m Model) State() pipeline.ViewState { return m.view.State() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case copyExpiredMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.overlay {
		switch key {
		case "esc", "enter", "q":
			m.overlay = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		if prev := m.State().Stage - 1; prev.Valid() {
			m.view.Select(prev)
		}
	case "right", "l":
		if next := m.State().Stage + 1; next.Valid() {
			m.view.Select(next)
		}
	case "1", "2", "3", "4", "5", "6":
		m.view.Select(pipeline.Stages()[int(key[0]-'1')])

	case "tab", "m":
		m.view.Toggle()
	case "r":
		m.view.SetMode(pipeline.ModeSummary)
	case "e":
		m.view.SetMode(pipeline.ModeDetail)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.projects) > 0 {
			m.overlay = true
		}

	// Copy e-mail to clipboard; failure shows nothing
	case "c":
		if err := m.writeClipboard(m.profile.Email); err != nil {
			m.log.Debug("clipboard write failed", zap.Error(err))
			return m, nil
		}
		m.copied = true
		m.copySeq++
		seq := m.copySeq
		return m, tea.Tick(CopyConfirmation, func(time.Time) tea.Msg {
			return copyExpiredMsg{seq: seq}
		})
	}
	return m, nil
}

func (m Model) View() string {
	if m.overlay {
		return m.architectureView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.profile.Name))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.profile.Role + " · " + m.profile.Tagline))
	b.WriteString("\n\n")

	visible := pipeline.VisibleContent(m.State())
	b.WriteString(headlineStyle.Render(visible.Headline))
	b.WriteString("   ")
	b.WriteString(m.modeSwitch())
	b.WriteString("\n\n")

	b.WriteString(m.stageRow())
	b.WriteString("\n")
	b.WriteString(m.contentPanel(visible))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Featured Projects"))
	b.WriteString("\n")
	for i, p := range m.projects {
		prefix := "  "
		name := p.Name
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, name, subtleStyle.Render(strings.Join(p.Tech, ", ")))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Contact"))
	b.WriteString("\n")
	b.WriteString(m.profile.Email)
	if m.copied {
		b.WriteString("  " + copiedStyle.Render("Copied!"))
	}
	b.WriteString("\n")
	for _, l := range m.profile.Links {
		fmt.Fprintf(&b, "%s: %s\n", l.Label, l.URL)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ or 1-6 stage · m toggle view · ↑/↓ project · enter diagram · c copy email · q quit"))
	return b.String()
}

func (m Model) modeSwitch() string {
	parts := make([]string, 0, 2)
	for _, mode := range []pipeline.Mode{pipeline.ModeSummary, pipeline.ModeDetail} {
		if mode == m.State().Mode {
			parts = append(parts, activeMode.Render(mode.Label()))
		} else {
			parts = append(parts, inactiveMode.Render(mode.Label()))
		}
	}
	return strings.Join(parts, " | ")
}

func (m Model) stageRow() string {
	var cells []string
	for i, s := range pipeline.Stages() {
		if i > 0 {
			cells = append(cells, arrowStyle.Render(" → "))
		}
		style := stageStyle
		if s == m.State().Stage {
			style = selectedStageStyle
		}
		cells = append(cells, style.Render(s.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (m Model) contentPanel(v pipeline.Visible) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Heading.Title))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(v.Heading.Subtitle))
	b.WriteString("\n")

	if v.Summary != nil {
		for _, h := range v.Summary.Highlights {
			b.WriteString("\n• " + h)
		}
	}
	if v.Detail != nil {
		b.WriteString("\n" + sectionStyle.Render("What I Did"))
		for _, w := range v.Detail.What {
			b.WriteString("\n• " + w)
		}
		b.WriteString("\n\n" + sectionStyle.Render("Tech") + "\n")
		tags := make([]string, 0, len(v.Detail.Tech))
		for _, t := range v.Detail.Tech {
			tags = append(tags, tagStyle.Render(t))
		}
		b.WriteString(strings.Join(tags, " "))
		b.WriteString("\n\n" + sectionStyle.Render("Reliability Tricks"))
		for _, r := range v.Detail.Reliability {
			b.WriteString("\n• " + r)
		}
	}

	style := panelStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(b.String())
}

func (m Model) architectureView() string {
	p := m.projects[m.cursor]

	rows := map[int][]portfolio.ArchNode{}
	var order []int
	for _, n := range p.Nodes {
		if _, ok := rows[n.Row]; !ok {
			order = append(order, n.Row)
		}
		rows[n.Row] = append(rows[n.Row], n)
	}
	sort.Ints(order)

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name + " architecture"))
	b.WriteString("\n\n")
	for _, r := range order {
		nodes := rows[r]
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].Column < nodes[j].Column })
		var cells []string
		for _, n := range nodes {
			cells = append(cells, stageStyle.Render(n.Label))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cells...))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, e := range p.Edges {
		from, _ := p.Node(e.From)
		to, _ := p.Node(e.To)
		b.WriteString(from.Label + arrowStyle.Render(" → ") + to.Label + "\n")
	}
	b.WriteString("\n")
	for _, metric := range p.Metrics {
		b.WriteString(copiedStyle.Render(metric.Value) + " " + metric.Label + "  ")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc close"))
	return overlayStyle.Render(b.String())
}

// Run starts the full-screen program and blocks until the user quits.
func Run(profile portfolio.Profile, log *zap.Logger) error {
	p := tea.NewProgram(NewModel(profile, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
