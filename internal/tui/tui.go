package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bankprobe/internal/probe"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// probeDoneMsg carries one completed probe's display text.
type probeDoneMsg struct {
	result string
}

// Model is the single screen: a title, a trigger hint, and a text box with
// the latest probe result. The box starts blank and is wholly replaced each
// time a probe completes.
type Model struct {
	prober   probe.Runner
	title    string
	result   string
	checking bool
	width    int
}

func New(p probe.Runner, title string) Model {
	return Model{prober: p, title: title}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", " ":
			// Each press fires an independent probe; whichever finishes
			// last is what ends up on screen.
			m.checking = true
			return m, checkCmd(m.prober)
		}
	case probeDoneMsg:
		m.result = msg.result
		m.checking = false
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func checkCmd(p probe.Runner) tea.Cmd {
	return func() tea.Msg {
		return probeDoneMsg{result: p.Run(context.Background())}
	}
}

func (m Model) View() string {
	hint := "enter: check API • q: quit"
	if m.checking {
		hint = "checking… • q: quit"
	}

	box := boxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		"",
		box.Render(m.result),
		"",
		hintStyle.Render(hint),
	) + "\n"
}

// Run starts the program on the terminal and blocks until quit.
func Run(p probe.Runner, title string) error {
	_, err := tea.NewProgram(New(p, title), tea.WithAltScreen()).Run()
	return err
}
