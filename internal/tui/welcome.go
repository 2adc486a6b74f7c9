package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cmdHint    = "hint"
	cmdAnalyze = "analyze"
	cmdPing    = "ping"
	cmdQuit    = "quit"
)

// returns a new command menu
func NewMenu() *Menu {
	return &Menu{
		commands: []Command{
			{Name: cmdHint, Description: "get a hint for the selected code"},
			{Name: cmdAnalyze, Description: "analyze the selected code"},
			{Name: cmdPing, Description: "check that the hint backend is reachable"},
			{Name: cmdQuit, Description: "exit antivibe"},
		},
	}
}

func (m *Menu) Update(msg tea.Msg) (*Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		return m, m.executeCommand()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(key.Runes)
	}

	return m, nil
}

func (m *Menu) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("hints that teach instead of solving"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		line := fmt.Sprintf("  %s %s",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> ") + inputStyle.Render(m.input+"_"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Menu) executeCommand() tea.Cmd {
	cmd := strings.ToLower(strings.TrimSpace(m.input))
	m.input = ""

	switch cmd {
	case "":
		return nil

	case cmdQuit:
		return tea.Quit

	case cmdHint, cmdAnalyze, cmdPing:
		return func() tea.Msg {
			return runCommandMsg{name: cmd}
		}

	default:
		return func() tea.Msg {
			return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
		}
	}
}
