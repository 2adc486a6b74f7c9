package tui

import (
	"fmt"
	"strings"

	"codeberg.org/antivibe/antivibe/internal/hints"
	"codeberg.org/antivibe/antivibe/internal/logger"
	"codeberg.org/antivibe/antivibe/internal/render"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	msgNoSelection  = "Please select some code first!"
	msgAnalyzeStub  = "Code analysis feature coming soon!"
	msgThinking     = "Antivibe.ai is thinking..."
	defaultHTMLPath = "antivibe-hint.html"
)

// creates the app. the client is shared for the lifetime of the program;
// warnings is where its notifier delivers (may be nil).
func NewApp(client hints.Service, warnings <-chan string, opts Options) *Model {
	code := textarea.New()
	code.Placeholder = "paste or type the code you want a hint for..."
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.SetValue(opts.Code)

	problem := textinput.New()
	problem.Placeholder = `e.g., "Find two numbers that add up to target"`
	problem.Prompt = "> "
	problem.CharLimit = 0

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = infoStyle

	htmlPath := opts.HTMLPath
	if htmlPath == "" {
		htmlPath = defaultHTMLPath
	}

	m := &Model{
		state:    StateMenu,
		client:   client,
		warnings: warnings,
		style:    opts.Style,
		htmlPath: htmlPath,
		menu:     NewMenu(),
		code:     code,
		levels:   hints.Levels(),
		problem:  problem,
		spinner:  spin,
		viewport: viewport.New(defaultWidth, defaultHeight-6),
	}

	m.resize(defaultWidth, defaultHeight)

	return m
}

func (m *Model) Init() tea.Cmd {
	return waitForWarning(m.warnings)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.state == StateMenu {
				return m, tea.Quit
			}

			m.toMenu()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case WarningMsg:
		m.notice = &notice{kind: noticeWarn, text: msg.Message}
		return m, waitForWarning(m.warnings)

	case ErrorMsg:
		m.notice = &notice{kind: noticeError, text: msg.err.Error()}
		return m, nil

	case ConnectionMsg:
		if msg.ok {
			m.notice = &notice{kind: noticeInfo, text: "hint backend is reachable"}
		} else {
			m.notice = &notice{kind: noticeWarn, text: "hint backend is not reachable, hints will use the fallback"}
		}

		return m, nil

	case SavedMsg:
		if msg.err != nil {
			m.notice = &notice{kind: noticeError, text: msg.err.Error()}
		} else {
			m.notice = &notice{kind: noticeInfo, text: "hint panel written to " + msg.path}
		}

		return m, nil

	case runCommandMsg:
		return m, m.runCommand(msg.name)

	case HintResultMsg:
		return m, m.showResult(msg)
	}

	switch m.state {
	case StateMenu:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case StateCode:
		return m, m.updateCode(msg)

	case StateLevel:
		return m, m.updateLevel(msg)

	case StateProblem:
		return m, m.updateProblem(msg)

	case StateLoading:
		return m, m.updateLoading(msg)

	case StateResult:
		return m, m.updateResult(msg)
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	switch m.state {
	case StateMenu:
		b.WriteString(m.menu.View())

	case StateCode:
		b.WriteString(commandStyle.Render("select code"))
		b.WriteString("\n\n")
		b.WriteString(m.code.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[Ctrl+S: Use selection] [Esc: Cancel]"))

	case StateLevel:
		b.WriteString(commandStyle.Render("Select hint level (higher numbers give more specific hints)"))
		b.WriteString("\n\n")

		for i, level := range m.levels {
			if i == m.cursor {
				b.WriteString(optionSelectedStyle.Render("> " + level.Label()))
			} else {
				b.WriteString(optionStyle.Render("  " + level.Label()))
			}

			b.WriteString("\n")
		}

		b.WriteString(helpStyle.Render("[Up/Down: Move] [Enter: Select] [Esc: Cancel]"))

	case StateProblem:
		b.WriteString(commandStyle.Render("Briefly describe the coding problem you're solving"))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(m.problem.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[Enter: Ask for a hint] [Esc: Cancel]"))

	case StateLoading:
		b.WriteString("\n  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render(msgThinking))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[Esc: Dismiss]"))

	case StateResult:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[Up/Down: Scroll] [H: Save HTML] [Esc: Back]"))
	}

	if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(noticeView(*m.notice))
	}

	return b.String()
}

func (m *Model) runCommand(name string) tea.Cmd {
	m.notice = nil

	switch name {
	case cmdHint:
		m.state = StateCode
		return m.code.Focus()

	case cmdAnalyze:
		m.notice = &notice{kind: noticeInfo, text: msgAnalyzeStub}
		return nil

	case cmdPing:
		return pingCmd(m.client)
	}

	return nil
}

func (m *Model) updateCode(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.toMenu()
			return nil

		case tea.KeyCtrlS:
			m.code.Blur()

			if strings.TrimSpace(m.code.Value()) == "" {
				m.toMenu()
				m.notice = &notice{kind: noticeWarn, text: msgNoSelection}
				return nil
			}

			m.cursor = 0
			m.state = StateLevel
			return nil
		}
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)

	return cmd
}

func (m *Model) updateLevel(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "esc":
		m.toMenu()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case "1", "2", "3", "4":
		m.cursor = int(hints.ParseLevel(key.String())) - 1

	case "enter":
		m.level = m.levels[m.cursor]
		m.problem.SetValue("")
		m.state = StateProblem
		return m.problem.Focus()
	}

	return nil
}

func (m *Model) updateProblem(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.toMenu()
			return nil

		case tea.KeyEnter:
			description := strings.TrimSpace(m.problem.Value())
			m.problem.Blur()

			// an empty description aborts silently
			if description == "" {
				m.toMenu()
				return nil
			}

			m.requestSeq++
			m.state = StateLoading

			req := hints.Request{
				Code:               m.code.Value(),
				ProblemDescription: description,
				HintLevel:          m.level,
			}

			logger.Debug("requesting hint", "hint_level", int(req.HintLevel), "seq", m.requestSeq)

			return tea.Batch(m.spinner.Tick, getHintCmd(m.client, m.requestSeq, req))
		}
	}

	var cmd tea.Cmd
	m.problem, cmd = m.problem.Update(msg)

	return cmd
}

func (m *Model) updateLoading(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		// the in-flight result will be discarded when it arrives
		m.requestSeq++
		m.toMenu()
		return nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return cmd
}

func (m *Model) updateResult(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.toMenu()
			return nil

		case "h":
			if m.result != nil {
				return saveHTMLCmd(m.htmlPath, *m.result)
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return cmd
}

func (m *Model) showResult(msg HintResultMsg) tea.Cmd {
	if m.state != StateLoading || msg.seq != m.requestSeq {
		logger.Debug("discarding stale hint result", "seq", msg.seq, "current", m.requestSeq)
		return nil
	}

	resp := msg.response
	m.result = &resp
	m.state = StateResult

	content, err := render.Terminal(resp, m.viewport.Width-2, m.style)
	if err != nil {
		logger.ErrorErr(err, "failed to render hint, showing markdown")
		content = render.Markdown(resp)
	}

	m.viewport.SetContent(content)
	m.viewport.GotoTop()

	return nil
}

func (m *Model) toMenu() {
	m.code.Blur()
	m.problem.Blur()
	m.state = StateMenu
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.code.SetWidth(max(20, width-4))
	m.code.SetHeight(max(5, height-10))
	m.problem.Width = max(20, width-10)
	m.viewport.Width = max(20, width)
	m.viewport.Height = max(5, height-4)
}

func noticeView(n notice) string {
	switch n.kind {
	case noticeWarn:
		return warnStyle.Render("! " + n.text)
	case noticeError:
		return errorStyle.Render(fmt.Sprintf("Error: %s", n.text))
	default:
		return infoStyle.Render(n.text)
	}
}
