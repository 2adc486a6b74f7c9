package tui

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/antivibe/antivibe/internal/hints"
	"codeberg.org/antivibe/antivibe/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// asks the client for a hint; never fails
func getHintCmd(client hints.Service, seq int, req hints.Request) tea.Cmd {
	return func() tea.Msg {
		return HintResultMsg{
			seq:      seq,
			response: client.GetHint(context.Background(), req),
		}
	}
}

func pingCmd(client hints.Service) tea.Cmd {
	return func() tea.Msg {
		return ConnectionMsg{ok: client.TestConnection(context.Background())}
	}
}

// blocks until the client reports a warning
func waitForWarning(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}

		return WarningMsg{Message: msg}
	}
}

func saveHTMLCmd(path string, resp hints.Response) tea.Cmd {
	return func() tea.Msg {
		data, err := render.HTML(resp)
		if err != nil {
			return SavedMsg{path: path, err: err}
		}

		if err := os.WriteFile(path, data, 0o600); err != nil {
			return SavedMsg{path: path, err: fmt.Errorf("failed to write %s: %w", path, err)}
		}

		return SavedMsg{path: path}
	}
}
