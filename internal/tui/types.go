package tui

import (
	"codeberg.org/antivibe/antivibe/internal/hints"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// represents the current state of the TUI
type AppState int

const (
	StateMenu AppState = iota
	StateCode
	StateLevel
	StateProblem
	StateLoading
	StateResult
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeWarn
	noticeError
)

// a non-blocking notification line
type notice struct {
	kind noticeKind
	text string
}

// main TUI application model
type Model struct {
	state    AppState
	width    int
	height   int
	client   hints.Service
	warnings <-chan string
	style    string
	htmlPath string
	notice   *notice
	menu     *Menu

	code     textarea.Model
	levels   []hints.Level
	cursor   int
	level    hints.Level
	problem  textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	// identifies the in-flight request; results for older ones are dropped
	requestSeq int
	result     *hints.Response
}

// configures the app
type Options struct {
	// code preloaded into the selection, like an editor selection
	Code string

	// glamour style for the result panel
	Style string

	// where "h" writes the HTML panel
	HTMLPath string
}

// command menu model
type Menu struct {
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}

// sent when a hint request completes
type HintResultMsg struct {
	seq      int
	response hints.Response
}

// sent when the client surfaces a warning
type WarningMsg struct {
	Message string
}

// sent when the health probe completes
type ConnectionMsg struct {
	ok bool
}

// sent after the HTML panel was written
type SavedMsg struct {
	path string
	err  error
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to start a menu command
type runCommandMsg struct {
	name string
}
