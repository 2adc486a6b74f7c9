package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"codeberg.org/antivibe/antivibe/internal/config"
	"codeberg.org/antivibe/antivibe/internal/hints"
	"codeberg.org/antivibe/antivibe/internal/logger"
	"codeberg.org/antivibe/antivibe/internal/render"
	"codeberg.org/antivibe/antivibe/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sanity-io/litter"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	defaultWidth = 80
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")).Bold(true)

// dispatches a subcommand and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	name := "tui"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		name, args = args[0], args[1:]
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	switch name {
	case "tui":
		return runTUI(cfg, args, stderr)
	case "hint":
		return runHint(cfg, args, stdin, stdout, stderr)
	case "analyze":
		fmt.Fprintln(stdout, "Code analysis feature coming soon!")
		return exitOK
	case "ping":
		return runPing(cfg, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", name, usage)
		return exitUsage
	}
}

// the client is built once per process and shared by everything that
// asks for hints
func newClient(cfg *config.Config, notifier hints.Notifier) *hints.Client {
	var opts []hints.Option
	if notifier != nil {
		opts = append(opts, hints.WithNotifier(notifier))
	}

	return hints.New(hints.Config{
		BaseURL:           cfg.APIURL,
		Timeout:           cfg.Timeout,
		LenientDecoding:   cfg.LenientDecoding,
		RequestsPerSecond: cfg.ClientRPS,
	}, opts...)
}

func runHint(cfg *config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := config.ParseHintFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	level := hints.ParseLevel(flags.Level)
	if !level.Valid() {
		fmt.Fprintf(stderr, "error: -level must be between 1 and 4, got %q\n", flags.Level)
		return exitUsage
	}

	code, err := readCode(flags.File, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	if strings.TrimSpace(string(code)) == "" {
		fmt.Fprintln(stderr, warnStyle.Render("Please select some code first!"))
		return exitUsage
	}

	logger.Init(cfg.Environment, stderr)

	client := newClient(cfg, hints.NotifierFunc(func(message string) {
		fmt.Fprintln(stderr, warnStyle.Render(message))
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp := client.GetHint(ctx, hints.Request{
		Code:               string(code),
		ProblemDescription: flags.Problem,
		ErrorMessage:       flags.ErrorMessage,
		HintLevel:          level,
	})

	if flags.Dump {
		fmt.Fprintln(stdout, litter.Sdump(resp))
	} else {
		width, style := terminalFor(stdout)

		out, err := render.Terminal(resp, width, style)
		if err != nil {
			logger.ErrorErr(err, "failed to render hint, printing markdown")
			out = render.Markdown(resp)
		}

		fmt.Fprint(stdout, out)
	}

	if flags.HTMLPath != "" {
		data, err := render.HTML(resp)
		if err == nil {
			err = os.WriteFile(flags.HTMLPath, data, 0o600)
		}

		if err != nil {
			fmt.Fprintf(stderr, "error: failed to write %s: %v\n", flags.HTMLPath, err)
			return exitError
		}
	}

	return exitOK
}

func runPing(cfg *config.Config, stdout, stderr io.Writer) int {
	logger.Init(cfg.Environment, stderr)

	client := newClient(cfg, nil)

	if !client.TestConnection(context.Background()) {
		fmt.Fprintf(stdout, "hint backend at %s is not reachable\n", client.BaseURL())
		return exitError
	}

	fmt.Fprintf(stdout, "hint backend at %s is reachable\n", client.BaseURL())

	return exitOK
}

func runTUI(cfg *config.Config, args []string, stderr io.Writer) int {
	flags, err := config.ParseTUIFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	var code []byte
	if flags.File != "" {
		if code, err = os.ReadFile(flags.File); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
	}

	// the terminal belongs to the interface, so logs go to a file
	logFile, err := os.OpenFile(flags.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to open log file: %v\n", err)
		return exitError
	}
	defer logFile.Close()

	logger.Init(cfg.Environment, logFile)

	notifier := tui.NewNotifier()
	client := newClient(cfg, notifier)

	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}

	app := tui.NewApp(client, notifier.Warnings(), tui.Options{
		Code:  string(code),
		Style: style,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.ErrorErr(err, "interface exited with an error")
		fmt.Fprintf(stderr, "error running antivibe: %v\n", err)
		return exitError
	}

	return exitOK
}

// reads the code to send; "-" means stdin
func readCode(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		code, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return code, nil
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return code, nil
}

// picks the wrap width and glamour style for w
func terminalFor(w io.Writer) (int, string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return defaultWidth, "notty"
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		width = defaultWidth
	}

	return width, ""
}
