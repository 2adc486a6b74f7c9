package tui

import "codeberg.org/antivibe/antivibe/internal/logger"

// delivers client warnings to the running program without blocking
// the request goroutine
type Notifier struct {
	ch chan string
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan string, 8)}
}

func (n *Notifier) Warn(message string) {
	select {
	case n.ch <- message:
	default:
		logger.Warn("dropped user warning, notification queue full", "message", message)
	}
}

func (n *Notifier) Warnings() <-chan string {
	return n.ch
}
