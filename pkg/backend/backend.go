// Package backend abstracts the producer of assistant replies behind the
// chat surface. The UI only ever sees tea.Msg values; a backend turns one
// prompt into one eventual ReplyMsg.
package backend

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Backend produces a single reply for a submitted prompt. Start returns a
// tea.Cmd that blocks until the reply is ready (or the run is cancelled) so
// the UI event loop stays free while the reply is in flight.
type Backend interface {
	// Start begins a reply run. It errors if a run is already in flight.
	Start(ctx context.Context, prompt string) (tea.Cmd, error)
	// Interrupt asks the current run to stop.
	Interrupt()
	// Kill cancels the current run and drops its state. Safe to call on
	// teardown whether or not a run is in flight.
	Kill()
	// IsFinished reports whether no run is in flight.
	IsFinished() bool
}

// ReplyMsg carries a finished assistant reply into the UI.
type ReplyMsg struct {
	Text string
}
