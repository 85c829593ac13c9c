package backend

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/chinwag/pkg/transcript"
)

// DefaultReplyDelay is how long the demo backend pretends to think.
const DefaultReplyDelay = 1200 * time.Millisecond

// EchoBackend is the synthetic reply producer. The prompt is ignored: every
// run yields transcript.DemoReplyText after a fixed delay. The delay waits on
// a cancellable context so a torn-down view never receives a stale reply.
//
// Each run carries a generation token; a cancelled run's pending tea.Cmd is
// superseded the moment a new run starts and can no longer touch its state.
type EchoBackend struct {
	delay time.Duration
	reply string

	mu        sync.Mutex
	isRunning bool
	cancel    context.CancelFunc
	run       uint64
}

var _ Backend = &EchoBackend{}

func NewEchoBackend(delay time.Duration) *EchoBackend {
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	return &EchoBackend{
		delay: delay,
		reply: transcript.DemoReplyText,
	}
}

func (e *EchoBackend) Start(ctx context.Context, prompt string) (tea.Cmd, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.isRunning {
		return nil, errors.New("echo backend is already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.isRunning = true
	e.run++
	run := e.run
	log.Debug().Str("prompt", prompt).Dur("delay", e.delay).Uint64("run", run).Msg("echo backend: run started")

	return func() tea.Msg {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			if ctx.Err() != nil || !e.finish(run) {
				return nil
			}
			return ReplyMsg{Text: e.reply}
		case <-ctx.Done():
			e.finish(run)
			log.Debug().Uint64("run", run).Msg("echo backend: run cancelled")
			return nil
		}
	}, nil
}

// finish clears the run's state, but only while this run still owns it. A
// closure outlived by Kill or by a newer run must not write back.
func (e *EchoBackend) finish(run uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run != run || !e.isRunning {
		return false
	}
	e.isRunning = false
	e.cancel = nil
	return true
}

func (e *EchoBackend) Interrupt() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
	} else {
		log.Warn().Msg("echo backend is not running")
	}
}

func (e *EchoBackend) Kill() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
		e.isRunning = false
	} else {
		log.Debug().Msg("echo backend is not running")
	}
}

func (e *EchoBackend) IsFinished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.isRunning
}
