package viz

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/step"
)

type frameMsg struct {
	epoch int
	frame step.Frame
}

// mailbox is a step.Sink that keeps only the latest frame. Render never
// blocks, so the sorting goroutine is not held up by a slow terminal.
type mailbox struct {
	mu     sync.Mutex
	latest step.Frame
	full   bool
	epoch  int
	notify chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{notify: make(chan struct{}, 1)}
}

func (b *mailbox) Render(f step.Frame) {
	b.mu.Lock()
	b.latest = f
	b.full = true
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Reset drops any pending frame and invalidates frames already handed out.
func (b *mailbox) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.full = false
	b.latest = step.Frame{}
	b.epoch++
}

func (b *mailbox) Epoch() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.epoch
}

// take returns the pending frame, if any.
func (b *mailbox) take() (frameMsg, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.full {
		return frameMsg{}, false
	}
	b.full = false
	return frameMsg{epoch: b.epoch, frame: b.latest}, true
}

// wait is a tea.Cmd that delivers the next frame.
func (b *mailbox) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			<-b.notify
			if msg, ok := b.take(); ok {
				return msg
			}
		}
	}
}
