package viz

import (
	"testing"

	"github.com/san-kum/sortviz/internal/step"
)

func TestMailbox_KeepsLatest(t *testing.T) {
	b := newMailbox()
	b.Render(step.Frame{Step: 1})
	b.Render(step.Frame{Step: 2})

	msg, ok := b.take()
	if !ok || msg.frame.Step != 2 {
		t.Fatalf("expected latest frame 2, got %+v ok=%v", msg.frame, ok)
	}
	if _, ok := b.take(); ok {
		t.Error("frame should be consumed")
	}
}

func TestMailbox_ResetInvalidates(t *testing.T) {
	b := newMailbox()
	b.Render(step.Frame{Step: 1})
	before := b.Epoch()
	b.Reset()

	if b.Epoch() != before+1 {
		t.Errorf("expected epoch %d, got %d", before+1, b.Epoch())
	}
	if _, ok := b.take(); ok {
		t.Error("reset should drop the pending frame")
	}
}

func TestMailbox_Wait(t *testing.T) {
	b := newMailbox()
	b.Render(step.Frame{Step: 7})

	msg, ok := b.wait()().(frameMsg)
	if !ok {
		t.Fatal("expected frameMsg")
	}
	if msg.frame.Step != 7 || msg.epoch != b.Epoch() {
		t.Errorf("unexpected message %+v", msg)
	}
}
