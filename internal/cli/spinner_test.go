package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerStop(t *testing.T) {
	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "Exporting...")
	s.Start()
	time.Sleep(120 * time.Millisecond)
	s.Stop()
	s.Stop()

	if !strings.Contains(out.String(), "Exporting...") {
		t.Errorf("spinner output = %q, want message", out.String())
	}
	if !s.Cancelled() {
		t.Error("a stopped spinner reports its context as done")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerTo(ctx, &syncBuffer{}, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerHooksUpdateMessage(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, "Exporting")
	h := spinnerHooks{spinner: s, prefix: "Exporting"}
	h.OnStageStart(context.Background(), "run", "merge-sort")

	if got := s.Message(); got != "Exporting merge-sort..." {
		t.Errorf("Message() = %q, want %q", got, "Exporting merge-sort...")
	}
}
