package scheduler

import (
	"context"
	"time"
)

// DefaultFPS is the display rate used when none is configured.
const DefaultFPS = 60

// Frames paces resumptions. Next blocks until the next frame is due.
type Frames interface {
	Next(ctx context.Context) error
}

// Ticker is a wall-clock frame source.
type Ticker struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewTicker returns a frame source firing fps times per second.
// Non-positive rates fall back to DefaultFPS.
func NewTicker(fps int) *Ticker {
	if fps < 1 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return &Ticker{ticker: time.NewTicker(interval), interval: interval}
}

// Next waits for the next tick.
func (t *Ticker) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

// Interval returns the time between frames.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Stop releases the underlying ticker.
func (t *Ticker) Stop() { t.ticker.Stop() }

type immediate struct{}

// Immediate returns a frame source that never waits. Exports and tests use
// it to run computations as fast as they can render.
func Immediate() Frames { return immediate{} }

func (immediate) Next(ctx context.Context) error { return ctx.Err() }

// Channel is a frame source fed by an external display loop: every value
// received on the channel is one frame.
type Channel <-chan time.Time

// Next waits for the next value on the channel.
func (c Channel) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-c:
		if !ok {
			return context.Canceled
		}
		return nil
	}
}
