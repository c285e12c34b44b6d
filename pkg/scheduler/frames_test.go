package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewTickerInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{1, time.Second},
		{0, time.Second / DefaultFPS},
		{-5, time.Second / DefaultFPS},
	}
	for _, tt := range tests {
		tk := NewTicker(tt.fps)
		if got := tk.Interval(); got != tt.want {
			t.Errorf("NewTicker(%d).Interval() = %v, want %v", tt.fps, got, tt.want)
		}
		tk.Stop()
	}
}

func TestTickerNextCancelled(t *testing.T) {
	tk := NewTicker(1)
	defer tk.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tk.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next on cancelled ctx = %v, want context.Canceled", err)
	}
}

func TestTickerNext(t *testing.T) {
	tk := NewTicker(1000)
	defer tk.Stop()
	for i := 0; i < 3; i++ {
		if err := tk.Next(context.Background()); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
}

func TestImmediate(t *testing.T) {
	if err := Immediate().Next(context.Background()); err != nil {
		t.Errorf("Immediate().Next() = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Immediate().Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Immediate().Next(cancelled) = %v", err)
	}
}

func TestChannelFrames(t *testing.T) {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	frames := Channel(ch)
	if err := frames.Next(context.Background()); err != nil {
		t.Fatalf("Next: %v", err)
	}
	close(ch)
	if err := frames.Next(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("Next after close = %v, want context.Canceled", err)
	}
}
