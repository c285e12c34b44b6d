package raster

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// FramePattern names exported frames inside the output directory.
const FramePattern = "frame-%06d.png"

// Exporter renders onto a Canvas and saves every k-th frame as PNG.
type Exporter struct {
	canvas  *Canvas
	dir     string
	every   int
	seen    int
	written int
	pending bool
}

// NewExporter creates dir if needed and returns an exporter saving every
// k-th frame of canvas. Values of every below 1 save every frame.
func NewExporter(canvas *Canvas, dir string, every int) (*Exporter, error) {
	if every < 1 {
		every = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}
	return &Exporter{canvas: canvas, dir: dir, every: every}, nil
}

// Render draws s and saves the frame if it is due.
func (e *Exporter) Render(s snapshot.Snapshot) error {
	if err := e.canvas.Render(s); err != nil {
		return err
	}
	e.seen++
	if (e.seen-1)%e.every != 0 {
		e.pending = true
		return nil
	}
	return e.save()
}

// Flush saves the last rendered frame if it was skipped, so that an
// export always ends on the final state.
func (e *Exporter) Flush() error {
	if !e.pending {
		return nil
	}
	return e.save()
}

func (e *Exporter) save() error {
	path := filepath.Join(e.dir, fmt.Sprintf(FramePattern, e.written))
	if err := e.canvas.SavePNG(path); err != nil {
		return fmt.Errorf("save frame %d: %w", e.written, err)
	}
	e.written++
	e.pending = false
	return nil
}

// Written returns the number of PNG files saved.
func (e *Exporter) Written() int { return e.written }

// Dir returns the output directory.
func (e *Exporter) Dir() string { return e.dir }
