package raster

import (
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"

	"github.com/matzehuels/sortwheel/pkg/render/wheel"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// Colour parameters shared by every frame.
const (
	Saturation = 1.0
	Lightness  = 0.5
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithBackground sets the clear colour (default black).
func WithBackground(c gg.RGBA) Option {
	return func(cv *Canvas) { cv.background = c }
}

// WithPointSize draws each element as a size×size square (default 1).
func WithPointSize(size int) Option {
	return func(cv *Canvas) {
		if size > 0 {
			cv.point = size
		}
	}
}

// Canvas renders snapshots as disparity wheels. It is safe to read the
// current frame from another goroutine while the scheduler renders.
type Canvas struct {
	mu         sync.Mutex
	dc         *gg.Context
	wheel      wheel.Wheel
	background gg.RGBA
	point      int
	frames     int
	palette    []gg.RGBA
}

// New creates a width×height canvas for an n-element sequence.
func New(width, height, n int, opts ...Option) *Canvas {
	c := &Canvas{
		dc:         gg.NewContext(width, height),
		wheel:      wheel.New(width, height, n),
		background: gg.Black,
		point:      1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.palette = make([]gg.RGBA, max(n, 0))
	for v := range c.palette {
		c.palette[v] = gg.HSL(c.wheel.Hue(v), Saturation, Lightness)
	}
	c.dc.ClearWithColor(c.background)
	return c
}

// Render draws s. The snapshot is read, never retained.
func (c *Canvas) Render(s snapshot.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dc.ClearWithColor(c.background)
	s.Each(func(pos, value int) {
		p := c.wheel.Point(pos, value)
		c.plot(p, c.colour(value))
	})
	c.frames++
	return nil
}

func (c *Canvas) colour(value int) gg.RGBA {
	if value >= 0 && value < len(c.palette) {
		return c.palette[value]
	}
	return gg.HSL(c.wheel.Hue(value), Saturation, Lightness)
}

func (c *Canvas) plot(p wheel.Point, col gg.RGBA) {
	if c.point == 1 {
		c.dc.SetPixel(p.X, p.Y, col)
		return
	}
	off := c.point / 2
	for dy := 0; dy < c.point; dy++ {
		for dx := 0; dx < c.point; dx++ {
			c.dc.SetPixel(p.X-off+dx, p.Y-off+dy, col)
		}
	}
}

// Frames returns the number of snapshots rendered so far.
func (c *Canvas) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Image returns a copy of the current frame.
func (c *Canvas) Image() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.Image()
}

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.EncodePNG(w)
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc.SavePNG(path)
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}
