// Package wheel maps sequence elements onto a disparity wheel.
//
// Position i of an n-element sequence sits at angle i/(n/2)·π around the
// centre. The element's distance from the centre shrinks with its circular
// disparity, the distance between its value and the position it occupies.
// An element at home sits on the rim, so a sorted sequence draws a full
// circle and a shuffled one collapses towards the middle. Each value keeps
// a fixed hue around the colour wheel.
package wheel

import "math"

// RadiusFraction is the share of the smaller canvas side the wheel spans.
const RadiusFraction = 0.95

// Point is a pixel offset.
type Point struct {
	X, Y int
}

// Disparity returns the circular distance between value and index in an
// n-element sequence. It is at most n/2.
func Disparity(value, index, n int) int {
	d := index - value
	if d < 0 {
		d = -d
	}
	if 2*d > n {
		return n - d
	}
	return d
}

// Hue returns the hue in degrees [0, 360) assigned to value.
func Hue(value, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Floor(float64(value) * 360 / float64(n))
}

// Locate returns the position, relative to the wheel centre, of value
// stored at index. The y axis points down as on a raster.
func Locate(value, index, n int, radius float64) Point {
	if n <= 0 {
		return Point{}
	}
	half := float64(n) / 2
	distance := (half - float64(Disparity(value, index, n))) * radius / half
	angle := float64(index) / half * math.Pi
	return Point{
		X: int(math.Floor(distance * math.Cos(angle))),
		Y: int(math.Floor(distance * math.Sin(angle))),
	}
}

// Wheel fixes the geometry for one canvas and sequence length.
type Wheel struct {
	N      int
	Radius float64
	Center Point
}

// New returns the wheel for an n-element sequence drawn on a canvas of the
// given size.
func New(width, height, n int) Wheel {
	side := min(width, height)
	return Wheel{
		N:      n,
		Radius: float64(side) * RadiusFraction / 2,
		Center: Point{X: width / 2, Y: height / 2},
	}
}

// Point returns the absolute canvas position of value stored at index.
func (w Wheel) Point(index, value int) Point {
	p := Locate(value, index, w.N, w.Radius)
	return Point{X: w.Center.X + p.X, Y: w.Center.Y + p.Y}
}

// Hue returns the hue of value.
func (w Wheel) Hue(value int) float64 {
	return Hue(value, w.N)
}
