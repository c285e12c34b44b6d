// Package render groups the drawing side of sortwheel.
//
// # Overview
//
// Every renderer consumes [snapshot.Snapshot] values handed out by the
// scheduler and draws each (position, value) pair as one point. The
// subpackages split geometry from pixels:
//
//   - Disparity-wheel geometry (in [wheel] subpackage)
//   - Software canvas and PNG frames (in [raster] subpackage)
//
// # Wheel Geometry
//
// The [wheel] subpackage places an element on a circle by its index and
// pulls it towards the centre by how far it is from its sorted position.
// A sorted sequence draws a full ring; a shuffled one a noisy disc.
//
//	w := wheel.New(800, 800, n)
//	p := w.Point(index, value)
//	hue := wheel.Hue(value, n)
//
// # Raster Output
//
// The [raster] subpackage draws snapshots on a gogpu/gg context. A
// [raster.Canvas] is a scheduler renderer; [raster.Exporter] wraps it to
// write every k-th frame as a PNG file.
//
//	canvas := raster.New(800, 800, n)
//	exp, err := raster.NewExporter(canvas, "frames", 2)
//
// The terminal renderer used by `sortwheel run` lives in internal/cli and
// reuses [wheel] on a character grid.
package render
