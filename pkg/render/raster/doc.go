// Package raster draws disparity-wheel frames on a software canvas.
//
// [Canvas] implements the scheduler's renderer contract on a gogpu/gg
// context: every snapshot clears the canvas and plots one pixel (or a small
// square) per element at its wheel position, coloured by value.
//
//	canvas := raster.New(800, 800, 1500)
//	sched := scheduler.New(scheduler.NewTicker(60), canvas, logger)
//
// [Exporter] wraps a canvas and writes every k-th frame to a numbered PNG
// file, which is how animations are turned into videos:
//
//	exp, err := raster.NewExporter(canvas, "frames", 2)
//	...
//	ffmpeg -framerate 60 -i frames/frame-%06d.png out.mp4
package raster
