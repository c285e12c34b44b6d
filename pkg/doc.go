// Package pkg provides the core libraries for sortwheel sorting animations.
//
// # Overview
//
// Sortwheel animates in-place sorting algorithms by drawing the sequence
// between bounded slices of work. Algorithms are written as resumable
// computations; a scheduler advances one quantum per display frame and hands
// a snapshot to a renderer; a pipeline strings the stages of an animation
// together. The pkg directory is organized into four main areas:
//
//  1. [sorting] - Resumable algorithms (build, shuffle, eight sorts)
//  2. [scheduler] - Frame pacing (one quantum per frame, then render)
//  3. [pipeline] - Orchestration (build → shuffle → sort → pause → ...)
//  4. [render] - Geometry and drawing (disparity wheel, PNG canvas)
//
// # Architecture
//
// The typical data flow through sortwheel:
//
//	[sequence] (permutation 0..N-1)
//	         ↓
//	    [sorting] computation (Resume advances at most one quantum)
//	         ↓
//	    [snapshot] (layers + placement transforms)
//	         ↓
//	    [scheduler] Renderer (terminal, PNG frames, HTTP preview)
//
// # Quick Start
//
// Sort a shuffled sequence while writing every frame to disk:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/sortwheel/pkg/pipeline"
//	    "github.com/matzehuels/sortwheel/pkg/render/raster"
//	    "github.com/matzehuels/sortwheel/pkg/scheduler"
//	    "github.com/matzehuels/sortwheel/pkg/sorting"
//	)
//
//	// 1. Describe the animation
//	p := pipeline.New(
//	    pipeline.Build(500, 10),
//	    pipeline.Shuffle(10, 42),
//	    pipeline.Sort(sorting.HeapSort, 50),
//	)
//
//	// 2. Pick a renderer
//	canvas := raster.New(800, 800, p.Length())
//	frames, _ := raster.NewExporter(canvas, "frames", 1)
//
//	// 3. Run it as fast as possible
//	runner := pipeline.NewRunner(scheduler.Immediate(), frames, logger)
//	res, err := runner.Run(context.Background(), p)
//
// # Main Packages
//
// [sequence] - The permutation container with swap and invariant checks.
//
// [snapshot] - Read-only views of a running computation: one identity layer
// for plain sorts, one extra layer per bucket for bucket sort.
//
// [sorting] - Algorithms as explicit state machines. Every comparison, shift
// or swap is one unit; [sorting.New] looks up algorithms by id or alias.
//
// [scheduler] - Drives a computation frame by frame with [scheduler.Frames]
// (ticker, immediate or channel) and a [scheduler.Renderer].
//
// [pipeline] - Stages, plans built from options, TOML scripts and the
// runner used by every command.
//
// [config] - Settings from defaults, .sortwheel.toml and SORTWHEEL_* env.
//
// [observability] - Hook registry with a Prometheus implementation.
//
// [errors] - Coded errors shared by all packages.
//
// [render/wheel] - Disparity-wheel geometry.
//
// [render/raster] - gogpu/gg software canvas and PNG frame export.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/sorting/...            # Specific package
//
// [sequence]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/sequence
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/snapshot
// [sorting]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/sorting
// [sorting.New]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/sorting#New
// [scheduler]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/scheduler
// [scheduler.Frames]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/scheduler#Frames
// [scheduler.Renderer]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/scheduler#Renderer
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/errors
// [render]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/render
// [render/wheel]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/render/wheel
// [render/raster]: https://pkg.go.dev/github.com/matzehuels/sortwheel/pkg/render/raster
package pkg
