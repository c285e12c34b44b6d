// Package config loads sortwheel settings from defaults, an optional
// .sortwheel.toml file and SORTWHEEL_* environment variables.
package config

import (
	"time"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
	"github.com/matzehuels/sortwheel/pkg/scheduler"
)

// Default values not owned by the pipeline package.
const (
	DefaultFPS          = scheduler.DefaultFPS
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 800
	DefaultExportDir    = "frames"
	DefaultExportEvery  = 1
	DefaultServeAddr    = ":8080"

	maxCanvasSide = 8192
)

// Config holds every sortwheel setting.
type Config struct {
	Length     int           `mapstructure:"length"`
	FPS        int           `mapstructure:"fps"`
	Quantum    QuantumConfig `mapstructure:"quantum"`
	Pause      time.Duration `mapstructure:"pause"`
	Seed       uint64        `mapstructure:"seed"`
	Reshuffle  bool          `mapstructure:"reshuffle"`
	Algorithms []string      `mapstructure:"algorithms"`
	Bucket     BucketConfig  `mapstructure:"bucket"`
	Canvas     CanvasConfig  `mapstructure:"canvas"`
	Export     ExportConfig  `mapstructure:"export"`
	Serve      ServeConfig   `mapstructure:"serve"`
}

// QuantumConfig holds the units of work performed per frame by each kind
// of stage.
type QuantumConfig struct {
	Build   int `mapstructure:"build"`
	Shuffle int `mapstructure:"shuffle"`
	Sort    int `mapstructure:"sort"`
}

// BucketConfig tunes bucket sort. Zero size derives the width from count.
type BucketConfig struct {
	Size  int `mapstructure:"size"`
	Count int `mapstructure:"count"`
}

// CanvasConfig is the raster size in pixels.
type CanvasConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// ExportConfig controls PNG frame export.
type ExportConfig struct {
	Dir   string `mapstructure:"dir"`
	Every int    `mapstructure:"every"`
}

// ServeConfig controls the HTTP preview server.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if err := errors.ValidateLength(c.Length); err != nil {
		return err
	}
	if err := errors.ValidateFPS(c.FPS); err != nil {
		return err
	}
	for _, q := range []int{c.Quantum.Build, c.Quantum.Shuffle, c.Quantum.Sort} {
		if err := errors.ValidateQuantum(q); err != nil {
			return err
		}
	}
	if err := errors.ValidatePause(c.Pause); err != nil {
		return err
	}
	if c.Bucket.Size < 0 || c.Bucket.Count < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bucket size and count cannot be negative")
	}
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 || c.Canvas.Width > maxCanvasSide || c.Canvas.Height > maxCanvasSide {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas must be between 1x1 and %dx%d, got %dx%d",
			maxCanvasSide, maxCanvasSide, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Export.Every < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "export.every must be positive, got %d", c.Export.Every)
	}
	return nil
}

// PipelineOptions converts the settings into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Length:         c.Length,
		BuildQuantum:   c.Quantum.Build,
		ShuffleQuantum: c.Quantum.Shuffle,
		SortQuantum:    c.Quantum.Sort,
		Pause:          c.Pause,
		Seed:           c.Seed,
		Algorithms:     append([]string(nil), c.Algorithms...),
		SkipReshuffle:  !c.Reshuffle,
		BucketSize:     c.Bucket.Size,
		BucketCount:    c.Bucket.Count,
	}
}
