// Package cli implements the sortwheel command-line interface.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortwheel/pkg/buildinfo"
	"github.com/matzehuels/sortwheel/pkg/config"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "sortwheel"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sortwheel animates sorting algorithms on a disparity wheel",
		Long:         `Sortwheel runs classic in-place sorting algorithms one small quantum of work per frame and draws every intermediate state as a colour wheel: elements far from home collapse towards the centre, sorted elements form a circle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default .sortwheel.toml in . or $HOME)")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Flags
// =============================================================================

// runFlags are the pipeline flags shared by run, export and serve. Only the
// flags the user sets override the loaded configuration.
type runFlags struct {
	length      int
	fps         int
	quantum     int
	seed        uint64
	pause       time.Duration
	algorithms  []string
	noReshuffle bool
	script      string
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.length, "length", "n", pipeline.DefaultLength, "number of elements")
	fs.IntVar(&f.fps, "fps", config.DefaultFPS, "frames per second")
	fs.IntVarP(&f.quantum, "quantum", "q", pipeline.DefaultSortQuantum, "units of sorting work per frame")
	fs.Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "shuffle seed")
	fs.DurationVar(&f.pause, "pause", pipeline.DefaultPause, "pause between algorithms")
	fs.StringSliceVarP(&f.algorithms, "algorithms", "a", nil, "algorithms to run, in order (default: all)")
	fs.BoolVar(&f.noReshuffle, "no-reshuffle", false, "sort the sorted sequence again instead of reshuffling")
	fs.StringVar(&f.script, "script", "", "TOML pipeline script (overrides the planned run)")

	_ = cmd.RegisterFlagCompletionFunc("algorithms", completeAlgorithms)
	_ = cmd.MarkFlagFilename("script", "toml")
}

// apply copies explicitly set flags onto cfg.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("length") {
		cfg.Length = f.length
	}
	if fs.Changed("fps") {
		cfg.FPS = f.fps
	}
	if fs.Changed("quantum") {
		cfg.Quantum.Sort = f.quantum
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("pause") {
		cfg.Pause = f.pause
	}
	if fs.Changed("algorithms") {
		cfg.Algorithms = f.algorithms
	}
	if fs.Changed("no-reshuffle") {
		cfg.Reshuffle = !f.noReshuffle
	}
}

// =============================================================================
// Config & Pipeline Factory
// =============================================================================

// loadConfig reads settings and layers the command's flags on top.
func (c *CLI) loadConfig(cmd *cobra.Command, f *runFlags) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	f.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// plan returns the pipeline to run and the sequence length renderers
// should be sized for.
func plan(cfg *config.Config, script string) (*pipeline.Pipeline, int, error) {
	if script != "" {
		p, err := pipeline.LoadScript(script)
		if err != nil {
			return nil, 0, err
		}
		n := p.Length()
		if n == 0 {
			n = cfg.Length
		}
		return p, n, nil
	}
	p, err := pipeline.Plan(cfg.PipelineOptions())
	if err != nil {
		return nil, 0, err
	}
	return p, cfg.Length, nil
}
