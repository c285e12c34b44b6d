package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
	"github.com/matzehuels/sortwheel/pkg/scheduler"
)

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var (
		flags    runFlags
		headless bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate sorting algorithms in the terminal",
		Long: `Run builds the sequence, shuffles it and sorts it with each algorithm in
turn, drawing every frame as a disparity wheel in the terminal.

With --headless nothing is drawn; stage progress is logged instead while the
run keeps the same frame pacing.`,
		Example: `  sortwheel run
  sortwheel run -n 600 -a bubble,quick --fps 30
  sortwheel run --script demo.toml --headless`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			p, n, err := plan(cfg, flags.script)
			if err != nil {
				return err
			}

			ticker := scheduler.NewTicker(cfg.FPS)
			defer ticker.Stop()

			if headless {
				return runHeadless(ctx, p, ticker, loggerFromContext(ctx))
			}
			return runTUI(ctx, p, ticker, n)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&headless, "headless", false, "log progress instead of drawing")

	return cmd
}

// runHeadless drives p without drawing and logs stage boundaries.
func runHeadless(ctx context.Context, p *pipeline.Pipeline, frames scheduler.Frames, logger *log.Logger) error {
	observability.SetPipelineHooks(logHooks{logger: logger})
	defer observability.Reset()

	prog := newProgress(logger)
	res, err := pipeline.NewRunner(frames, scheduler.Discard, logger).Run(ctx, p)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("sorted %d elements", len(res.Sequence)))
	printReport(res.Report)
	return nil
}

// runTUI drives p on a background goroutine while a bubbletea program
// shows each frame. Quitting the program cancels the run.
func runTUI(ctx context.Context, p *pipeline.Pipeline, frames scheduler.Frames, n int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var prog *tea.Program
	send := func(msg tea.Msg) { prog.Send(msg) }

	term := newTerminal(n, defaultCols, defaultRows, send)
	prog = tea.NewProgram(newAnimationModel(term, n, cancel), tea.WithAltScreen())

	observability.SetPipelineHooks(stageHooks{send: send})
	defer observability.Reset()

	// The UI owns the terminal, so the run itself logs nowhere.
	quiet := log.NewWithOptions(io.Discard, log.Options{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		res, err := pipeline.NewRunner(frames, term, quiet).Run(ctx, p)
		prog.Send(doneMsg{result: res, err: err})
	}()

	final, err := prog.Run()
	cancel()
	<-finished
	if err != nil {
		return err
	}

	m := final.(animationModel)
	switch {
	case m.quit:
		printWarning("run interrupted")
		return nil
	case m.err != nil:
		if errors.Is(m.err, context.Canceled) {
			return m.err
		}
		return fmt.Errorf("run failed: %w", m.err)
	}
	printSuccess("sorted %d elements", len(m.result.Sequence))
	printReport(m.result.Report)
	return nil
}
