package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortwheel/pkg/config"
	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
	"github.com/matzehuels/sortwheel/pkg/render/raster"
	"github.com/matzehuels/sortwheel/pkg/scheduler"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		flags  runFlags
		dir    string
		every  int
		width  int
		height int
		point  int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a run to numbered PNG frames",
		Long: `Export runs the pipeline as fast as frames can be drawn and writes every
k-th frame to <dir>/frame-NNNNNN.png. The final frame is always written.

Pauses are skipped unless --pause is given explicitly.`,
		Example: `  sortwheel export -n 1500 -a heap --every 2 -o frames
  ffmpeg -framerate 60 -i frames/frame-%06d.png heap.mp4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if !fs.Changed("pause") {
				cfg.Pause = 0
			}
			if fs.Changed("out") {
				cfg.Export.Dir = dir
			}
			if fs.Changed("every") {
				cfg.Export.Every = every
			}
			if fs.Changed("width") {
				cfg.Canvas.Width = width
			}
			if fs.Changed("height") {
				cfg.Canvas.Height = height
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			p, n, err := plan(cfg, flags.script)
			if err != nil {
				return err
			}

			canvas := raster.New(cfg.Canvas.Width, cfg.Canvas.Height, n, raster.WithPointSize(point))
			exp, err := raster.NewExporter(canvas, cfg.Export.Dir, cfg.Export.Every)
			if err != nil {
				return err
			}

			spinner := newSpinner(ctx, "Exporting...")
			observability.SetPipelineHooks(spinnerHooks{spinner: spinner, prefix: "Exporting"})
			defer observability.Reset()
			spinner.Start()

			res, err := pipeline.NewRunner(scheduler.Immediate(), exp, logger).Run(ctx, p)
			if err == nil {
				err = exp.Flush()
			}
			if err != nil {
				spinner.StopWithError(fmt.Sprintf("export failed after %s frames", humanize.Comma(int64(exp.Written()))))
				return err
			}

			spinner.StopWithSuccess(fmt.Sprintf("Exported %s frames", humanize.Comma(int64(exp.Written()))))
			printReport(res.Report)
			printFile(exp.Dir())
			printNextStep("Make a video", fmt.Sprintf("ffmpeg -framerate %d -i %s %s.mp4",
				cfg.FPS, filepath.Join(exp.Dir(), raster.FramePattern), appName))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&dir, "out", "o", config.DefaultExportDir, "output directory")
	cmd.Flags().IntVar(&every, "every", config.DefaultExportEvery, "write every k-th frame")
	cmd.Flags().IntVar(&width, "width", config.DefaultCanvasWidth, "frame width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultCanvasHeight, "frame height in pixels")
	cmd.Flags().IntVar(&point, "point", 1, "element size in pixels")

	return cmd
}
