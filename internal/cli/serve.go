package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sortwheel/pkg/buildinfo"
	"github.com/matzehuels/sortwheel/pkg/config"
	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/pipeline"
	"github.com/matzehuels/sortwheel/pkg/render/raster"
	"github.com/matzehuels/sortwheel/pkg/scheduler"
)

// Server timeouts for the preview server.
const (
	serverReadHeaderTimeout = 5 * time.Second
	serverWriteTimeout      = 30 * time.Second
	serverIdleTimeout       = 120 * time.Second
	serverShutdownTimeout   = 5 * time.Second
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags runFlags
		addr  string
		once  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview over HTTP",
		Long: `Serve loops the pipeline at the configured frame rate and exposes:

  /            a page showing the live animation
  /frame.png   the current frame
  /status      the running stage as JSON
  /metrics     Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}
			p, n, err := plan(cfg, flags.script)
			if err != nil {
				return err
			}

			prom := observability.NewPrometheus()
			srv := newPreviewServer(raster.New(cfg.Canvas.Width, cfg.Canvas.Height, n), prom, cfg.FPS)
			observability.SetPipelineHooks(observability.MultiPipeline(prom, srv))
			observability.SetSchedulerHooks(prom)
			defer observability.Reset()

			httpServer := &http.Server{
				Addr:              cfg.Serve.Addr,
				Handler:           srv.routes(),
				ReadHeaderTimeout: serverReadHeaderTimeout,
				WriteTimeout:      serverWriteTimeout,
				IdleTimeout:       serverIdleTimeout,
			}
			serveErr := make(chan error, 1)
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
				close(serveErr)
			}()

			printInfo("Serving preview")
			printKeyValue("page", "http://"+displayAddr(cfg.Serve.Addr)+"/")
			printKeyValue("metrics", "http://"+displayAddr(cfg.Serve.Addr)+"/metrics")

			ticker := scheduler.NewTicker(cfg.FPS)
			defer ticker.Stop()

			next := nextPlan(cfg, p, flags.script != "")
			runErr := srv.loop(ctx, pipeline.NewRunner(ticker, srv.canvas, logger), next, once, logger)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", "err", err)
			}
			if err := <-serveErr; err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Serve.Addr, err)
			}
			if errors.Is(runErr, context.Canceled) {
				return nil
			}
			return runErr
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", config.DefaultServeAddr, "listen address")
	cmd.Flags().BoolVar(&once, "once", false, "stop after a single run instead of looping")

	return cmd
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}

// =============================================================================
// Preview Server
// =============================================================================

// previewStatus is the /status payload.
type previewStatus struct {
	Version string    `json:"version"`
	RunID   string    `json:"run_id,omitempty"`
	Runs    int       `json:"runs"`
	Stage   string    `json:"stage,omitempty"`
	Frames  int       `json:"frames"`
	Started time.Time `json:"started"`
	Error   string    `json:"error,omitempty"`
}

type previewServer struct {
	observability.NoopPipelineHooks

	canvas *raster.Canvas
	prom   *observability.Prometheus
	fps    int

	mu     sync.RWMutex
	status previewStatus
}

func newPreviewServer(canvas *raster.Canvas, prom *observability.Prometheus, fps int) *previewServer {
	return &previewServer{
		canvas: canvas,
		prom:   prom,
		fps:    fps,
		status: previewStatus{Version: buildinfo.Short(), Started: time.Now().UTC()},
	}
}

func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/frame.png", s.handleFrame)
	r.Get("/status", s.handleStatus)
	r.Method(http.MethodGet, "/metrics", s.prom.Handler())
	return r
}

// nextPlan returns the pipeline for each looped run. Planned runs move to a
// new seed every time so the preview does not replay one animation; scripts
// are replayed as written.
func nextPlan(cfg *config.Config, first *pipeline.Pipeline, scripted bool) func(run int) (*pipeline.Pipeline, error) {
	return func(run int) (*pipeline.Pipeline, error) {
		if run == 0 || scripted {
			return first, nil
		}
		opts := cfg.PipelineOptions()
		opts.Seed = reseed(cfg.Seed, run)
		return pipeline.Plan(opts)
	}
}

// reseed derives the seed of the given run from the configured seed.
func reseed(seed uint64, run int) uint64 {
	if seed == 0 {
		seed = pipeline.DefaultSeed
	}
	return seed + uint64(run)<<32
}

// loop runs the pipelines handed out by next until ctx is done, or once.
func (s *previewServer) loop(ctx context.Context, runner *pipeline.Runner, next func(run int) (*pipeline.Pipeline, error), once bool, logger *log.Logger) error {
	for run := 0; ; run++ {
		p, err := next(run)
		if err != nil {
			return err
		}
		res, err := runner.Run(ctx, p)
		s.mu.Lock()
		s.status.Runs++
		if err != nil {
			s.status.Error = err.Error()
		}
		s.mu.Unlock()
		if err != nil {
			return err
		}
		logger.Info("run complete", "run", res.RunID, "summary", res.Report.Summary())
		if once {
			return nil
		}
	}
}

// OnStageStart records the running stage for /status.
func (s *previewServer) OnStageStart(_ context.Context, runID, stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.RunID = runID
	s.status.Stage = stage
}

func (s *previewServer) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, appName, max(1000/max(s.fps, 1), 16))
}

func (s *previewServer) handleFrame(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.canvas.EncodePNG(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *previewServer) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()
	status.Frames = s.canvas.Frames()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

const indexPage = `<!doctype html>
<html>
<head><title>%s</title>
<style>body{margin:0;background:#000;display:flex;align-items:center;justify-content:center;height:100vh}</style>
</head>
<body>
<img id="frame" src="/frame.png" alt="">
<script>
const img = document.getElementById("frame");
setInterval(() => { img.src = "/frame.png?t=" + Date.now(); }, %d);
</script>
</body>
</html>
`
