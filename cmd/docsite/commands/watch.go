package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/hugo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output      string        `short:"o" help:"Output directory for the Hugo project (default: output.directory from the configuration)"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address, e.g. :9090"`
	Debounce    time.Duration `help:"Quiet period before regenerating" default:"500ms"`
}

func (c *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	var rec metrics.Recorder = metrics.NoopRecorder{}
	if c.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
		srv := startMetricsServer(c.MetricsAddr, reg)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	out := ResolveOutputDir(c.Output, cfg, root.Config)
	rebuild := func(ctx context.Context, cfg *config.Config) error {
		report, err := hugo.NewGenerator(cfg, out).
			WithSourceDir(root.SourceDir()).
			WithRecorder(rec).
			Generate(ctx)
		if report != nil {
			_, _ = fmt.Fprintln(g.Out, report.Summary())
		}
		return err
	}
	if err := rebuild(ctx, cfg); err != nil {
		return err
	}

	w, err := watch.New(root.Config, cfg, rebuild)
	if err != nil {
		return err
	}
	w.WithDebounce(c.Debounce).WithRecorder(rec)
	if err := w.Start(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "Watching %s, press Ctrl+C to stop\n", root.Config)

	<-ctx.Done()
	slog.Info("Shutdown signal received")
	return w.Stop()
}

func startMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("Serving metrics", logfields.Addr(addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Addr(addr), logfields.Error(err))
		}
	}()
	return srv
}
