// Command langid-server accepts text over TCP and answers with a language classification
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"langid/internal/core/version"
	"langid/internal/modkit"
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
	phttp "langid/internal/platform/net/http"
	"langid/internal/platform/net/middleware"

	"langid/internal/services/api"
	classifymod "langid/internal/services/classify/module"
)

func main() {
	root := config.New()
	cfg := root.Prefix("LANGID_")

	// bring up logging early
	l := logger.Get()
	bi := version.Info()
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var m *metrics.Collector
	if cfg.MayBool("METRICS_ENABLED", true) {
		m = metrics.New(true)
	}

	deps := modkit.Deps{Log: l, Cfg: root, Metrics: m}
	cm, err := classifymod.New(deps, classifymod.FromConfig(root))
	if err != nil {
		l.Fatal().Err(err).Msg("classify module")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return cm.Listener().Run(gctx) })

	if cfg.MayBool("HTTP_ENABLED", true) {
		srv := phttp.NewServer(cfg.MayAddr("HTTP_ADDR", "127.0.0.1:15556"))
		api.Mount(srv.Router(), api.Options{
			Config:   root,
			Logger:   l,
			Metrics:  m,
			Classify: cm,
			Docs:     cfg.MayBool("HTTP_DOCS", false),
			CORS: middleware.CORSOptions{
				AllowedOrigins: cfg.MayCSV("HTTP_CORS_ORIGINS", nil),
			},
		})
		g.Go(func() error { return srv.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	l.Info().Msg("bye")
}
