// Package api mounts the ops HTTP surface of the server
package api

import (
	"context"

	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	"langid/internal/modkit/module"
	"langid/internal/modkit/swaggerkit"
	"langid/internal/platform/config"
	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
	phttp "langid/internal/platform/net/http"
	"langid/internal/platform/net/middleware"

	metamod "langid/internal/services/api/meta/module"
	classifydom "langid/internal/services/classify/domain"
	classifymod "langid/internal/services/classify/module"
)

// Options are the API options
type Options struct {
	Config   config.Conf
	Logger   *logger.Logger
	Metrics  *metrics.Collector
	CORS     middleware.CORSOptions
	Classify module.Module // the classify module; owns the listener and dispatcher
	Docs     bool          // serve the swagger UI under /api/docs
}

// Mount mounts meta, the versioned API, /metrics and optionally the docs onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{Log: opt.Logger, Cfg: opt.Config, Metrics: opt.Metrics}
	stack := httpkit.CommonStack(opt.CORS)

	ports := module.MustPortsOf[classifymod.Ports](opt.Classify)
	meta := metamod.New(deps,
		modkit.WithMiddlewares(stack...),
		modkit.WithPorts(metamod.Checks{
			{Name: "backends", Fn: backendsCheck(ports.Readiness)},
			{Name: "tcp", Fn: listenerCheck(ports.Listener)},
		}),
	)

	for _, m := range []module.Module{meta, opt.Classify} {
		// register each module's ports under its own name for cross-module lookups
		module.Register(m.Name(), m.Ports())
	}

	meta.MountRoutes(r)
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		opt.Classify.MountRoutes(api)
	})
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}
	swaggerkit.Mount(r, opt.Docs)
}

func backendsCheck(p classifydom.ReadinessPort) func(context.Context) error {
	return func(context.Context) error {
		if p == nil {
			return perr.Unavailablef("no classifier registry")
		}
		if n := len(p.Backends()); n != 2 {
			return perr.Unavailablef("expected 2 backends, have %d", n)
		}
		return nil
	}
}

func listenerCheck(l classifydom.ListenerPort) func(context.Context) error {
	return func(context.Context) error {
		if l == nil {
			return perr.Unavailablef("no tcp listener")
		}
		select {
		case <-l.Ready():
			return nil
		default:
			return perr.Unavailablef("tcp listener not bound on %s", l.Addr())
		}
	}
}
