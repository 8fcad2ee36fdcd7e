// Package service implements the classify dispatch service, the per-connection
// handler and the TCP listener
package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"langid/internal/core/classify"
	"langid/internal/core/langhint"
	"langid/internal/core/normalize"
	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
	str "langid/internal/platform/strings"
	"langid/internal/services/classify/domain"
)

// Config for the dispatch service
type Config struct {
	// Normalize runs the payload through core/normalize before dispatch
	Normalize bool
}

// Service implements domain.DispatcherPort and domain.ReadinessPort
type Service struct {
	Reg     *classify.Registry
	Metrics *metrics.Collector
	Cfg     Config

	norm *normalize.Normalizer
}

var (
	_ domain.DispatcherPort = (*Service)(nil)
	_ domain.ReadinessPort  = (*Service)(nil)
)

// New constructs a dispatch service over reg; m may be nil
func New(reg *classify.Registry, m *metrics.Collector, cfg Config) *Service {
	s := &Service{Reg: reg, Metrics: m, Cfg: cfg}
	if cfg.Normalize {
		s.norm = normalize.New()
	}
	return s
}

// Dispatch resolves the backend for in.Classifier and classifies in.Text
// A panicking backend is turned into an ErrorCodePanic error
func (s *Service) Dispatch(ctx context.Context, in domain.Input) (classify.Result, error) {
	if s == nil || s.Reg == nil {
		return classify.Result{}, perr.Unavailablef("classifier registry not configured")
	}
	log := logger.C(ctx)
	adapter := s.Reg.Resolve(in.Classifier)

	hint := ""
	if in.Hint != "" {
		if base, ok := langhint.Canonical(in.Hint); ok {
			hint = base
		} else {
			log.Debug().Str("hint", str.Clip(in.Hint, 64)).Msg("dropping unparseable hint")
		}
	}

	text := in.Text
	if s.norm != nil {
		text = s.norm.Normalize(text)
	}

	start := time.Now()
	res, err := s.call(ctx, adapter, text, hint)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOK
	switch {
	case perr.IsCode(err, perr.ErrorCodePanic):
		outcome = metrics.OutcomePanic
	case err != nil:
		outcome = metrics.OutcomeError
	}
	s.Metrics.Request(adapter.Name(), outcome, elapsed)

	if err != nil {
		return classify.Result{}, perr.WithOp(err, "classify."+adapter.Name())
	}
	if res.Backend == "" {
		res.Backend = adapter.Name()
	}
	log.Debug().
		Str("backend", res.Backend).
		Str("hint", hint).
		Int("payload_bytes", len(text)).
		Str("code", res.Code).
		Bool("reliable", res.Reliable).
		Dur("elapsed", elapsed).
		Msg("classified")
	return res, nil
}

func (s *Service) call(ctx context.Context, a classify.Adapter, text, hint string) (res classify.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.C(ctx).Error().
				Str("backend", a.Name()).
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("backend panicked")
			res, err = classify.Result{}, perr.PanicErrf("backend %s panicked: %v", a.Name(), rec)
		}
	}()
	res, err = a.Classify(ctx, text, hint)
	if err != nil {
		if _, ok := perr.As(err); !ok {
			err = perr.Wrapf(err, perr.ErrorCodeBackend, "backend %s failed", a.Name())
		}
	}
	return res, err
}

// Backends lists the adapters the registry can resolve
func (s *Service) Backends() []string {
	if s == nil || s.Reg == nil {
		return nil
	}
	out := make([]string, 0, 2)
	for _, a := range s.Reg.Adapters() {
		out = append(out, a.Name())
	}
	return out
}
