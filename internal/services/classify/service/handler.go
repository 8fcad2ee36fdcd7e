package service

import (
	"context"
	"net"
	"time"

	"langid/internal/core/classify"
	"langid/internal/core/frame"
	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
	pnet "langid/internal/platform/net"
	"langid/internal/services/classify/domain"
)

// HandlerConfig for the per-connection handler
type HandlerConfig struct {
	Format       classify.Format
	WriteTimeout time.Duration // 0 disables
}

// Handler runs one connection through READING, FRAMED, DISPATCHED and CLOSED
type Handler struct {
	Framer     *frame.Framer
	Parser     frame.Parser
	Dispatcher domain.DispatcherPort
	Metrics    *metrics.Collector
	Cfg        HandlerConfig
}

var _ domain.ConnHandler = (*Handler)(nil)

// NewHandler wires a handler; m may be nil
func NewHandler(f *frame.Framer, p frame.Parser, d domain.DispatcherPort, m *metrics.Collector, cfg HandlerConfig) *Handler {
	if cfg.Format == "" {
		cfg.Format = classify.FormatTuple
	}
	return &Handler{Framer: f, Parser: p, Dispatcher: d, Metrics: m, Cfg: cfg}
}

// Serve handles exactly one request on conn and always closes it
//
// Framing failures (bad UTF-8, early EOF, oversize frame, read timeout) close the
// connection without a response. A failing backend gets a single ERROR line.
func (h *Handler) Serve(ctx context.Context, conn net.Conn) {
	defer func() { _ = conn.Close() }()
	log := logger.C(ctx)

	// READING
	raw, err := h.Framer.Read(conn)
	if err != nil {
		kind := perr.CodeOf(err).String()
		h.Metrics.FrameError(kind)
		switch {
		case pnet.IsClosed(err) || ctx.Err() != nil:
			log.Debug().Err(err).Str("kind", kind).Msg("connection closed while framing")
		case perr.IsFraming(err):
			log.Warn().Err(err).Str("kind", kind).Msg("dropping connection without response")
		default:
			log.Error().Err(err).Str("kind", kind).Msg("framer failed")
		}
		return
	}
	h.Metrics.BytesReceived(len(raw))

	// FRAMED
	req := h.Parser.Parse(raw)

	// DISPATCHED
	res, err := h.Dispatcher.Dispatch(ctx, domain.Input{Text: req.Text, Classifier: req.Classifier, Hint: req.Hint})
	var out []byte
	if err != nil {
		evt := log.Error().Err(err).Str("classifier", req.Classifier)
		if e, ok := perr.As(err); ok && e.Op() != "" {
			evt = evt.Str("op", e.Op())
		}
		evt.Msg("backend failed")
		out = classify.ErrorLine(err)
	} else if out, err = classify.Render(h.Cfg.Format, res); err != nil {
		log.Error().Err(err).Msg("render failed")
		out = classify.ErrorLine(err)
	}

	// CLOSED
	if h.Cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(h.Cfg.WriteTimeout))
	}
	if _, err := conn.Write(out); err != nil {
		log.Warn().Err(err).Msg("write response failed")
	}
}
