package service

import (
	"context"
	stderrs "errors"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
	pnet "langid/internal/platform/net"
	"langid/internal/services/classify/domain"
)

// newConnID is swapped in tests
var newConnID = func() string { return uuid.NewString() }

// ListenerConfig for the TCP listener
type ListenerConfig struct {
	Addr         string
	DrainTimeout time.Duration // 0 waits for every connection
}

// Listener accepts connections and serves each on its own goroutine
// There is no connection limit; connections share nothing but the read-only handler
type Listener struct {
	Handler domain.ConnHandler
	Metrics *metrics.Collector
	Cfg     ListenerConfig

	mu        sync.Mutex
	ln        net.Listener
	conns     map[net.Conn]struct{}
	ready     chan struct{}
	readyOnce sync.Once
}

var _ domain.ListenerPort = (*Listener)(nil)

// NewListener wires a listener; m may be nil
func NewListener(h domain.ConnHandler, m *metrics.Collector, cfg ListenerConfig) *Listener {
	return &Listener{
		Handler: h,
		Metrics: m,
		Cfg:     cfg,
		conns:   map[net.Conn]struct{}{},
		ready:   make(chan struct{}),
	}
}

// Addr returns the bound address once Ready is closed, else the configured one
func (l *Listener) Addr() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln != nil {
		return l.ln.Addr().String()
	}
	return l.Cfg.Addr
}

// Ready is closed once the socket is first bound
func (l *Listener) Ready() <-chan struct{} { return l.ready }

// Run binds and accepts until ctx is done, then drains in-flight connections
func (l *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.Cfg.Addr)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "listen %s", l.Cfg.Addr)
	}
	l.mu.Lock()
	l.ln = ln
	l.mu.Unlock()
	l.readyOnce.Do(func() { close(l.ready) })

	log := logger.Named("listener")
	log.Info().Str("addr", ln.Addr().String()).Msg("tcp listener started")

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	connCtx := logger.Into(ctx, logger.Named("conn"))

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || pnet.IsClosed(err) {
				break
			}
			var ne net.Error
			if stderrs.As(err, &ne) && ne.Timeout() {
				continue
			}
			log.Error().Err(err).Msg("accept failed")
			l.drain(&wg)
			return perr.Wrap(err, perr.ErrorCodeUnknown, "accept")
		}

		l.track(conn, true)
		l.Metrics.ConnOpened()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				l.track(conn, false)
				l.Metrics.ConnClosed()
			}()
			cctx := logger.WithConn(connCtx, newConnID(), pnet.RemoteAddr(conn))
			logger.C(cctx).Debug().Msg("connection accepted")
			l.Handler.Serve(cctx, conn)
		}()
	}

	log.Info().Msg("tcp listener stopping")
	l.drain(&wg)
	return nil
}

func (l *Listener) track(c net.Conn, add bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if add {
		l.conns[c] = struct{}{}
		return
	}
	delete(l.conns, c)
}

// drain waits for in-flight handlers; past DrainTimeout their sockets are closed.
// Closing rather than expiring deadlines matters: the framer re-arms its read deadline per chunk
func (l *Listener) drain(wg *sync.WaitGroup) {
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	if l.Cfg.DrainTimeout <= 0 {
		<-done
		return
	}
	select {
	case <-done:
		return
	case <-time.After(l.Cfg.DrainTimeout):
	}

	l.mu.Lock()
	n := len(l.conns)
	for c := range l.conns {
		_ = c.Close()
	}
	l.mu.Unlock()
	logger.Named("listener").Warn().Int("connections", n).Msg("drain timeout; closing connections")
	<-done
}
