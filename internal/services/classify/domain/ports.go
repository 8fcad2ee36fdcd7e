package domain

import (
	"context"
	"net"

	"langid/internal/core/classify"
)

// DispatcherPort resolves a backend and classifies one payload
type DispatcherPort interface {
	Dispatch(ctx context.Context, in Input) (classify.Result, error)
}

// ConnHandler serves exactly one request on conn and closes it
type ConnHandler interface {
	Serve(ctx context.Context, conn net.Conn)
}

// ListenerPort is the TCP entry point owned by the classify module
type ListenerPort interface {
	Run(ctx context.Context) error
	Addr() string
	Ready() <-chan struct{}
}

// ReadinessPort reports whether every backend can be resolved
type ReadinessPort interface {
	Backends() []string
}
