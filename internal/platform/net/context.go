// Package net holds transport helpers shared by the TCP listener and the ops HTTP server
package net

import (
	"context"
	stderrs "errors"
	stdnet "net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's middleware.GetReqID finds it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// RemoteAddr renders the peer address of c, "" when unknown
func RemoteAddr(c stdnet.Conn) string {
	if c == nil || c.RemoteAddr() == nil {
		return ""
	}
	return c.RemoteAddr().String()
}

// IsClosed reports whether err comes from using a closed listener or connection
func IsClosed(err error) bool { return stderrs.Is(err, stdnet.ErrClosed) }
