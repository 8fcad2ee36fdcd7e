// Package httpkit is the handler and routing surface modules build against.
// It re-exports the platform http seam so modules never import it directly
package httpkit

import (
	"net/http"

	phttp "langid/internal/platform/net/http"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// OK wraps data in a 200 envelope
func OK(data any) Response { return phttp.OK(data) }

// Error derives status and envelope from err
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a return-style handler
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Call adapts a body-less handler. Returning a Response overrides the default 200
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Unbound(fn) }
