package http

import (
	"net/http"

	"langid/internal/platform/net/http/bind"
)

// reply maps a handler's (value, error) pair onto a Response.
// A Response value is passed through untouched so handlers can pick their own status
func reply(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// Bound decodes and validates a T from the body before calling fn
func Bound[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return reply(fn(r, in))
	})
}

// Unbound calls fn without touching the body
func Unbound(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return reply(fn(r)) })
}

// GetJSON registers fn for GET
func GetJSON(r Router, pattern string, fn func(*http.Request) (any, error)) {
	r.Get(pattern, Unbound(fn))
}

// PostJSON registers fn for POST with a bound T body
func PostJSON[T any](r Router, pattern string, fn func(*http.Request, T) (any, error)) {
	r.Post(pattern, Bound(fn))
}
