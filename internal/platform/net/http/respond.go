// Package http is the ops HTTP seam: a router facade over chi, a server and the JSON envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "langid/internal/platform/errors"
	pnet "langid/internal/platform/net"
)

// Envelope wraps every JSON body the ops API writes
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Response is what return-style handlers produce. An error Body turns into an error
// envelope and overrides Status; a zero Status means 200
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// OK is a 200 response carrying data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error is a response whose status and envelope come from err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a return-style handler to net/http
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

// JSON encodes v with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (resp Response) envelope(r *stdhttp.Request) Envelope {
	env := Envelope{StatusCode: resp.Status, RequestID: pnet.RequestID(r.Context())}
	if env.StatusCode == 0 {
		env.StatusCode = stdhttp.StatusOK
	}
	switch b := resp.Body.(type) {
	case error:
		wr := perr.WireFrom(b)
		env.StatusCode = perr.HTTPStatus(b)
		env.Code, env.Error, env.Field = wr.Code, wr.Message, wr.Field
	default:
		env.Data = b
	}
	env.Status = stdhttp.StatusText(env.StatusCode)
	return env
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		w.Header()[k] = append(w.Header()[k], vv...)
	}
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(resp.Status)
		return
	}
	env := resp.envelope(r)
	JSON(w, env.StatusCode, env)
}
