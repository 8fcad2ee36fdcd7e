package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	pnet "langid/internal/platform/net"
)

// panicBody matches the ops error envelope so clients decode one shape
type panicBody struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// RecoverJSON turns a handler panic into a 500 envelope and logs the stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			switch v := recover(); v {
			case nil:
				return
			case http.ErrAbortHandler:
				panic(v)
			default:
				logger.C(r.Context()).Error().Interface("panic", v).Bytes("stack", debug.Stack()).Msg("panic recovered")
				writePanic(w, pnet.RequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writePanic(w http.ResponseWriter, reqID string) {
	const status = http.StatusInternalServerError
	h := w.Header()
	if reqID != "" {
		h.Set("X-Request-ID", reqID)
	}
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(panicBody{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       perr.ErrorCodePanic,
		Error:      "panic recovered",
		RequestID:  reqID,
	})
}
