package httpkit

import (
	"net/http"

	phttp "langid/internal/platform/net/http"
)

// GetJSON registers a body-less JSON endpoint
func GetJSON(r Router, pattern string, fn func(*http.Request) (any, error)) {
	r.Get(pattern, Call(fn))
}

// PostJSON registers a JSON endpoint whose body binds to T
func PostJSON[T any](r Router, pattern string, fn func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, pattern, fn)
}
