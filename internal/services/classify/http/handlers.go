// Package http provides the ops HTTP transport for classify
package http

import (
	stdhttp "net/http"
	"strings"

	"langid/internal/core/classify"
	"langid/internal/modkit/httpkit"
	"langid/internal/services/classify/domain"
)

// Register mounts classify endpoints on the given router
func Register(r httpkit.Router, d domain.DispatcherPort, f classify.Format) {
	h := &handlers{d: d, format: f}

	// same dispatch path as the TCP protocol
	httpkit.PostJSON[domain.Input](r, "/classify", h.classify)
}

type handlers struct {
	d      domain.DispatcherPort
	format classify.Format
}

func (h *handlers) classify(r *stdhttp.Request, in domain.Input) (any, error) {
	res, err := h.d.Dispatch(r.Context(), in)
	if err != nil {
		return nil, err
	}
	line, err := classify.Render(h.format, res)
	if err != nil {
		return nil, err
	}
	if res.Candidates == nil {
		res.Candidates = []classify.Candidate{}
	}
	return domain.Output{Result: res, Rendered: strings.TrimSuffix(string(line), "\n")}, nil
}
