package modkit

import (
	"net/http"

	phttp "langid/internal/platform/net/http"
)

// Built is a module's resolved options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts over a zero Built
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount installs the module's middleware on a scoped router and hands it to register.
// An empty or "/" prefix mounts in a group at the parent's root
func (b Built) Mount(r phttp.Router, register func(phttp.Router)) {
	scoped := func(sub phttp.Router) {
		sub.Use(b.Mw...)
		register(sub)
	}
	switch b.Prefix {
	case "", "/":
		r.Group(scoped)
	default:
		r.Route(b.Prefix, scoped)
	}
}
