package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chiRouter struct{ r chi.Router }

// AdaptChi wraps a chi mux or sub-router as a Router
func AdaptChi(r chi.Router) Router { return chiRouter{r: r} }

func (c chiRouter) Method(m, p string, h Handler) { c.r.Method(m, p, http.HandlerFunc(h)) }
func (c chiRouter) Get(p string, h Handler)       { c.Method(http.MethodGet, p, h) }
func (c chiRouter) Post(p string, h Handler)      { c.Method(http.MethodPost, p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) { c.r.Group(c.wrap(fn)) }

func (c chiRouter) Route(pattern string, fn func(Router)) { c.r.Route(pattern, c.wrap(fn)) }

func (chiRouter) wrap(fn func(Router)) func(chi.Router) {
	return func(sub chi.Router) { fn(chiRouter{r: sub}) }
}

func (c chiRouter) Mux() http.Handler { return c.r }
