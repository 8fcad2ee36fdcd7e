package http

import "net/http"

// Handler is a plain handler func; routers accept it without conversion
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what ops modules mount on. Only the verbs the service serves are exposed
type Router interface {
	Method(method, pattern string, h Handler)
	Get(pattern string, h Handler)
	Post(pattern string, h Handler)

	Handle(pattern string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux exposes the root handler for http.Server and tests
	Mux() http.Handler
}
