package modkit

import "net/http"

// Option adjusts a module's Built settings
type Option func(*Built)

// WithName overrides the name used in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module's routes below prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module-scoped middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module a port bundle built elsewhere, e.g. test backends
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }
