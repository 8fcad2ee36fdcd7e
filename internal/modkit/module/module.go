// Package module holds the module contract and the bootstrap port registry.
// It sits below modkit so service modules can name their ports without an import cycle
package module

import phttp "langid/internal/platform/net/http"

// Module mounts its routes and hands its ports to whoever wires it
type Module interface {
	Name() string
	Ports() any
	MountRoutes(r phttp.Router)
}
