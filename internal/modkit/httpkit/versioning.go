package httpkit

import (
	"net/http"
	"path"
)

// Middlewares is an ordered middleware stack
type Middlewares = []func(http.Handler) http.Handler

// MountUnder opens a sub-router at prefix, installs mw on it and hands it to mount
func MountUnder(r Router, prefix string, mw Middlewares, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		sub.Use(mw...)
		mount(sub)
	})
}

// MountAPI mounts under /api/<version>; a leading slash on version is tolerated
func MountAPI(r Router, version string, mw Middlewares, mount func(Router)) {
	MountUnder(r, path.Join("/api", version), mw, mount)
}

// MountAPIV1 mounts under /api/v1
func MountAPIV1(r Router, mw Middlewares, mount func(Router)) { MountAPI(r, "v1", mw, mount) }
