// Package modkit assembles service modules: shared deps, build options and route mounting
package modkit

import "langid/internal/modkit/module"

// Module is a mountable unit exposing a port bundle; see module.Module
type Module = module.Module
