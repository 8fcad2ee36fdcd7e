package classify

import (
	perr "langid/internal/platform/errors"
)

// DefaultAltName is the classifier token that selects the alternate backend
const DefaultAltName = "alt"

// Registry maps a classifier token to a backend
// It is immutable after construction and shared by every connection without locking
type Registry struct {
	primary   Adapter
	alternate Adapter
	altName   string
}

// NewRegistry builds a registry where altName selects alternate and every other token selects primary
func NewRegistry(primary, alternate Adapter, altName string) (*Registry, error) {
	if primary == nil || alternate == nil {
		return nil, perr.InvalidArgf("registry needs both a primary and an alternate backend")
	}
	if altName == "" {
		altName = DefaultAltName
	}
	return &Registry{primary: primary, alternate: alternate, altName: altName}, nil
}

// Resolve returns the backend for name
// Unknown and empty names fall through to the primary backend
func (r *Registry) Resolve(name string) Adapter {
	if name == r.altName {
		return r.alternate
	}
	return r.primary
}

// AltName returns the token that selects the alternate backend
func (r *Registry) AltName() string { return r.altName }

// Adapters lists the registered backends, primary first
func (r *Registry) Adapters() []Adapter { return []Adapter{r.primary, r.alternate} }
