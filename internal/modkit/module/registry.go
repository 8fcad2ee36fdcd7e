package module

import "sync"

// ports holds each module's exported port set during bootstrap, keyed by module name
var ports sync.Map

// Register publishes a module's port set. A second call for the same name replaces it
func Register(name string, p any) { ports.Store(name, p) }

// PortsAs looks up name and asserts its port set to T
func PortsAs[T any](name string) (T, bool) {
	v, _ := ports.Load(name)
	out, ok := v.(T)
	return out, ok
}

// Reset forgets every registration; tests call it between cases
func Reset() { ports.Clear() }
