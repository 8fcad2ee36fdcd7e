package module

import (
	"fmt"
	"reflect"
)

// PortsOf finds a T in m's port bundle: either the bundle itself or one of its exported fields
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if v, ok := bundle.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(bundle))
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for bootstrap code, where a missing port is a wiring bug
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: no port of type %v", m.Name(), reflect.TypeFor[T]()))
	}
	return v
}
