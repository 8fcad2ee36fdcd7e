// Package modkit provides module wiring and core deps
package modkit

import (
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
)

// Deps holds the shared dependencies handed to every module
type Deps struct {
	Log     *logger.Logger // nil uses the process root logger
	Cfg     config.Conf
	Metrics *metrics.Collector // nil disables metrics
}

// Logger returns d.Log tagged with component
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	l := d.Log.With().Str("component", component).Logger()
	return &l
}
