// Package module wires the classify service into modkit
package module

import (
	"langid/internal/adapters/langid/lingua"
	"langid/internal/adapters/langid/whatlang"
	"langid/internal/core/classify"
	"langid/internal/core/frame"
	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	perr "langid/internal/platform/errors"
	"langid/internal/services/classify/domain"
	classifyhttp "langid/internal/services/classify/http"
	"langid/internal/services/classify/service"
)

// Name is the module name used in the port registry
const Name = "classify"

// Backends overrides the adapters the module would otherwise build from Options
// pass it with modkit.WithPorts
type Backends struct {
	Primary   classify.Adapter
	Alternate classify.Adapter
}

// Ports exposed by the classify module
type Ports struct {
	Dispatcher domain.DispatcherPort
	Listener   domain.ListenerPort
	Readiness  domain.ReadinessPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	opts  Options
	ports Ports
}

// New validates o, builds both backends and wires dispatcher, handler and listener
func New(deps modkit.Deps, o Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{modkit.WithName(Name)}, opts...)...)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	backends, _ := b.Ports.(Backends)
	if backends.Primary == nil {
		a, err := whatlang.New(whatlang.Options{Reliable: o.PrimaryReliable, Languages: o.PrimaryLanguages})
		if err != nil {
			return nil, perr.WithField(err, "LANGID_PRIMARY_LANGUAGES")
		}
		backends.Primary = a
	}
	if backends.Alternate == nil {
		a, err := lingua.New(lingua.Options{
			Languages:   o.AltLanguages,
			LowAccuracy: o.AltLowAccuracy,
			HintWeight:  o.AltHintWeight,
			Preload:     o.AltPreload,
		})
		if err != nil {
			return nil, perr.WithField(err, "LANGID_ALT_LANGUAGES")
		}
		backends.Alternate = a
	}
	reg, err := classify.NewRegistry(backends.Primary, backends.Alternate, o.AltName)
	if err != nil {
		return nil, err
	}

	svc := service.New(reg, deps.Metrics, service.Config{Normalize: o.Normalize})
	framer := frame.NewFramer(frame.Options{
		Terminator:  o.Terminator,
		ChunkSize:   o.ReadChunk,
		MaxBytes:    o.MaxFrameBytes,
		ReadTimeout: o.ReadTimeout,
	})
	parser := frame.NewParser(o.Terminator)
	parser.Separator = o.separator()
	handler := service.NewHandler(framer, parser, svc, deps.Metrics, service.HandlerConfig{
		Format:       classify.Format(o.ResponseFormat),
		WriteTimeout: o.WriteTimeout,
	})
	listener := service.NewListener(handler, deps.Metrics, service.ListenerConfig{
		Addr:         o.TCPAddr,
		DrainTimeout: o.DrainTimeout,
	})

	deps.Logger(Name).Info().
		Str("primary", backends.Primary.Name()).
		Str("alternate", backends.Alternate.Name()).
		Str("alt_name", reg.AltName()).
		Str("format", o.ResponseFormat).
		Str("join", o.PayloadJoin).
		Msg("classify module ready")

	return &Module{
		deps:  deps,
		built: b,
		opts:  o,
		ports: Ports{Dispatcher: svc, Listener: listener, Readiness: svc},
	}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Listener returns the TCP listener; the caller runs it
func (m *Module) Listener() domain.ListenerPort { return m.ports.Listener }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		classifyhttp.Register(rr, m.ports.Dispatcher, classify.Format(m.opts.ResponseFormat))
	})
}
