package module

import (
	"time"

	"langid/internal/adapters/langid/lingua"
	"langid/internal/adapters/langid/whatlang"
	"langid/internal/core/classify"
	"langid/internal/core/frame"
	"langid/internal/platform/config"
	"langid/internal/platform/net/http/bind"
)

// Payload join rules
const (
	JoinConcat  = "concat"
	JoinNewline = "newline"
)

// Options holds configuration settings for the classify module
type Options struct {
	TCPAddr        string        `env:"LANGID_TCP_ADDR" validate:"listenaddr"`
	ReadChunk      int           `env:"LANGID_READ_CHUNK" validate:"min=1,max=65536"`
	ReadTimeout    time.Duration `env:"LANGID_READ_TIMEOUT" validate:"min=0"`
	WriteTimeout   time.Duration `env:"LANGID_WRITE_TIMEOUT" validate:"min=0"`
	MaxFrameBytes  int           `env:"LANGID_MAX_FRAME_BYTES" validate:"min=0"`
	Terminator     string        `env:"LANGID_TERMINATOR" validate:"required"`
	AltName        string        `env:"LANGID_ALT_NAME" validate:"required"`
	PayloadJoin    string        `env:"LANGID_PAYLOAD_JOIN" validate:"oneof=concat newline"`
	ResponseFormat string        `env:"LANGID_RESPONSE_FORMAT" validate:"oneof=tuple json"`
	Normalize      bool          `env:"LANGID_NORMALIZE"`
	DrainTimeout   time.Duration `env:"LANGID_DRAIN_TIMEOUT" validate:"min=0"`

	PrimaryReliable  float64  `env:"LANGID_PRIMARY_RELIABLE" validate:"min=0,max=1"`
	PrimaryLanguages []string `env:"LANGID_PRIMARY_LANGUAGES" validate:"dive,langtag"`

	AltLanguages   []string `env:"LANGID_ALT_LANGUAGES" validate:"dive,langtag"`
	AltLowAccuracy bool     `env:"LANGID_ALT_LOW_ACCURACY"`
	AltHintWeight  float64  `env:"LANGID_ALT_HINT_WEIGHT" validate:"min=0"`
	AltPreload     bool     `env:"LANGID_ALT_PRELOAD"`
}

// Defaults returns the options used when nothing is configured
func Defaults() Options {
	return Options{
		TCPAddr:         "127.0.0.1:15555",
		ReadChunk:       frame.DefaultChunkSize,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    10 * time.Second,
		MaxFrameBytes:   1 << 20,
		Terminator:      frame.DefaultTerminator,
		AltName:         classify.DefaultAltName,
		PayloadJoin:     JoinConcat,
		ResponseFormat:  string(classify.FormatTuple),
		DrainTimeout:    5 * time.Second,
		PrimaryReliable: whatlang.DefaultReliable,
		AltHintWeight:   lingua.DefaultHintWeight,
	}
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	d := Defaults()
	c := cfg.Prefix("LANGID_")
	return Options{
		TCPAddr:        c.MayAddr("TCP_ADDR", d.TCPAddr),
		ReadChunk:      c.MayInt("READ_CHUNK", d.ReadChunk),
		ReadTimeout:    c.MayDuration("READ_TIMEOUT", d.ReadTimeout),
		WriteTimeout:   c.MayDuration("WRITE_TIMEOUT", d.WriteTimeout),
		MaxFrameBytes:  c.MayInt("MAX_FRAME_BYTES", d.MaxFrameBytes),
		Terminator:     c.MayString("TERMINATOR", d.Terminator),
		AltName:        c.MayString("ALT_NAME", d.AltName),
		PayloadJoin:    c.MayEnum("PAYLOAD_JOIN", d.PayloadJoin, JoinConcat, JoinNewline),
		ResponseFormat: c.MayEnum("RESPONSE_FORMAT", d.ResponseFormat, string(classify.FormatTuple), string(classify.FormatJSON)),
		Normalize:      c.MayBool("NORMALIZE", false),
		DrainTimeout:   c.MayDuration("DRAIN_TIMEOUT", d.DrainTimeout),

		PrimaryReliable:  c.MayFloat64("PRIMARY_RELIABLE", d.PrimaryReliable),
		PrimaryLanguages: c.MayCSV("PRIMARY_LANGUAGES", nil),

		AltLanguages:   c.MayCSV("ALT_LANGUAGES", nil),
		AltLowAccuracy: c.MayBool("ALT_LOW_ACCURACY", false),
		AltHintWeight:  c.MayFloat64("ALT_HINT_WEIGHT", d.AltHintWeight),
		AltPreload:     c.MayBool("ALT_PRELOAD", false),
	}
}

// Validate checks o with the shared validator
func (o Options) Validate() error { return bind.Struct(o) }

// separator maps the join rule to the parser separator
func (o Options) separator() string {
	if o.PayloadJoin == JoinNewline {
		return "\n"
	}
	return ""
}
