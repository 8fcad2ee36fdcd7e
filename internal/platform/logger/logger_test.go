package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "langid/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"   nonsense   ", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInit_Get_Named(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "svc-a",
		Writer:       &buf,
		WithCaller:   true,
		StaticFields: map[string]string{"build": "test"},
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("listener").Info().Msg("named-msg")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "listener")
	kit.MustContain(t, out, "svc-a")
	kit.MustContain(t, out, "build=")
}

func TestC_CarriesConnectionFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Level: "debug", Format: "json", Writer: &buf})

	ctx := WithConn(context.Background(), "c-123", "127.0.0.1:5000")
	ctx = WithRequest(ctx, "r-9")
	ctx = Into(ctx, &base)

	C(ctx).Debug().Msg("framed")

	out := buf.String()
	kit.MustContain(t, out, `"conn_id":"c-123"`)
	kit.MustContain(t, out, `"remote_addr":"127.0.0.1:5000"`)
	kit.MustContain(t, out, `"request_id":"r-9"`)
	kit.MustContain(t, out, `"message":"framed"`)

	if got := ConnID(ctx); got != "c-123" {
		t.Fatalf("ConnID = %q", got)
	}
	if got := ConnID(context.Background()); got != "" {
		t.Fatalf("ConnID on empty ctx = %q", got)
	}
}

func TestNew_SamplingAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "json", Writer: &buf, SampleEvery: 1})
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")
	if strings.Contains(buf.String(), "dropped") {
		t.Fatalf("info line emitted at warn level: %s", buf.String())
	}
	kit.MustContain(t, buf.String(), "kept")
}

func TestFromEnv_Independently(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "svc-b")
	t.Setenv("LOG_COMPONENT", "comp-b")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" {
		t.Fatalf("FromEnv Level = %q, want warn", opt.Level)
	}
	if opt.Format != "json" || opt.Service != "svc-b" || opt.Component != "comp-b" {
		t.Fatalf("FromEnv fields mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}
