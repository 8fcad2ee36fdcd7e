package modkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"langid/internal/platform/logger"
	"langid/internal/platform/metrics"
	phttp "langid/internal/platform/net/http"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("Build() = %+v", b)
	}
}

func TestBuildAppliesOptions(t *testing.T) {
	t.Parallel()

	type ports struct{ N int }
	mw := func(next http.Handler) http.Handler { return next }
	b := Build(WithName("classify"), WithPrefix("/api"), WithMiddlewares(mw, mw), WithPorts(ports{N: 3}), WithName("x"))
	if b.Name != "x" || b.Prefix != "/api" || len(b.Mw) != 2 {
		t.Fatalf("Build = %+v", b)
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 3 {
		t.Fatalf("Ports = %#v", b.Ports)
	}
}

func TestBuiltMount(t *testing.T) {
	t.Parallel()

	tagged := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Mod", "1")
			next.ServeHTTP(w, r)
		})
	}
	root := phttp.AdaptChi(chi.NewRouter())
	Build(WithPrefix("/mod"), WithMiddlewares(tagged)).Mount(root, func(r phttp.Router) {
		r.Get("/own", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "own") })
	})
	Build().Mount(root, func(r phttp.Router) {
		r.Get("/flat", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "flat") })
	})

	for path, want := range map[string]string{"/mod/own": "own", "/flat": "flat"} {
		rr := httptest.NewRecorder()
		root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Body.String() != want || (path == "/mod/own") != (rr.Header().Get("X-Mod") == "1") {
			t.Fatalf("%s = %d %q hdr=%q", path, rr.Code, rr.Body.String(), rr.Header().Get("X-Mod"))
		}
	}
}

func TestDepsLogger(t *testing.T) {
	t.Parallel()

	d := Deps{Metrics: metrics.New(false)}
	if d.Logger("classify") == nil {
		t.Fatalf("Logger returned nil")
	}

	var buf bytes.Buffer
	l := logger.New(logger.Options{Writer: &buf, Format: "json", Level: "info"})
	Deps{Log: &l}.Logger("classify").Info().Msg("ready")
	if !strings.Contains(buf.String(), `"component":"classify"`) {
		t.Fatalf("component missing: %s", buf.String())
	}
}
