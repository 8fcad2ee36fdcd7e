package http

import (
	"context"
	"io"
	stdhttp "net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRunServesAndStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", func(m *chi.Mux) {
		m.Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = io.WriteString(w, "pong") })
	})
	s.Router().Route("/api", func(r Router) {
		r.Group(func(g Router) {
			g.Get("/v", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = io.WriteString(w, "v1") })
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server never bound")
	}

	for path, want := range map[string]string{"/ping": "pong", "/api/v": "v1"} {
		resp, err := stdhttp.Get("http://" + s.Addr() + path)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, want, string(body))
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServerRunBindError(t *testing.T) {
	s := NewServer("256.0.0.1:bad")
	assert.Error(t, s.Run(context.Background()))
	assert.Equal(t, "256.0.0.1:bad", s.Addr())
}
