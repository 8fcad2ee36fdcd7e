package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "langid/internal/platform/net/http"
	kit "langid/internal/platform/testkit"
)

func get(r phttp.Router, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func mounted(enabled bool) phttp.Router {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, enabled)
	return r
}

func TestMountDisabled(t *testing.T) {
	r := mounted(false)
	for _, p := range []string{"/api/docs", "/api/docs/doc.json", "/api/docs/index.html"} {
		if rr := get(r, p); rr.Code != http.StatusNotFound {
			t.Fatalf("%s: status %d, want 404", p, rr.Code)
		}
	}
}

func TestMountRedirectsAndServesUI(t *testing.T) {
	r := mounted(true)

	rr := get(r, "/api/docs")
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("redirect: %d %q", rr.Code, rr.Header().Get("Location"))
	}

	rr = get(r, "/api/docs/index.html")
	if rr.Code != http.StatusOK {
		t.Fatalf("index: status %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), "/api/docs/doc.json")
}

func TestDocJSON(t *testing.T) {
	rr := get(mounted(true), "/api/docs/doc.json")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type %q", ct)
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("cache control %q", cc)
	}

	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi %v", spec["openapi"])
	}
	if servers, _ := spec["servers"].([]any); len(servers) != 1 {
		t.Fatalf("servers %v", spec["servers"])
	}

	paths := spec["paths"].(map[string]any)
	for _, p := range []string{"/meta/health", "/meta/ready", "/meta/version", "/meta/service", "/api/v1/classify"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}

	post := paths["/api/v1/classify"].(map[string]any)["post"].(map[string]any)
	resps := post["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500", "502", "503"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("classify lacks %s response", code)
		}
	}

	// the declared 503 on /meta/ready is kept, not replaced
	ready := paths["/meta/ready"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	if d := ready["503"].(map[string]any)["description"]; d != "at least one check failed" {
		t.Fatalf("ready 503 overwritten: %v", d)
	}

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
}

func TestDocJSONParseError(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &docReader, func() string { return "{not json" })

	rr := get(mounted(true), "/api/docs/doc.json")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rr.Code)
	}
}

func TestEnsureServersDowngrades(t *testing.T) {
	for _, spec := range []map[string]any{
		{"swagger": "2.0"},
		{"openapi": "3.1.0"},
		{},
	} {
		ensureServers(spec, "/")
		if spec["openapi"] != "3.0.3" {
			t.Fatalf("openapi %v", spec["openapi"])
		}
		if _, ok := spec["swagger"]; ok {
			t.Fatalf("swagger key kept")
		}
		if _, ok := spec["servers"]; !ok {
			t.Fatalf("servers not set")
		}
	}

	spec := map[string]any{"openapi": "3.0.1", "servers": []any{map[string]any{"url": "/x"}}}
	ensureServers(spec, "/")
	if spec["openapi"] != "3.0.1" || spec["servers"].([]any)[0].(map[string]any)["url"] != "/x" {
		t.Fatalf("existing document rewritten: %v", spec)
	}
}

func TestAddDefaultResponseSkipsDeclared(t *testing.T) {
	spec := map[string]any{"paths": map[string]any{
		"/a": map[string]any{"get": map[string]any{"responses": map[string]any{"400": "mine"}}},
		"/b": map[string]any{"post": map[string]any{}},
	}}
	addDefaultResponse(spec, "400", badRequest)

	a := spec["paths"].(map[string]any)["/a"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	if a["400"] != "mine" {
		t.Fatalf("declared response replaced")
	}
	b := spec["paths"].(map[string]any)["/b"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	if _, ok := b["400"]; !ok {
		t.Fatalf("default not added")
	}
}
