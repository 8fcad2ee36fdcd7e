package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"langid/internal/core/version"
)

// docReader is a seam so tests can inject a broken document
var docReader = func() string { return doc }

// serveDocJSON parses the document, fills in the shared error responses and serves it
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/")
		stampVersion(spec, version.Info().Version)
		ensureErrorResponseDefinition(spec)
		addDefaultResponse(spec, "500", internalError)
		addDefaultResponse(spec, "400", badRequest)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 and gives it a servers array
// swagger ui cannot render 3.1 yet
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func stampVersion(spec map[string]any, v string) {
	info, ok := spec["info"].(map[string]any)
	if !ok || v == "" {
		return
	}
	info["version"] = v
}

// ensureErrorResponseDefinition adds the error envelope schema if missing
// it mirrors phttp.Envelope on the error path
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

var internalError = errorResponse("Internal Server Error", map[string]any{
	"status_code": 500,
	"status":      "Internal Server Error",
	"code":        1,
	"error":       "panic recovered",
	"request_id":  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
})

var badRequest = errorResponse("Bad Request", map[string]any{
	"status_code": 400,
	"status":      "Bad Request",
	"code":        5,
	"error":       "invalid JSON body",
	"request_id":  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
})

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// addDefaultResponse gives every operation resp under status unless it declares its own
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[status]; !exists {
				resps[status] = resp
			}
		}
	}
}
