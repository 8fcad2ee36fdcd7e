package httpkit

import (
	"net/http"

	"langid/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware for the ops API
// cors is skipped when no origins are configured
func CommonStack(cors middleware.CORSOptions) []func(http.Handler) http.Handler {
	stack := middleware.Defaults()
	if len(cors.AllowedOrigins) > 0 {
		stack = append(stack, middleware.CORS(cors))
	}
	return append(stack, middleware.AllowContentType("application/json"))
}
