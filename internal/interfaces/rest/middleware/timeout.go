package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application"
)

var timeoutBody = func() string {
	svcErr := application.NewTimeoutError(nil)
	b, _ := json.Marshal(api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    svcErr.Code,
			Message: svcErr.Message,
		},
	})
	return string(b)
}()

// Timeout bounds the request context. Provider calls made by the handler
// observe the same deadline.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)

			timeoutHandler.ServeHTTP(w, r)
		})
	}
}
