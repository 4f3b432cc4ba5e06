package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/airesearchhub/site/pkg/endpoint"
	"github.com/airesearchhub/site/pkg/portal"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID makes sure every request carries an id, reusing the caller's
// X-Request-ID when it looks sane. The id is echoed back in the response.
func RequestID(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if id == "" || len(id) > maxRequestIDLength || strings.ContainsAny(id, "\r\n") {
			id = uuid.NewString()
		}

		w.Header().Set(portal.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		return next(w, r.WithContext(ctx))
	}
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(portal.RequestIDKey).(string)

	return id
}
