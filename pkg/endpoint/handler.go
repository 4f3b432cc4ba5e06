package endpoint

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
)

func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			logApiError(r, err)

			captureApiError(r, err)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(err.Status)

			resp := ErrorResponse{
				Error:  err.Message,
				Status: err.Status,
				Data:   err.Data,
			}

			if result := json.NewEncoder(w).Encode(resp); result != nil {
				slog.Error("Could not encode error response", "error", result)
			}
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			scopeApiError := NewScopeApiError(scope, r, apiErr)

			scopeApiError.Enrich()

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

func getSentryLevel(status int) sentry.Level {
	// Unknown slugs and throttled clients are expected traffic.
	switch {
	case status == http.StatusNotFound, status == http.StatusTooManyRequests:
		return sentry.LevelInfo
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}

func logApiError(r *http.Request, apiErr *ApiError) {
	if apiErr.Status < http.StatusInternalServerError {
		slog.Warn("api error", "message", apiErr.Message, "status", apiErr.Status, "path", r.URL.Path)

		return
	}

	slog.Error("api error", "message", apiErr.Message, "status", apiErr.Status, "path", r.URL.Path)
}
