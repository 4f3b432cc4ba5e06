package handler

import (
	"log/slog"
	"net/http"

	"github.com/airesearchhub/site/handler/payload"
	"github.com/airesearchhub/site/pkg/endpoint"
)

func respondWithEnvelope[T any](w http.ResponseWriter, r *http.Request, data T) *endpoint.ApiError {
	envelope, err := payload.NewEnvelope(data)

	if err != nil {
		return endpoint.LogInternalError("could not encode the response", err)
	}

	resp := endpoint.NewResponseFrom(envelope.Version, w, r)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(envelope); err != nil {
		slog.Error("failed to encode response", "err", err, "path", r.URL.Path)
	}

	return nil
}
