package handler

import (
	"log/slog"
	"net/http"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/handler/payload"
	"github.com/airesearchhub/site/pkg/endpoint"
)

type TagsHandler struct {
	Posts *content.Posts
}

func NewTagsHandler(posts *content.Posts) TagsHandler {
	return TagsHandler{
		Posts: posts,
	}
}

func (h TagsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	tags, err := h.Posts.Tags()

	if err != nil {
		slog.Error("Error counting tags", "err", err)

		return endpoint.InternalError("Error counting tags")
	}

	return respondWithEnvelope(w, r, payload.GetTagsResponse(tags))
}
