package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/handler/payload"
	"github.com/airesearchhub/site/pkg/endpoint"
	"github.com/airesearchhub/site/pkg/markdown"
)

type PostsHandler struct {
	Posts    *content.Posts
	Renderer *markdown.Renderer
}

func NewPostsHandler(posts *content.Posts, renderer *markdown.Renderer) PostsHandler {
	return PostsHandler{
		Posts:    posts,
		Renderer: renderer,
	}
}

func (h PostsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	posts, err := h.Posts.All()

	if err != nil {
		slog.Error("Error listing posts", "err", err)

		return endpoint.InternalError("Error listing posts")
	}

	posts = content.FilterByTag(posts, r.URL.Query().Get("tag"))

	return respondWithEnvelope(w, r, payload.GetPostsResponse(posts))
}

func (h PostsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := strings.TrimSpace(r.PathValue("slug"))

	if slug == "" {
		return endpoint.BadRequestError("Slugs are required to show posts content")
	}

	post, err := h.Posts.FindBy(slug)

	if err != nil {
		return endpoint.LogInternalError("Error reading the given post", err)
	}

	if post == nil {
		return endpoint.NotFound("the given post does not exist")
	}

	html, err := h.Renderer.Render(post.Content)

	if err != nil {
		return endpoint.LogInternalError("Error rendering the given post", err)
	}

	return respondWithEnvelope(w, r, payload.GetPostDetailResponse(*post, html))
}
