package kernel

import (
	"net/http"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/handler"
	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/endpoint"
	"github.com/airesearchhub/site/pkg/markdown"
	"github.com/airesearchhub/site/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *http.ServeMux
	Pipeline middleware.Pipeline
	Posts    *content.Posts
	Renderer *markdown.Renderer
}

func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) http.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Public(apiHandler),
	)
}

func (r *Router) Posts() {
	abstract := handler.NewPostsHandler(r.Posts, r.Renderer)

	index := r.PublicPipelineFor(abstract.Index)
	show := r.PublicPipelineFor(abstract.Show)

	r.Mux.HandleFunc("GET /posts", index)
	r.Mux.HandleFunc("GET /posts/{slug}", show)
}

func (r *Router) Tags() {
	abstract := handler.NewTagsHandler(r.Posts)

	r.Mux.HandleFunc("GET /tags", r.PublicPipelineFor(abstract.Index))
}

func (r *Router) Metrics() {
	if r.Pipeline.Metrics == nil {
		return
	}

	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler(r.Pipeline.Metrics))
}
