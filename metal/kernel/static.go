package kernel

import (
	"fmt"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/handler"
	"github.com/airesearchhub/site/pkg/endpoint"
	"github.com/airesearchhub/site/pkg/markdown"
)

// StaticRoute is an API route rendered to a file at build time. Params are
// the path values the handler reads, since there is no mux in between.
type StaticRoute struct {
	Path   string
	Params map[string]string
	Handle endpoint.ApiHandler
}

// StaticRoutes lists the listing, the tag cloud and one route per post.
func StaticRoutes(posts *content.Posts, renderer *markdown.Renderer) ([]StaticRoute, error) {
	postsHandler := handler.NewPostsHandler(posts, renderer)
	tagsHandler := handler.NewTagsHandler(posts)

	items, err := posts.All()

	if err != nil {
		return nil, fmt.Errorf("listing posts for the static build: %w", err)
	}

	routes := []StaticRoute{
		{Path: "/posts", Handle: postsHandler.Index},
		{Path: "/tags", Handle: tagsHandler.Index},
	}

	for _, post := range items {
		routes = append(routes, StaticRoute{
			Path:   "/posts/" + post.Slug,
			Params: map[string]string{"slug": post.Slug},
			Handle: postsHandler.Show,
		})
	}

	return routes, nil
}
