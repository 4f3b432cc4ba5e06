package kernel

import (
	"net/http"

	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/llogs"
	"github.com/airesearchhub/site/pkg/markdown"
	"github.com/airesearchhub/site/pkg/middleware"
	"github.com/airesearchhub/site/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
	}

	app.SetRouter(MakeRouter(env))

	return &app, nil
}

func MakeRouter(env *env.Environment) Router {
	metrics := middleware.NewMetrics()

	return Router{
		Env:      env,
		Mux:      http.NewServeMux(),
		Posts:    MakePosts(env),
		Renderer: markdown.NewRenderer(),
		Pipeline: middleware.Pipeline{
			Env:       env,
			RateLimit: middleware.MakeRateLimitMiddleware(env.Network.RateLimitPerMinute, env.Network.TrustedProxies...),
			Metrics:   metrics,
		},
	}
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Posts()
	router.Tags()
	router.Metrics()
}
