package kernel

import (
	"net/http"

	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/portal"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}

func (a *App) GetMux() *http.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
