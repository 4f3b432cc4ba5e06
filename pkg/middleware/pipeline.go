package middleware

import (
	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/endpoint"
)

type Pipeline struct {
	Env       *env.Environment
	RateLimit RateLimitMiddleware
	Metrics   *Metrics
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Public is the stack every read-only blog route goes through.
func (m Pipeline) Public(h endpoint.ApiHandler) endpoint.ApiHandler {
	stack := []endpoint.Middleware{RequestID}

	if m.Metrics != nil {
		stack = append(stack, m.Metrics.Handle)
	}

	stack = append(stack, m.RateLimit.Handle)

	return m.Chain(h, stack...)
}
