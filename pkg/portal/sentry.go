package portal

import (
	"github.com/airesearchhub/site/metal/env"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}
