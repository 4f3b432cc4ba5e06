package kernel

import (
	"log"
	"log/slog"
	"strconv"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/llogs"
	"github.com/airesearchhub/site/pkg/portal"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

const defaultRateLimitPerMinute = 120

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Environment: env.App.Type,
		Debug:       env.App.IsLocal(),
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	if !env.Sentry.IsEnabled() {
		slog.Info("sentry disabled, no DSN configured")
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakePosts(env *env.Environment) *content.Posts {
	return content.MakePosts(env.Content)
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	wordsPerMinute := intFromEnv("ENV_CONTENT_WORDS_PER_MINUTE", env.DefaultWordsPerMinute, errorSuffix)
	rateLimit := intFromEnv("ENV_RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMinute, errorSuffix)

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVarOr("ENV_APP_LOG_LEVEL", "info"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost:           env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort:           env.GetEnvVar("ENV_HTTP_PORT"),
		RateLimitPerMinute: rateLimit,
		TrustedProxies:     portal.NewStringable(env.GetEnvVar("ENV_TRUSTED_PROXIES")).SplitList(),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetSecretOrEnv("sentry_dsn", "ENV_SENTRY_DSN"),
	}

	contentEnv := env.ContentEnvironment{
		Dir:            env.GetEnvVarOr("ENV_CONTENT_DIR", env.DefaultContentDir),
		Extensions:     env.ParseExtensions(env.GetEnvVar("ENV_CONTENT_EXTENSIONS")),
		WordsPerMinute: wordsPerMinute,
	}

	staticEnv := env.StaticEnvironment{
		OutputDir: env.GetEnvVarOr("ENV_STATIC_OUTPUT_DIR", env.DefaultStaticOutputDir),
	}

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(contentEnv); err != nil {
		panic(errorSuffix + "invalid [CONTENT] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(staticEnv); err != nil {
		panic(errorSuffix + "invalid [STATIC] model: " + validate.GetErrorsAsJson())
	}

	blog := &env.Environment{
		App:     app,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Content: contentEnv,
		Static:  staticEnv,
	}

	if _, err := validate.Rejects(blog); err != nil {
		panic(errorSuffix + "invalid [blog] model: " + validate.GetErrorsAsJson())
	}

	return blog
}

func intFromEnv(key string, fallback int, errorSuffix string) int {
	raw := env.GetEnvVar(key)

	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)

	if err != nil {
		panic(errorSuffix + "invalid value for " + key + ": " + err.Error())
	}

	return value
}
