package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/airesearchhub/site/metal/kernel"
	"github.com/airesearchhub/site/pkg/endpoint"
	"github.com/airesearchhub/site/pkg/portal"
	"github.com/getsentry/sentry-go"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)

	if err != nil {
		panic("bootstrapping error > " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic(err.Error())
	}
}

func main() {
	defer app.CloseLogs()
	defer sentry.Flush(2 * time.Second)

	app.Boot()

	environment := app.GetEnv()
	addr := environment.Network.GetHostURL()

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          app.GetMux(),
		IsProduction: app.IsProduction(),
		DevHost:      environment.App.URL,
		Wrap:         app.GetSentry().Handler.Handle,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error starting server", "error", err)
		os.Exit(1)
	}
}
