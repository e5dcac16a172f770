package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"busquery.onebusaway.org/internal/app"
	"busquery.onebusaway.org/internal/appconf"
	"busquery.onebusaway.org/internal/logging"
	"busquery.onebusaway.org/internal/restapi"
	"busquery.onebusaway.org/internal/schedule"
	"busquery.onebusaway.org/internal/webui"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := logging.NewLogger(os.Stdout, cfg.Logging.Format, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := schedule.NewLoader(cfg.Schedule.Source(), logger).Load(ctx)
	manager.PrintStatistics(os.Stdout)

	application := app.NewApplication(cfg, logger, manager)
	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newHandler(application, api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := serve(ctx, srv, logger, cfg.Env); err != nil {
		logging.LogError(logger, "server stopped", err, slog.String("component", "http_server"))
		os.Exit(1)
	}
}

// newHandler mounts the API and, outside production, the debug pages.
func newHandler(application *app.Application, api *restapi.RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	if application.Config.Env != appconf.Production {
		webui.SetWebUIRoutes(router, &webui.WebUI{Application: application})
	}
	return api.Handler(router)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, env appconf.Environment) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", env.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
