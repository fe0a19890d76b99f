package cmd

import (
	"fmt"
	"net/http"

	"conduit/internal/http/handler"
	"conduit/internal/http/handler/middleware"
	"conduit/internal/http/payload"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const metricsPath = "/metrics"

// NewRouter assembles the routes and the middleware chain around them.
func NewRouter(
	logger *zap.SugaredLogger,
	accounts handler.AccountService,
	tokens middleware.TokenValidator,
	db handler.Pinger,
	registry *prometheus.Registry,
) (http.Handler, error) {
	metrics, err := middleware.NewMetricsMiddleware(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	router := mux.NewRouter()
	metrics.Instrument(router)

	// handlers
	usersHlr := handler.NewUsersHandler(logger, payload.Decoder{}, accounts)
	healthHlr := handler.NewHealthHandler(logger, db)
	auth := middleware.NewAuthMiddleware(logger, tokens)

	// register routes
	usersHlr.Mount(router, auth.Authenticate)
	router.HandleFunc(handler.HealthPath, healthHlr.HandleHealth).Methods(http.MethodGet)
	router.Handle(metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(router)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return hdlr, nil
}
