package handler

import (
	"net/http"

	"github.com/wpbrasil/boleto-gateway-go/internal/infra/observability"
	"github.com/wpbrasil/boleto-gateway-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(
	boletoSvc *service.BoletoService,
	settingsSvc *service.SettingsService,
	authSvc *service.AuthService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Bank catalogue and per-bank configuration fields.
		r.Get("/banks", listBanksHandler(logger))
		r.Get("/banks/{bankID}/fields", bankFieldsHandler(logger))

		// Admin token.
		r.Post("/auth/token", tokenHandler(authSvc, logger))

		// Gateway settings (admin only).
		r.Group(func(r chi.Router) {
			r.Use(JWTAuthMiddleware(authSvc, logger))
			r.Get("/settings", getSettingsHandler(settingsSvc, logger))
			r.Put("/settings", updateSettingsHandler(settingsSvc, logger))
		})

		// Boleto generation and retrieval.
		r.Post("/orders/{orderID}/boleto", generateBoletoHandler(boletoSvc, logger))
		r.Get("/orders/{orderID}/boleto", getBoletoHandler(boletoSvc, logger))
		r.Get("/orders/{orderID}/boleto/slip", getSlipHandler(boletoSvc, logger))

		// Metrics snapshot.
		r.Get("/metrics/gateway", gatewayMetricsHandler(metrics))
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func gatewayMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetGatewaySnapshot())
	}
}
