package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/service"

	"go.uber.org/zap"
)

// GET /v1/settings
func getSettingsHandler(svc *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := svc.Get(r.Context())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}

// PUT /v1/settings
func updateSettingsHandler(svc *service.SettingsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg domain.GatewayConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := svc.Update(r.Context(), &cfg); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, cfg)
	}
}
