package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/service"

	"go.uber.org/zap"
)

// POST /v1/auth/token
func tokenHandler(authSvc *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		resp, err := authSvc.Token(r.Context(), &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
