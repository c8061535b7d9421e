package handler

import (
	"net/http"

	"github.com/wpbrasil/boleto-gateway-go/internal/bank"
	"github.com/wpbrasil/boleto-gateway-go/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GET /v1/banks
func listBanksHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"banks": bank.List(),
		})
	}
}

// GET /v1/banks/{bankID}/fields
//
// Unknown bank ids are not an error: they degrade to an empty field
// set, matching the gateway's fallback behavior.
func bankFieldsHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := domain.BankID(chi.URLParam(r, "bankID"))

		fields := bank.FieldsFor(id)
		if len(fields) == 0 {
			logger.Debug("bank fields: unrecognized bank", zap.String("bank", string(id)))
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"bank":   id,
			"name":   bank.Name(id),
			"fields": fields,
		})
	}
}
