package handler

import (
	"net/http"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/service"

	"go.uber.org/zap"
)

// POST /v1/orders/{orderID}/boleto
//
// Generates and persists the boleto data for an order. A missing
// order (or a zero id) is a silent no-op and answers 204, matching
// the gateway's defensive behavior.
func generateBoletoHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := orderIDParam(r)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		data, err := svc.GenerateForOrder(r.Context(), orderID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		if data == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusCreated, domain.GenerateResponse{
			OrderID:  orderID,
			Boleto:   data,
			Validity: data.DueDate,
		})
	}
}

// GET /v1/orders/{orderID}/boleto
func getBoletoHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := orderIDParam(r)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		data, err := svc.GetForOrder(r.Context(), orderID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, data)
	}
}

// GET /v1/orders/{orderID}/boleto/slip
//
// The payload a slip template consumes: derived data, bank fields,
// shop identity and display lines.
func getSlipHandler(svc *service.BoletoService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := orderIDParam(r)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		payload, err := svc.BuildSlipPayload(r.Context(), orderID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	}
}
