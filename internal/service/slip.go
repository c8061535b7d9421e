package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
)

// BuildSlipPayload assembles everything a slip template needs for an
// order: the persisted boleto record, the selected bank and its
// configured field values, the shop identity, and the computed
// display lines. Returns ErrNotFound when no boleto was generated for
// the order.
func (s *BoletoService) BuildSlipPayload(ctx context.Context, orderID int64) (*domain.SlipPayload, error) {
	ctx, span := boletoTracer.Start(ctx, "BoletoService.BuildSlipPayload")
	defer span.End()

	data, err := s.store.GetBoletoData(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &domain.ErrNotFound{Resource: "boleto", ID: strconv.FormatInt(orderID, 10)}
	}

	cfg, err := s.gatewaySettings(ctx)
	if err != nil {
		return nil, err
	}

	payload := &domain.SlipPayload{
		BoletoData: *data,

		Bank:       cfg.Bank,
		BankFields: cfg.BankFields,

		ShopName:      cfg.ShopName,
		CorporateName: cfg.CorporateName,
		CPFCNPJ:       cfg.CPFCNPJ,
		ShopAddress:   cfg.ShopAddress,
		ShopCityState: cfg.ShopCityState,
		Logo:          cfg.Logo,

		Demonstrativo1: fmt.Sprintf("Payment for purchase in %s", cfg.ShopName),
		Demonstrativo2: fmt.Sprintf("Payment referred to the order #%s", data.OurNumber),
		Demonstrativo3: cfg.ShopName + " - " + cfg.ShopURL,
		Instrucoes1:    "- Mr. Cash, charge a fine of 2% after maturity",
		Instrucoes2:    "- Receive up to 10 days past due",
		Instrucoes3:    fmt.Sprintf("- For questions please contact us: %s", cfg.ShopEmail),
		Instrucoes4:    "",
		Identificacao:  cfg.ShopName,
	}

	return payload, nil
}
