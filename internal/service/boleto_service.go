// Package service implements the gateway's business logic: the boleto
// data deriver, the settings lifecycle, and admin authentication.
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/infra/observability"
	"github.com/wpbrasil/boleto-gateway-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var boletoTracer = otel.Tracer("service/boleto")

const dateLayout = "02/01/2006"

const settingsCacheKey = "gateway_settings"

// NumberFunc maps an order id to the identifier printed on the slip
// as "nosso número" and document number. The default is the decimal
// order id itself; callers may install an override at construction.
type NumberFunc func(orderID int64) string

func defaultNumber(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}

// BoletoService derives boleto data from order snapshots and gateway
// settings, persists it, and assembles slip payloads for rendering
// consumers.
type BoletoService struct {
	orders   port.OrderFetcher
	settings port.SettingsStore
	store    port.BoletoStore
	cache    port.Cache[*domain.GatewayConfig]
	metrics  *observability.Metrics
	logger   *zap.Logger

	now    func() time.Time
	number NumberFunc
}

// NewBoletoService creates the boleto service with the real clock and
// the identity number function.
func NewBoletoService(
	orders port.OrderFetcher,
	settings port.SettingsStore,
	store port.BoletoStore,
	cache port.Cache[*domain.GatewayConfig],
	metrics *observability.Metrics,
	logger *zap.Logger,
) *BoletoService {
	return &BoletoService{
		orders:   orders,
		settings: settings,
		store:    store,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		number:   defaultNumber,
	}
}

// WithClock replaces the service clock. Used by tests to pin the
// now-derived date fields.
func (s *BoletoService) WithClock(now func() time.Time) *BoletoService {
	s.now = now
	return s
}

// WithNumberFunc installs an alternate identifier mapping for
// ourNumber/documentNumber.
func (s *BoletoService) WithNumberFunc(fn NumberFunc) *BoletoService {
	s.number = fn
	return s
}

// Derive computes the boleto record for an order. It is deterministic
// given (order, cfg, now): re-deriving with identical inputs yields an
// identical record. A nil order or a zero order id is a silent no-op
// and returns nil.
func (s *BoletoService) Derive(order *domain.OrderSnapshot, cfg *domain.GatewayConfig, now time.Time) *domain.BoletoData {
	if order == nil || order.ID == 0 {
		return nil
	}

	number := s.number(order.ID)
	due := now.Add(time.Duration(cfg.EffectiveDeadlineDays()) * 24 * time.Hour)
	today := now.Format(dateLayout)

	address1 := order.Address1
	if order.Address2 != "" {
		address1 = order.Address1 + ", " + order.Address2
	}

	return &domain.BoletoData{
		OurNumber:      number,
		DocumentNumber: number,
		DueDate:        due.Format(dateLayout),
		DocumentDate:   today,
		ProcessingDate: today,
		Amount:         formatAmount(order.Total + parseRate(cfg.Rate)),
		PayerName:      strings.TrimSpace(order.FirstName + " " + order.LastName),
		AddressLine1:   address1,
		AddressLine2:   order.City + " - " + order.State + " - Zip Code: " + order.Postcode,
	}
}

// GenerateForOrder fetches the order snapshot and the gateway
// settings, derives the boleto record, and persists it keyed by the
// order id. Re-invoking overwrites the record with a fresh due-date
// baseline. A missing order is a silent no-op: nothing is derived or
// persisted and both return values are nil.
func (s *BoletoService) GenerateForOrder(ctx context.Context, orderID int64) (*domain.BoletoData, error) {
	ctx, span := boletoTracer.Start(ctx, "BoletoService.GenerateForOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", orderID))

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("generate_boleto", time.Since(start)) }()

	var (
		order *domain.OrderSnapshot
		cfg   *domain.GatewayConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = s.orders.GetOrder(gctx, orderID)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = s.gatewaySettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncrRequest("error")
		return nil, err
	}

	data := s.Derive(order, cfg, s.now())
	if data == nil {
		s.logger.Debug("boleto generation skipped: order missing or id zero",
			zap.Int64("order_id", orderID),
		)
		return nil, nil
	}

	if err := s.store.SaveBoletoData(ctx, orderID, data); err != nil {
		s.metrics.IncrRequest("error")
		s.logger.Error("failed to persist boleto data",
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)
		return nil, err
	}

	s.metrics.IncrBoletoIssued(string(cfg.Bank))
	s.metrics.IncrRequest("success")
	s.logger.Info("boleto data generated",
		zap.Int64("order_id", orderID),
		zap.String("bank", string(cfg.Bank)),
		zap.String("due_date", data.DueDate),
		zap.String("amount", data.Amount),
	)

	return data, nil
}

// GetForOrder returns the persisted boleto record for an order.
func (s *BoletoService) GetForOrder(ctx context.Context, orderID int64) (*domain.BoletoData, error) {
	ctx, span := boletoTracer.Start(ctx, "BoletoService.GetForOrder")
	defer span.End()

	data, err := s.store.GetBoletoData(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, &domain.ErrNotFound{Resource: "boleto", ID: strconv.FormatInt(orderID, 10)}
	}
	return data, nil
}

// gatewaySettings resolves the current gateway configuration through
// the TTL cache.
func (s *BoletoService) gatewaySettings(ctx context.Context) (*domain.GatewayConfig, error) {
	if cfg, ok := s.cache.Get(settingsCacheKey); ok {
		s.metrics.IncrCacheHit("settings")
		return cfg, nil
	}
	s.metrics.IncrCacheMiss("settings")

	cfg, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &domain.GatewayConfig{}
	}
	s.cache.Set(settingsCacheKey, cfg)
	return cfg, nil
}

// parseRate normalizes a merchant-entered surcharge rate. A comma
// decimal separator is accepted; anything non-numeric counts as zero.
func parseRate(rate string) float64 {
	rate = strings.TrimSpace(strings.ReplaceAll(rate, ",", "."))
	if rate == "" {
		return 0
	}
	v, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatAmount renders a monetary value with exactly two fractional
// digits, a comma decimal separator and no grouping separator. The
// format is fixed regardless of deployment locale.
func formatAmount(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
