package service

import (
	"context"
	"fmt"

	"github.com/wpbrasil/boleto-gateway-go/internal/bank"
	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var settingsTracer = otel.Tracer("service/settings")

// SettingsService manages the merchant gateway configuration.
type SettingsService struct {
	store  port.SettingsStore
	cache  port.Cache[*domain.GatewayConfig]
	logger *zap.Logger
}

// NewSettingsService creates a settings service. The cache is shared
// with the boleto service so updates invalidate reads immediately.
func NewSettingsService(store port.SettingsStore, cache port.Cache[*domain.GatewayConfig], logger *zap.Logger) *SettingsService {
	return &SettingsService{store: store, cache: cache, logger: logger}
}

// Get returns the current gateway configuration. A never-configured
// gateway yields an empty config, not an error.
func (s *SettingsService) Get(ctx context.Context) (*domain.GatewayConfig, error) {
	ctx, span := settingsTracer.Start(ctx, "SettingsService.Get")
	defer span.End()

	cfg, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if cfg == nil {
		cfg = &domain.GatewayConfig{}
	}
	return cfg, nil
}

// Update validates and persists the gateway configuration, then
// invalidates the settings cache. Validation is deliberately lenient:
// an unknown bank id is accepted (it simply has no extra fields) and
// the deadline falls back to the default when unset.
func (s *SettingsService) Update(ctx context.Context, cfg *domain.GatewayConfig) error {
	ctx, span := settingsTracer.Start(ctx, "SettingsService.Update")
	defer span.End()

	if cfg == nil {
		return &domain.ErrValidation{Field: "body", Message: "required"}
	}
	if cfg.DeadlineDays < 0 {
		return &domain.ErrValidation{Field: "deadline_days", Message: "must not be negative"}
	}
	if cfg.Bank != domain.BankNone && !bank.IsKnown(cfg.Bank) {
		s.logger.Warn("settings: unrecognized bank, no extra fields will apply",
			zap.String("bank", string(cfg.Bank)),
		)
	}

	// Fill per-bank field defaults the merchant left empty.
	specs := bank.FieldsFor(cfg.Bank)
	if len(specs) > 0 && cfg.BankFields == nil {
		cfg.BankFields = make(map[string]string, len(specs))
	}
	for _, spec := range specs {
		if spec.Default != "" && cfg.BankFields[spec.Key] == "" {
			cfg.BankFields[spec.Key] = spec.Default
		}
	}

	if err := s.store.SaveSettings(ctx, cfg); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.cache.Delete(settingsCacheKey)

	s.logger.Info("gateway settings updated",
		zap.String("bank", string(cfg.Bank)),
		zap.Int("deadline_days", cfg.EffectiveDeadlineDays()),
	)

	return nil
}
