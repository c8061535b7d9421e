// Package port defines the interfaces (ports) for external
// dependencies. Following hexagonal architecture, these ports
// decouple the domain/service layer from concrete implementations.
package port

import (
	"context"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
)

// OrderFetcher retrieves the read-only order snapshot used to derive
// boleto data. A missing order is reported as (nil, nil), not as an
// error. The deriver treats it as a silent no-op.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID int64) (*domain.OrderSnapshot, error)
}

// SettingsStore reads and writes the merchant gateway configuration.
type SettingsStore interface {
	GetSettings(ctx context.Context) (*domain.GatewayConfig, error)
	SaveSettings(ctx context.Context, cfg *domain.GatewayConfig) error
}

// BoletoStore persists derived boleto data keyed by order id.
// Saving twice for the same order overwrites the previous record.
type BoletoStore interface {
	SaveBoletoData(ctx context.Context, orderID int64, data *domain.BoletoData) error
	GetBoletoData(ctx context.Context, orderID int64) (*domain.BoletoData, error)
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
