package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// --- Orders (implements port.OrderFetcher) ---

// supabaseOrder maps the orders table columns to our domain.
type supabaseOrder struct {
	ID        int64     `json:"id"`
	Total     float64   `json:"total"`
	FirstName string    `json:"billing_first_name"`
	LastName  string    `json:"billing_last_name"`
	Address1  string    `json:"billing_address_1"`
	Address2  string    `json:"billing_address_2"`
	City      string    `json:"billing_city"`
	State     string    `json:"billing_state"`
	Postcode  string    `json:"billing_postcode"`
	CreatedAt time.Time `json:"created_at"`
}

// GetOrder fetches the order snapshot. A missing order returns
// (nil, nil): the caller treats it as a silent no-op.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*domain.OrderSnapshot, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", orderID))

	path := fmt.Sprintf("orders?select=*&id=eq.%d&limit=1", orderID)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if body == nil {
		return nil, nil
	}

	var rows []supabaseOrder
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &domain.OrderSnapshot{
		ID:        row.ID,
		Total:     row.Total,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Address1:  row.Address1,
		Address2:  row.Address2,
		City:      row.City,
		State:     row.State,
		Postcode:  row.Postcode,
		PlacedAt:  row.CreatedAt,
	}, nil
}

// --- Gateway settings (implements port.SettingsStore) ---

// supabaseSettings is the singleton settings row. The whole config
// lives in one jsonb column so adding a field never needs a
// migration.
type supabaseSettings struct {
	ID     int                  `json:"id"`
	Config domain.GatewayConfig `json:"config"`
}

const settingsRowID = 1

// GetSettings returns the merchant gateway configuration, or
// (nil, nil) when the gateway was never configured.
func (c *Client) GetSettings(ctx context.Context) (*domain.GatewayConfig, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetSettings")
	defer span.End()

	path := fmt.Sprintf("boleto_settings?select=*&id=eq.%d&limit=1", settingsRowID)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if body == nil {
		return nil, nil
	}

	var rows []supabaseSettings
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cfg := rows[0].Config
	return &cfg, nil
}

// SaveSettings upserts the singleton settings row.
func (c *Client) SaveSettings(ctx context.Context, cfg *domain.GatewayConfig) error {
	ctx, span := tracer.Start(ctx, "supabase.SaveSettings")
	defer span.End()

	row := supabaseSettings{ID: settingsRowID, Config: *cfg}
	_, err := c.doRequest(ctx, http.MethodPost, "boleto_settings?on_conflict=id", row,
		"Prefer", "resolution=merge-duplicates,return=representation",
	)
	if err != nil {
		return &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	return nil
}

// --- Boleto data (implements port.BoletoStore) ---

// supabaseBoleto maps the boleto_data table: one row per order, with
// the derived record in a jsonb column keyed by order id.
type supabaseBoleto struct {
	ID      string            `json:"id,omitempty"`
	OrderID int64             `json:"order_id"`
	Data    domain.BoletoData `json:"data"`
}

// SaveBoletoData upserts the derived record for an order. Re-saving
// overwrites the previous record (idempotent overwrite).
func (c *Client) SaveBoletoData(ctx context.Context, orderID int64, data *domain.BoletoData) error {
	ctx, span := tracer.Start(ctx, "supabase.SaveBoletoData")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", orderID))

	row := supabaseBoleto{
		ID:      uuid.New().String(),
		OrderID: orderID,
		Data:    *data,
	}
	_, err := c.doRequest(ctx, http.MethodPost, "boleto_data?on_conflict=order_id", row,
		"Prefer", "resolution=merge-duplicates,return=representation",
	)
	if err != nil {
		return &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	return nil
}

// GetBoletoData returns the persisted record for an order, or
// (nil, nil) when none was generated yet.
func (c *Client) GetBoletoData(ctx context.Context, orderID int64) (*domain.BoletoData, error) {
	ctx, span := tracer.Start(ctx, "supabase.GetBoletoData")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", orderID))

	path := fmt.Sprintf("boleto_data?select=*&order_id=eq.%d&limit=1", orderID)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "supabase", Err: err}
	}
	if body == nil {
		return nil, nil
	}

	var rows []supabaseBoleto
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode boleto data: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	data := rows[0].Data
	return &data, nil
}
