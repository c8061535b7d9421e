package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/infra/cache"
	"github.com/wpbrasil/boleto-gateway-go/internal/infra/observability"
	"github.com/wpbrasil/boleto-gateway-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockOrderFetcher struct {
	order *domain.OrderSnapshot
	err   error
	calls int
}

func (m *mockOrderFetcher) GetOrder(_ context.Context, _ int64) (*domain.OrderSnapshot, error) {
	m.calls++
	return m.order, m.err
}

type mockSettingsStore struct {
	cfg   *domain.GatewayConfig
	err   error
	calls int
	saved *domain.GatewayConfig
}

func (m *mockSettingsStore) GetSettings(_ context.Context) (*domain.GatewayConfig, error) {
	m.calls++
	return m.cfg, m.err
}

func (m *mockSettingsStore) SaveSettings(_ context.Context, cfg *domain.GatewayConfig) error {
	m.saved = cfg
	return m.err
}

type mockBoletoStore struct {
	saved     map[int64]*domain.BoletoData
	saveErr   error
	getErr    error
	saveCalls int
}

func newMockBoletoStore() *mockBoletoStore {
	return &mockBoletoStore{saved: make(map[int64]*domain.BoletoData)}
}

func (m *mockBoletoStore) SaveBoletoData(_ context.Context, orderID int64, data *domain.BoletoData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.saved[orderID] = data
	return nil
}

func (m *mockBoletoStore) GetBoletoData(_ context.Context, orderID int64) (*domain.BoletoData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.saved[orderID], nil
}

// --- Fixtures ---

var fixedNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func fixtureOrder() *domain.OrderSnapshot {
	return &domain.OrderSnapshot{
		ID:        123,
		Total:     49.90,
		FirstName: "Ana",
		LastName:  "Silva",
		Address1:  "Rua A",
		Address2:  "",
		City:      "São Paulo",
		State:     "SP",
		Postcode:  "01000-000",
		PlacedAt:  fixedNow,
	}
}

func newService(orders *mockOrderFetcher, settings *mockSettingsStore, store *mockBoletoStore) *service.BoletoService {
	return service.NewBoletoService(
		orders,
		settings,
		store,
		cache.New[*domain.GatewayConfig](5*time.Minute),
		observability.NewMetrics(),
		zap.NewNop(),
	).WithClock(func() time.Time { return fixedNow })
}

// --- Derive ---

func TestDerive_BasicFixture(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())
	cfg := &domain.GatewayConfig{DeadlineDays: 5}

	data := svc.Derive(fixtureOrder(), cfg, fixedNow)
	if data == nil {
		t.Fatal("expected boleto data, got nil")
	}

	want := &domain.BoletoData{
		OurNumber:      "123",
		DocumentNumber: "123",
		DueDate:        "06/01/2024",
		DocumentDate:   "01/01/2024",
		ProcessingDate: "01/01/2024",
		Amount:         "49,90",
		PayerName:      "Ana Silva",
		AddressLine1:   "Rua A",
		AddressLine2:   "São Paulo - SP - Zip Code: 01000-000",
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("derived data mismatch:\n got %+v\nwant %+v", data, want)
	}
}

func TestDerive_AddressLine2Joined(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())
	order := fixtureOrder()
	order.Address2 = "Apto 4"

	data := svc.Derive(order, &domain.GatewayConfig{DeadlineDays: 5}, fixedNow)
	if data.AddressLine1 != "Rua A, Apto 4" {
		t.Errorf("addressLine1 = %q, want 'Rua A, Apto 4'", data.AddressLine1)
	}
}

func TestDerive_SurchargeRate(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())

	tests := []struct {
		name string
		rate string
		want string
	}{
		{"comma decimal", "2,95", "52,85"},
		{"dot decimal", "2.95", "52,85"},
		{"empty rate", "", "49,90"},
		{"non-numeric rate", "abc", "49,90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.GatewayConfig{DeadlineDays: 5, Rate: tt.rate}
			data := svc.Derive(fixtureOrder(), cfg, fixedNow)
			if data.Amount != tt.want {
				t.Errorf("amount = %q, want %q", data.Amount, tt.want)
			}
		})
	}
}

func TestDerive_DefaultDeadline(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())

	// Deadline unset falls back to 5 days.
	data := svc.Derive(fixtureOrder(), &domain.GatewayConfig{}, fixedNow)
	if data.DueDate != "06/01/2024" {
		t.Errorf("dueDate = %q, want '06/01/2024'", data.DueDate)
	}

	data = svc.Derive(fixtureOrder(), &domain.GatewayConfig{DeadlineDays: 10}, fixedNow)
	if data.DueDate != "11/01/2024" {
		t.Errorf("dueDate = %q, want '11/01/2024'", data.DueDate)
	}
}

func TestDerive_MissingOrderIsNoOp(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())
	cfg := &domain.GatewayConfig{DeadlineDays: 5}

	if data := svc.Derive(nil, cfg, fixedNow); data != nil {
		t.Errorf("expected nil for nil order, got %+v", data)
	}

	order := fixtureOrder()
	order.ID = 0
	if data := svc.Derive(order, cfg, fixedNow); data != nil {
		t.Errorf("expected nil for zero order id, got %+v", data)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())
	cfg := &domain.GatewayConfig{DeadlineDays: 5, Rate: "2,95"}

	first := svc.Derive(fixtureOrder(), cfg, fixedNow)
	second := svc.Derive(fixtureOrder(), cfg, fixedNow)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("re-derivation not byte-identical:\n %s\n %s", a, b)
	}
}

func TestDerive_NumberFuncOverride(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore()).
		WithNumberFunc(func(orderID int64) string { return "BOL-000123" })

	data := svc.Derive(fixtureOrder(), &domain.GatewayConfig{DeadlineDays: 5}, fixedNow)
	if data.OurNumber != "BOL-000123" || data.DocumentNumber != "BOL-000123" {
		t.Errorf("number override not applied: %q / %q", data.OurNumber, data.DocumentNumber)
	}
}

// --- GenerateForOrder ---

func TestGenerateForOrder_Success(t *testing.T) {
	orders := &mockOrderFetcher{order: fixtureOrder()}
	settings := &mockSettingsStore{cfg: &domain.GatewayConfig{Bank: domain.BankItau, DeadlineDays: 5}}
	store := newMockBoletoStore()
	svc := newService(orders, settings, store)

	data, err := svc.GenerateForOrder(context.Background(), 123)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data == nil {
		t.Fatal("expected boleto data, got nil")
	}
	if store.saveCalls != 1 {
		t.Errorf("expected 1 persistence write, got %d", store.saveCalls)
	}
	if !reflect.DeepEqual(store.saved[123], data) {
		t.Error("persisted record differs from returned record")
	}
	if data.Amount != "49,90" {
		t.Errorf("amount = %q, want '49,90'", data.Amount)
	}
}

func TestGenerateForOrder_MissingOrderSkipsPersistence(t *testing.T) {
	orders := &mockOrderFetcher{order: nil} // order store has no such order
	settings := &mockSettingsStore{cfg: &domain.GatewayConfig{DeadlineDays: 5}}
	store := newMockBoletoStore()
	svc := newService(orders, settings, store)

	data, err := svc.GenerateForOrder(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data, got %+v", data)
	}
	if store.saveCalls != 0 {
		t.Errorf("expected no persistence write, got %d", store.saveCalls)
	}
}

func TestGenerateForOrder_OrderFetchError(t *testing.T) {
	orders := &mockOrderFetcher{err: errors.New("connection refused")}
	settings := &mockSettingsStore{cfg: &domain.GatewayConfig{DeadlineDays: 5}}
	svc := newService(orders, settings, newMockBoletoStore())

	_, err := svc.GenerateForOrder(context.Background(), 123)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGenerateForOrder_SaveError(t *testing.T) {
	orders := &mockOrderFetcher{order: fixtureOrder()}
	settings := &mockSettingsStore{cfg: &domain.GatewayConfig{DeadlineDays: 5}}
	store := newMockBoletoStore()
	store.saveErr = errors.New("write failed")
	svc := newService(orders, settings, store)

	_, err := svc.GenerateForOrder(context.Background(), 123)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGenerateForOrder_SettingsCached(t *testing.T) {
	orders := &mockOrderFetcher{order: fixtureOrder()}
	settings := &mockSettingsStore{cfg: &domain.GatewayConfig{DeadlineDays: 5}}
	svc := newService(orders, settings, newMockBoletoStore())

	for i := 0; i < 3; i++ {
		if _, err := svc.GenerateForOrder(context.Background(), 123); err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}
	}
	if settings.calls != 1 {
		t.Errorf("expected 1 settings fetch (then cache hits), got %d", settings.calls)
	}
}

func TestGenerateForOrder_UnconfiguredGatewayUsesDefaults(t *testing.T) {
	orders := &mockOrderFetcher{order: fixtureOrder()}
	settings := &mockSettingsStore{cfg: nil} // never configured
	svc := newService(orders, settings, newMockBoletoStore())

	data, err := svc.GenerateForOrder(context.Background(), 123)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data.DueDate != "06/01/2024" {
		t.Errorf("dueDate = %q, want default 5-day deadline '06/01/2024'", data.DueDate)
	}
}

// --- GetForOrder ---

func TestGetForOrder_NotFound(t *testing.T) {
	svc := newService(&mockOrderFetcher{}, &mockSettingsStore{}, newMockBoletoStore())

	_, err := svc.GetForOrder(context.Background(), 42)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
