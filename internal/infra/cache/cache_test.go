package cache_test

import (
	"testing"
	"time"

	"github.com/wpbrasil/boleto-gateway-go/internal/domain"
	"github.com/wpbrasil/boleto-gateway-go/internal/infra/cache"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := cache.New[*domain.GatewayConfig](time.Minute)

	c.Set("gateway_settings", &domain.GatewayConfig{Bank: domain.BankItau, DeadlineDays: 5})

	cfg, ok := c.Get("gateway_settings")
	if !ok {
		t.Fatal("expected hit for freshly set key")
	}
	if cfg.Bank != domain.BankItau || cfg.DeadlineDays != 5 {
		t.Errorf("cached config = %+v, want itau/5", cfg)
	}
}

func TestGetAbsentKey(t *testing.T) {
	c := cache.New[string](time.Minute)

	if _, ok := c.Get("never_set"); ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestSetOverwrites(t *testing.T) {
	c := cache.New[string](time.Minute)

	c.Set("k", "old")
	c.Set("k", "new")

	if v, _ := c.Get("k"); v != "new" {
		t.Errorf("got %q, want overwritten value 'new'", v)
	}
}

func TestEntryExpires(t *testing.T) {
	c := cache.New[string](30 * time.Millisecond)

	c.Set("k", "v")
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}

func TestDelete(t *testing.T) {
	c := cache.New[string](time.Minute)

	c.Set("k", "v")
	c.Delete("k")
	c.Delete("k") // absent delete is a no-op

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after delete")
	}
}
