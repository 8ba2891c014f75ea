package redis

import (
	"testing"

	"github.com/felipeimp22/menuflow-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	t.Parallel()

	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address set")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	t.Parallel()

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2", PoolSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2, got %d", opts.DB)
	}
	if opts.PoolSize != 5 {
		t.Fatalf("expected pool size carried over, got %d", opts.PoolSize)
	}
}

func TestSettingsKeyNamespacing(t *testing.T) {
	t.Parallel()

	c := &Client{}
	if got := c.SettingsKey("abc"); got != "mf:settings:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}
