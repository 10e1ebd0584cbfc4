package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: develop
  log:
    level: info
http:
  port: 8080
checkout:
  defaultShippingCost: 70000
payment:
  merchantId: merchant
  callbackUrl: http://localhost/payment/callback
`

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"payment": map[string]any{
			"merchantId":  "x",
			"callbackUrl": "y",
		},
		"checkout": map[string]any{
			"defaultShippingCost": 1,
		},
		"postgres": map[string]any{
			"master": map[string]any{
				"userName": "storefront",
			},
		},
		"worker": map[string]any{
			"pushAudience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PAYMENT_MERCHANTID", want: "payment.merchantId"},
		{envKey: "CHECKOUT_DEFAULTSHIPPINGCOST", want: "checkout.defaultShippingCost"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "WORKER_PUSHAUDIENCE", want: "worker.pushAudience"},
		{envKey: "UNKNOWN_KEY", want: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("PAYMENT_MERCHANTID", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, int64(70000), cfg.Checkout.DefaultShippingCost)
	require.NotNil(t, cfg.Payment)
	assert.Equal(t, "from-env", cfg.Payment.MerchantID)
	assert.Equal(t, "http://localhost/payment/callback", cfg.Payment.CallbackURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Payment: &PaymentConfig{},
		Metrics: &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultOrderDetailPath, cfg.Checkout.OrderDetailPath)
	assert.Equal(t, 30*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Equal(t, 10*time.Minute, cfg.Worker.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.Worker.StaleOrderAfter)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Postgres: &postgres.DBConn{},
			Payment:  &PaymentConfig{MerchantID: "m", CallbackURL: "https://shop.example.com/payment/callback"},
			PubSub:   &PubSubConfig{Provider: "rabbitmq"},
		}
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "postgres missing", mutate: func(c *Config) { c.Postgres = nil }, wantErr: "postgres"},
		{name: "merchant missing", mutate: func(c *Config) { c.Payment.MerchantID = "" }, wantErr: "MerchantID"},
		{name: "callback not a url", mutate: func(c *Config) { c.Payment.CallbackURL = "callback" }, wantErr: "CallbackURL"},
		{name: "unknown provider", mutate: func(c *Config) { c.PubSub.Provider = "kafka" }, wantErr: "Provider"},
		{name: "negative shipping", mutate: func(c *Config) { c.Checkout.DefaultShippingCost = -1 }, wantErr: "DefaultShippingCost"},
		{name: "detail path without id", mutate: func(c *Config) { c.Checkout.OrderDetailPath = "/orders" }, wantErr: "orderDetailPath"},
		{name: "storage without bucket", mutate: func(c *Config) { c.Storage = &StorageConfig{} }, wantErr: "BucketURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
