package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decor-ops-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.InDelta(t, 0.07, cfg.Shop.VATRate, 1e-12)
	assert.InDelta(t, 3, cfg.Shop.DeductPercent, 1e-12)
	assert.Equal(t, "th", cfg.Shop.Locale)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("SHOP_VAT_RATE", "0.1")
	t.Setenv("SHOP_VAT_INCLUDED", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RATE_LIMIT_BURST", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.1, cfg.Shop.VATRate, 1e-12)
	assert.True(t, cfg.Shop.VATIncluded)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_VATNegativoEsError(t *testing.T) {
	t.Setenv("SHOP_VAT_RATE", "-0.07")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "decor", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/decor?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
