package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Address)
	assert.Equal(t, "3000", cfg.PublicPort)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "menu-events", cfg.KafkaTopic)
	assert.Equal(t, "menu-janitor", cfg.KafkaGroup)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.KafkaEnabled())
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "menu", DBPassword: "pw", DBName: "qrmenu"}
	assert.Equal(t, "host=db port=5432 user=menu password=pw dbname=qrmenu sslmode=disable", cfg.PostgresDSN())
}

func TestLoadGateway_Overrides(t *testing.T) {
	t.Setenv("MENU_SVC_URL", "http://menu-svc:3000")

	cfg, err := LoadGateway()
	require.NoError(t, err)
	assert.Equal(t, "http://menu-svc:3000", cfg.MenuSvcURL)
	assert.Equal(t, ":8080", cfg.Address)
}
