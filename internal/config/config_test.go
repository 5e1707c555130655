package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: App{Timezone: "America/Sao_Paulo"},
		Analytics: Analytics{
			CompletedStatus:         "COMPLETED",
			DefaultWindowDays:       30,
			DefaultTopProductsLimit: 10,
			MaxTopProductsLimit:     100,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "configuração válida", mutate: func(c *Config) {}},
		{
			name:    "status concluído vazio",
			mutate:  func(c *Config) { c.Analytics.CompletedStatus = "" },
			wantErr: "ANALYTICS_COMPLETED_STATUS",
		},
		{
			name:    "janela padrão zerada",
			mutate:  func(c *Config) { c.Analytics.DefaultWindowDays = 0 },
			wantErr: "ANALYTICS_DEFAULT_WINDOW_DAYS",
		},
		{
			name:    "limite padrão acima do máximo",
			mutate:  func(c *Config) { c.Analytics.DefaultTopProductsLimit = 101 },
			wantErr: "ANALYTICS_DEFAULT_TOP_PRODUCTS_LIMIT",
		},
		{
			name:    "fuso inexistente",
			mutate:  func(c *Config) { c.App.Timezone = "Mars/Olympus" },
			wantErr: "APP_TIMEZONE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
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

func TestLocation(t *testing.T) {
	cfg := validConfig()
	cfg.App.Timezone = ""

	location, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, location)
}

func TestNewConfigFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ANALYTICS_COMPLETED_STATUS", "FINALIZADO")
	t.Setenv("ANALYTICS_PARALLEL_QUERIES", "false")
	t.Setenv("DATABASE_QUERY_TIMEOUT", "12s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local,http://b.local")
	t.Setenv("DATABASE_USER", "reader")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/sales")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "FINALIZADO", cfg.Analytics.CompletedStatus)
	assert.False(t, cfg.Analytics.ParallelQueries)
	assert.Equal(t, 30, cfg.Analytics.DefaultWindowDays)
	assert.Equal(t, 12*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "postgresql://reader:secret@db:5432/sales", cfg.Database.DSN)
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(previous)
	})
}
