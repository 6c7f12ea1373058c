package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/beeswaxclient"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BEESWAX_API_ROOT", "https://example.api.beeswax.com/rest")
	t.Setenv("BEESWAX_EMAIL", "ops@example.com")
	t.Setenv("BEESWAX_PASSWORD", "secret")
}

func TestNewConfig_PadroesAplicados(t *testing.T) {
	viper.Reset()
	setRequiredEnv(t)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, config.Beeswax.Timeout)
	assert.Equal(t, 3, config.Beeswax.Retries)
	assert.Equal(t, beeswaxclient.LineItemSchemaLegacy, config.Beeswax.LineItemSchema)
	assert.Equal(t, 30*time.Minute, config.Beeswax.KeepAliveInterval)
	assert.Equal(t, "debug", config.App.LogLevel)
}

func TestNewConfig_ValidacaoDeAmbiente(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "Sem credenciais",
			setup: func(t *testing.T) {
				t.Setenv("BEESWAX_API_ROOT", "https://example.api.beeswax.com/rest")
			},
		},
		{
			name: "E-mail malformado",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("BEESWAX_EMAIL", "não é um e-mail")
			},
		},
		{
			name: "Esquema de line item desconhecido",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("BEESWAX_LINE_ITEM_SCHEMA", "v3")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			tt.setup(t)

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestClientOptions(t *testing.T) {
	viper.Reset()
	setRequiredEnv(t)
	t.Setenv("BEESWAX_RETRIES", "5")
	t.Setenv("BEESWAX_LINE_ITEM_SCHEMA", "v2")

	config, err := NewConfig()
	require.NoError(t, err)

	opts := config.ClientOptions()
	assert.Equal(t, "https://example.api.beeswax.com/rest", opts.APIRoot)
	assert.Equal(t, 5, opts.Retry.Retries)
	assert.Equal(t, beeswaxclient.LineItemSchemaV2, opts.LineItemSchema)
}
