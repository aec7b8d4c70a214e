package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultTestConfig builds a config from defaults only, the same way
// LoadConfig does when no file or environment overrides are present.
func defaultTestConfig(t *testing.T) *Config {
	t.Helper()

	v := viper.New()
	setDefaults(v)

	var config Config
	require.NoError(t, v.Unmarshal(&config))
	config.applyFallbacks()
	return &config
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := defaultTestConfig(t)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{
			name:     "zero AI timeout",
			mutate:   func(c *Config) { c.AI.Timeout = 0 },
			errorMsg: "AI timeout must be positive",
		},
		{
			name:     "missing server port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "server port is required",
		},
		{
			name:     "unsupported default format",
			mutate:   func(c *Config) { c.App.DefaultFormat = "xml" },
			errorMsg: "invalid default format",
		},
		{
			name:     "unknown storage driver",
			mutate:   func(c *Config) { c.Storage.Driver = "sqlite" },
			errorMsg: "invalid storage driver",
		},
		{
			name:     "postgres driver without DSN",
			mutate:   func(c *Config) { c.Storage.Driver = "postgres" },
			errorMsg: "storage DSN is required",
		},
		{
			name:     "unknown render style",
			mutate:   func(c *Config) { c.Render.DefaultStyle = "fancy" },
			errorMsg: "invalid render style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultTestConfig(t)
			tt.mutate(config)

			err := config.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidateATSConfig(t *testing.T) {
	t.Run("default weights sum to one", func(t *testing.T) {
		config := defaultTestConfig(t)
		assert.NoError(t, config.ValidateATSConfig())
	})

	t.Run("weights not summing to one rejected", func(t *testing.T) {
		config := defaultTestConfig(t)
		config.ATS.Weights.Keywords = 0.5

		err := config.ValidateATSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must sum to 1.0")
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		config := defaultTestConfig(t)
		config.ATS.Weights.Formatting = -0.1
		config.ATS.Weights.Keywords = 0.6

		err := config.ValidateATSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be between 0 and 1")
	})

	t.Run("inverted match rates rejected", func(t *testing.T) {
		config := defaultTestConfig(t)
		config.ATS.Thresholds.LowMatchRate = 90
		config.ATS.Thresholds.StrongMatchRate = 40

		err := config.ValidateATSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "match rate bounds are invalid")
	})

	t.Run("zero keyword limit rejected", func(t *testing.T) {
		config := defaultTestConfig(t)
		config.ATS.Thresholds.KeywordLimit = 0

		err := config.ValidateATSConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "keywordLimit")
	})
}

func TestScoringConversions(t *testing.T) {
	config := defaultTestConfig(t)

	weights := config.ATS.ScoringWeights()
	assert.InDelta(t, 0.35, weights.Keywords, 0.0001)
	assert.InDelta(t, 0.15, weights.Formatting, 0.0001)

	thresholds := config.ATS.ScoringThresholds()
	assert.Equal(t, 20, thresholds.KeywordLimit)
	assert.Equal(t, 200, thresholds.MinWordCount)
	assert.InDelta(t, 50.0, thresholds.LowMatchRate, 0.0001)
}

func TestGetTailorConfig(t *testing.T) {
	t.Run("inherits global values", func(t *testing.T) {
		config := defaultTestConfig(t)
		config.AI.APIKey = "global-key"
		config.AI.Model = "gemini-2.0-flash"
		config.AI.Tailor.Model = ""

		tailor := config.GetTailorConfig()
		assert.Equal(t, "global-key", tailor.APIKey)
		assert.Equal(t, "gemini-2.0-flash", tailor.Model)
		require.NotNil(t, tailor.Timeout)
	})

	t.Run("operation overrides win", func(t *testing.T) {
		config := defaultTestConfig(t)
		config.AI.APIKey = "global-key"
		config.AI.Tailor.APIKey = "tailor-key"
		config.AI.Tailor.Model = "gemini-2.5-pro"

		tailor := config.GetTailorConfig()
		assert.Equal(t, "tailor-key", tailor.APIKey)
		assert.Equal(t, "gemini-2.5-pro", tailor.Model)
	})

	t.Run("tailor keeps its own timeout", func(t *testing.T) {
		config := defaultTestConfig(t)

		tailor := config.GetTailorConfig()
		require.NotNil(t, tailor.Timeout)
		assert.Equal(t, 90*time.Second, *tailor.Timeout)
	})
}
