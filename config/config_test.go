package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternotp/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses environment variables", func(t *testing.T) {
		type parseConfig struct {
			Secret   string `env:"TEST_PARSE_SECRET"`
			Attempts int    `env:"TEST_PARSE_ATTEMPTS" envDefault:"3"`
		}

		t.Setenv("TEST_PARSE_SECRET", "hunter2")

		var cfg parseConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "hunter2", cfg.Secret)
		assert.Equal(t, 3, cfg.Attempts)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cacheConfig struct {
			Value string `env:"TEST_CACHE_VALUE"`
		}

		t.Setenv("TEST_CACHE_VALUE", "first")

		var cfg1 cacheConfig
		require.NoError(t, config.Load(&cfg1))
		assert.Equal(t, "first", cfg1.Value)

		// Later loads of the same type see the cached value, not the
		// changed environment.
		t.Setenv("TEST_CACHE_VALUE", "second")
		var cfg2 cacheConfig
		require.NoError(t, config.Load(&cfg2))
		assert.Equal(t, "first", cfg2.Value)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		type requiredConfig struct {
			Token string `env:"TEST_REQUIRED_TOKEN,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.Error(t, err)
	})

	t.Run("rejects a nil target", func(t *testing.T) {
		var cfg *struct{}
		assert.Error(t, config.Load(cfg))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type mustConfig struct {
			Token string `env:"TEST_MUST_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var cfg mustConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads valid configuration", func(t *testing.T) {
		type mustOKConfig struct {
			Name string `env:"TEST_MUST_OK_NAME" envDefault:"patternotp"`
		}

		var cfg mustOKConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "patternotp", cfg.Name)
	})
}
