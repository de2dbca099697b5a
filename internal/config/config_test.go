package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/coinpicker/internal/coins"
	"github.com/ruminaider/coinpicker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		input := []byte(`endpoint: https://example.com/coins
label: Coins
item_height: 2
visible_count: 12
timeout: 3s
favorites:
  - btc
  - eth
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/coins", cfg.Endpoint)
		assert.Equal(t, "Coins", cfg.Label)
		assert.Equal(t, 2, cfg.ItemHeight)
		assert.Equal(t, 12, cfg.VisibleCount)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, []string{"btc", "eth"}, cfg.Favorites)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte("label: Pick\n"))
		require.NoError(t, err)
		assert.Equal(t, "Pick", cfg.Label)
		assert.Equal(t, coins.DefaultEndpoint, cfg.Endpoint)
		assert.Equal(t, config.DefaultVisibleCount, cfg.VisibleCount)
		assert.Equal(t, config.DefaultItemHeight, cfg.ItemHeight)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Favorites = []string{"sol"}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible_count: 9")

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero item height", func(c *config.Config) { c.ItemHeight = 0 }},
		{"negative visible count", func(c *config.Config) { c.VisibleCount = -1 }},
		{"negative timeout", func(c *config.Config) { c.Timeout = -time.Second }},
		{"relative endpoint", func(c *config.Config) { c.Endpoint = "/coins" }},
		{"ftp endpoint", func(c *config.Config) { c.Endpoint = "ftp://example.com/coins" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalid))
		})
	}

	assert.NoError(t, config.Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("item_height: 0\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), path)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Label = "Markets"
	cfg.Favorites = []string{"btc"}

	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.VisibleCount = 0
	err := config.Save(filepath.Join(t.TempDir(), "config.yaml"), cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
