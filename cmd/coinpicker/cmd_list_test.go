package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ruminaider/coinpicker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coinServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(endpoint string, favorites ...string) config.Config {
	cfg := config.Default()
	cfg.Endpoint = endpoint
	cfg.Favorites = favorites
	return cfg
}

func TestRunList(t *testing.T) {
	srv := coinServer(t, http.StatusOK, `["eth","btc","sol","ltc"]`)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		opts listOptions
		want string
	}{
		{"all sorted", listOptions{}, "btc\neth\nltc\nsol\n"},
		{"query", listOptions{Query: "et"}, "eth\n"},
		{"typo query", listOptions{Query: "etx"}, "eth\n"},
		{"favorites", listOptions{Favorites: true}, "sol\n"},
		{"favorites with query", listOptions{Query: "b", Favorites: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runList(context.Background(), &out, testConfig(srv.URL, "sol"), tt.opts, logger)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunListUnavailableEndpoint(t *testing.T) {
	srv := coinServer(t, http.StatusInternalServerError, "boom")
	var out, logs bytes.Buffer

	err := runList(context.Background(), &out, testConfig(srv.URL), listOptions{}, newStderrLogger(&logs))
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestNewFileLogger(t *testing.T) {
	logger, closeLog, err := newFileLogger("")
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "logs", "coinpicker.log")
	logger, closeLog, err = newFileLogger(path)
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	require.NoError(t, closeLog())
	assert.FileExists(t, path)
}

func TestSplitFavorites(t *testing.T) {
	assert.Equal(t, []string{"btc", "eth"}, splitFavorites(" btc, ,eth ,"))
	assert.Nil(t, splitFavorites(""))
}

func TestPromptValidators(t *testing.T) {
	assert.NoError(t, positiveInt("9"))
	assert.Error(t, positiveInt("0"))
	assert.Error(t, positiveInt("x"))
	assert.NoError(t, validDuration("10s"))
	assert.Error(t, validDuration("ten"))
}
