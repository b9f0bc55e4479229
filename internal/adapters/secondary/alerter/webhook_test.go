package alerter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAlert(t *testing.T) {
	var got alertPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	client := NewClient(&Config{URL: server.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, client)

	err := client.SendAlert(context.Background(), "provider output is missing planet Pluto")
	require.NoError(t, err)

	assert.Equal(t, "provider output is missing planet Pluto", got.Message)
	assert.Equal(t, "natal-chart", got.Source)
}

func TestSendAlert_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(&Config{URL: server.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := client.SendAlert(context.Background(), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewClient_NoURL(t *testing.T) {
	assert.Nil(t, NewClient(&Config{}, slog.New(slog.NewTextHandler(io.Discard, nil))))
	assert.Nil(t, NewClient(nil, slog.New(slog.NewTextHandler(io.Discard, nil))))
}
