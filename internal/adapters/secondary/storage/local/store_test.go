package local

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(&Config{Dir: t.TempDir()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return store.(*Store)
}

func TestPutGet(t *testing.T) {
	store := newTestStore(t)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)

	require.NoError(t, store.Put(context.Background(), "chart.svg", svg))

	got, err := store.Get(context.Background(), "chart.svg")
	require.NoError(t, err)
	assert.Equal(t, svg, got)
}

func TestGet_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing.svg")
	require.Error(t, err)
}

func TestSafePath_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	tests := []string{
		"../escape.svg",
		"a/../../escape.svg",
		"sub/dir.svg",
		"..",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			err := store.Put(context.Background(), name, []byte("x"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid artifact name")

			_, err = store.Get(context.Background(), name)
			require.Error(t, err)
		})
	}
}

func TestNewStore_NilConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	store, err := NewStore(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "output", store.(*Store).dir)
}
