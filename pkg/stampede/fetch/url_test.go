package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ib-77/stampede/pkg/stampede"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesFromURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	data, err := BytesFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestNewURLLoader_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("eventually"))
	}))
	defer srv.Close()

	load := NewURLLoader(srv.Client(), 5)
	data, err := load(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "eventually", string(data))
	assert.Equal(t, int64(3), calls.Load())
}

func TestNewURLLoader_ClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	load := NewURLLoader(srv.Client(), 5)
	_, err := load(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, KindFetch, stampede.KindOf(err))
	assert.Equal(t, int64(1), calls.Load(), "a 404 will not get better on retry")
}

func TestNewURLLoader_ExhaustedRetriesSurfaceTaggedError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	load := NewURLLoader(srv.Client(), 1)
	_, err := load(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, KindFetch, stampede.KindOf(err))
}
