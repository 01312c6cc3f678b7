package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssetCache struct {
	data []byte
	gets int
	sets int
}

func (f *fakeAssetCache) GetLetterhead(_ context.Context) ([]byte, bool) {
	f.gets++
	return f.data, len(f.data) > 0
}

func (f *fakeAssetCache) SetLetterhead(_ context.Context, data []byte) error {
	f.sets++
	f.data = data
	return nil
}

// 1x1 transparent PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0b, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x60, 0x00, 0x02, 0x00,
	0x00, 0x05, 0x00, 0x01, 0xe9, 0xfa, 0xdc, 0xd8, 0x00, 0x00, 0x00, 0x00,
	0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/png")
		w.Write(tinyPNG)
	}))
	defer srv.Close()

	cache := &fakeAssetCache{}
	fetcher := NewLetterheadFetcher(srv.URL, time.Second, cache, nil)

	data, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, data)
	assert.Equal(t, 1, cache.sets)

	// Second fetch hits the in-process copy, not the server.
	again, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, again)
	assert.Equal(t, 1, hits)
}

func TestFetchPrefersAssetCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote fetch should not happen when the asset cache is warm")
	}))
	defer srv.Close()

	cache := &fakeAssetCache{data: tinyPNG}
	fetcher := NewLetterheadFetcher(srv.URL, time.Second, cache, nil)

	data, err := fetcher.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, data)
}

func TestFetchFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewLetterheadFetcher(srv.URL, time.Second, nil, nil)

	_, err := fetcher.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchFailsOnEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fetcher := NewLetterheadFetcher(srv.URL, time.Second, nil, nil)

	_, err := fetcher.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchFailsWithoutURL(t *testing.T) {
	fetcher := NewLetterheadFetcher("", time.Second, nil, nil)

	_, err := fetcher.Fetch(context.Background())
	assert.Error(t, err)
}

func TestRefreshRewritesCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(tinyPNG)
	}))
	defer srv.Close()

	cache := &fakeAssetCache{data: []byte("stale")}
	fetcher := NewLetterheadFetcher(srv.URL, time.Second, cache, nil)

	data, err := fetcher.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tinyPNG, data)
	assert.Equal(t, tinyPNG, cache.data)
	assert.Equal(t, 1, hits)
}
