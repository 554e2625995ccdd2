package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofootprint/ecofootprint/internal/cache"
	"github.com/ecofootprint/ecofootprint/internal/fetch"
	"github.com/ecofootprint/ecofootprint/internal/footprint"
)

const productPage = `<html><head>
	<script type="application/ld+json">
	{"@type": "Product", "name": "Wireless Earbuds", "category": "electronics",
	 "material": "composite", "countryOfOrigin": "CN", "weight": {"value": 1}}
	</script>
</head></html>`

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	body  []byte
	err   error
}

func (f *fakeFetcher) Page(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// brokenStore simulates an unreachable cache backend.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (brokenStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAnalyzer(store cache.Store, fetcher Fetcher) *Analyzer {
	return NewAnalyzer(New(store, time.Hour, testLogger()), fetcher, nil)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "http", url: "http://example.com/item"},
		{name: "https", url: "https://example.com/item"},
		{name: "ftp scheme", url: "ftp://example.com/item", wantErr: true},
		{name: "no scheme", url: "example.com/item", wantErr: true},
		{name: "javascript scheme", url: "javascript:alert(1)", wantErr: true},
		{name: "missing host", url: "https:///item", wantErr: true},
		{name: "garbage", url: "://nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeURL(t *testing.T) {
	fetcher := &fakeFetcher{body: []byte(productPage)}
	analyzer := newAnalyzer(cache.NewMemory(), fetcher)

	raw, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds")
	require.NoError(t, err)

	var result footprint.Footprint
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "Wireless Earbuds", result.ProductName)
	assert.Equal(t, 180, result.CarbonFootprint)
}

func TestAnalyzeURLInvalid(t *testing.T) {
	fetcher := &fakeFetcher{body: []byte(productPage)}
	analyzer := newAnalyzer(cache.NewMemory(), fetcher)

	_, err := analyzer.AnalyzeURL(context.Background(), "ftp://example.com")
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Equal(t, 0, fetcher.callCount(), "nothing is fetched for an invalid URL")
}

func TestAnalyzeURLCacheHit(t *testing.T) {
	fetcher := &fakeFetcher{body: []byte(productPage)}
	store := cache.NewMemory()
	analyzer := newAnalyzer(store, fetcher)

	first, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds")
	require.NoError(t, err)
	require.Equal(t, 1, fetcher.callCount())

	second, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds")
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.callCount(), "a cache hit skips the fetch")
	assert.Equal(t, first, second, "cached bytes match fresh bytes exactly")

	cached, ok := store.Get(context.Background(), "footprint:https://shop.example/earbuds")
	require.True(t, ok)
	assert.Equal(t, []byte(first), cached)
}

func TestAnalyzeURLCacheKeysAreExact(t *testing.T) {
	fetcher := &fakeFetcher{body: []byte(productPage)}
	analyzer := newAnalyzer(cache.NewMemory(), fetcher)

	_, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds")
	require.NoError(t, err)

	_, err = analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds/")
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.callCount(), "trailing slash is a distinct cache key")
}

func TestAnalyzeURLUnavailableCacheBypasses(t *testing.T) {
	fetcher := &fakeFetcher{body: []byte(productPage)}
	analyzer := newAnalyzer(brokenStore{}, fetcher)

	first, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds")
	require.NoError(t, err)

	second, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/earbuds")
	require.NoError(t, err)

	assert.Equal(t, 2, fetcher.callCount(), "every request recomputes when the cache is down")
	assert.Equal(t, first, second, "results stay deterministic without the cache")
}

func TestAnalyzeURLFetchErrorPropagates(t *testing.T) {
	fetchErr := &fetch.FetchError{StatusCode: 404, Message: "Not Found"}
	fetcher := &fakeFetcher{err: fetchErr}
	store := cache.NewMemory()
	analyzer := newAnalyzer(store, fetcher)

	_, err := analyzer.AnalyzeURL(context.Background(), "https://shop.example/missing")

	var got *fetch.FetchError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 404, got.StatusCode)

	_, ok := store.Get(context.Background(), "footprint:https://shop.example/missing")
	assert.False(t, ok, "failures are not cached")
}

func TestCalculateBypassesCache(t *testing.T) {
	recorder := cache.NewMemory()
	analyzer := newAnalyzer(recorder, &fakeFetcher{})

	input := footprint.ProductInput{
		Weight:             1,
		Unit:               "kg",
		ProductType:        "general",
		ManufacturerRegion: "global",
	}

	raw, err := analyzer.Calculate(context.Background(), input)
	require.NoError(t, err)

	var est footprint.Estimate
	require.NoError(t, json.Unmarshal(raw, &est))
	assert.Equal(t, "GOOD", est.Score.Rating)

	assert.Equal(t, 0, recorder.Size(), "structured-input results are never cached")
}

func TestCalculatePropagatesValidation(t *testing.T) {
	analyzer := newAnalyzer(cache.NewMemory(), &fakeFetcher{})

	_, err := analyzer.Calculate(context.Background(), footprint.ProductInput{Weight: 1, Unit: "kg"})
	assert.ErrorIs(t, err, footprint.ErrMissingField)
}
