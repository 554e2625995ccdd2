package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ecofootprint/ecofootprint/internal/extract"
	"github.com/ecofootprint/ecofootprint/internal/footprint"
	"github.com/ecofootprint/ecofootprint/internal/history"
)

// ErrInvalidURL is returned when a request URL cannot be parsed or uses
// a scheme other than http or https.
var ErrInvalidURL = errors.New("invalid URL format")

const cacheKeyPrefix = "footprint:"

// Fetcher retrieves the raw HTML of a product page.
type Fetcher interface {
	Page(ctx context.Context, url string) ([]byte, error)
}

// Analyzer runs both calculation paths through one pipeline: the
// URL path (fetch, extract, calculate, cached by URL) and the
// structured-input path (calculate only, uncached).
type Analyzer struct {
	pipeline *Pipeline
	fetcher  Fetcher
	history  *history.Store
}

func NewAnalyzer(p *Pipeline, fetcher Fetcher, hist *history.Store) *Analyzer {
	return &Analyzer{
		pipeline: p,
		fetcher:  fetcher,
		history:  hist,
	}
}

// AnalyzeURL estimates the footprint of the product behind rawURL. The
// cache key uses the URL exactly as received; no normalization is
// applied, so URLs differing only in trailing slash or query order are
// distinct entries.
func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	return a.pipeline.Run(ctx, &urlStrategy{
		url:     rawURL,
		fetcher: a.fetcher,
		history: a.history,
	})
}

// Calculate estimates the footprint of an explicitly described product.
func (a *Analyzer) Calculate(ctx context.Context, in footprint.ProductInput) ([]byte, error) {
	return a.pipeline.Run(ctx, &inputStrategy{input: in})
}

// ValidateURL accepts absolute http and https URLs only.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}

type urlStrategy struct {
	url     string
	fetcher Fetcher
	history *history.Store
}

func (s *urlStrategy) CacheKey() string {
	return cacheKeyPrefix + s.url
}

func (s *urlStrategy) Compute(ctx context.Context) (interface{}, error) {
	page, err := s.fetcher.Page(ctx, s.url)
	if err != nil {
		return nil, err
	}

	record, err := extract.Product(page)
	if err != nil {
		return nil, err
	}

	result := footprint.Calculate(record)
	s.history.Record(ctx, s.url, result)

	return result, nil
}

type inputStrategy struct {
	input footprint.ProductInput
}

// CacheKey is empty: structured inputs have no stable request
// fingerprint in the caching contract and are always computed fresh.
func (s *inputStrategy) CacheKey() string {
	return ""
}

func (s *inputStrategy) Compute(ctx context.Context) (interface{}, error) {
	return footprint.NewEstimate(s.input)
}
