package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/readlog-backend/internal/config"
	"github.com/heartmarshall/readlog-backend/internal/provider"
)

const (
	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
	outcomeCanceled    = "canceled"
)

// maxPageSize is the largest maxResults value the volumes endpoint accepts.
const maxPageSize = 40

// response is the raw outcome of one HTTP exchange.
type response struct {
	status int
	body   []byte
}

// Observer receives per-call outcomes and breaker transitions.
type Observer interface {
	ObserveCatalog(operation, outcome string)
	SetBreakerState(name string, state int)
}

type nopObserver struct{}

func (nopObserver) ObserveCatalog(string, string) {}
func (nopObserver) SetBreakerState(string, int)   {}

// Option configures a Provider.
type Option func(*Provider)

// WithObserver reports call outcomes to o.
func WithObserver(o Observer) Option {
	return func(p *Provider) { p.obs = o }
}

// Provider fetches book metadata from the Google Books volumes API.
type Provider struct {
	baseURL        string
	apiKey         string
	defaultResults int
	maxRetries     uint64
	retryInterval  time.Duration
	httpClient     *http.Client
	breaker        *gobreaker.CircuitBreaker[response]
	obs            Observer
	log            *slog.Logger
}

// NewProvider creates a Provider from catalog configuration.
func NewProvider(cfg config.CatalogConfig, logger *slog.Logger, opts ...Option) *Provider {
	defaultResults := cfg.DefaultMaxResults
	if defaultResults <= 0 {
		defaultResults = 20
	}

	p := &Provider{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		defaultResults: defaultResults,
		maxRetries:     cfg.MaxRetries,
		retryInterval:  cfg.RetryInitialInterval,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		obs:            nopObserver{},
		log:            logger.With("adapter", "googlebooks"),
	}
	for _, opt := range opts {
		opt(p)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	p.breaker = gobreaker.NewCircuitBreaker[response](gobreaker.Settings{
		Name:        "googlebooks",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// A caller going away says nothing about upstream health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			p.obs.SetBreakerState(name, int(to))
			p.log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return p
}

// CircuitState reports the breaker state: "closed", "half-open" or "open".
func (p *Provider) CircuitState() string {
	return p.breaker.State().String()
}

// Search runs a keyword query against the catalog. An empty, non-nil slice
// means no matches; upstream failures are wrapped in provider.ErrUnavailable.
// maxResults <= 0 selects the configured default; values above the
// endpoint's page size are clamped.
func (p *Provider) Search(ctx context.Context, query string, maxResults int) ([]provider.CatalogBook, error) {
	if maxResults <= 0 {
		maxResults = p.defaultResults
	}
	if maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	if p.apiKey != "" {
		params.Set("key", p.apiKey)
	}

	p.log.DebugContext(ctx, "googlebooks search", slog.String("query", query), slog.Int("max_results", maxResults))

	resp, err := p.get(ctx, p.baseURL+"?"+params.Encode())
	if err != nil {
		p.obs.ObserveCatalog("search", outcome(err))
		p.log.WarnContext(ctx, "googlebooks search failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, err
	}

	if resp.status != http.StatusOK {
		p.obs.ObserveCatalog("search", outcomeUnavailable)
		return nil, fmt.Errorf("%w: googlebooks: search: unexpected status %d", provider.ErrUnavailable, resp.status)
	}

	var list volumeList
	if err := json.Unmarshal(resp.body, &list); err != nil {
		p.obs.ObserveCatalog("search", outcomeUnavailable)
		return nil, fmt.Errorf("%w: googlebooks: decode search: %w", provider.ErrUnavailable, err)
	}
	p.obs.ObserveCatalog("search", outcomeOK)

	books := make([]provider.CatalogBook, 0, len(list.Items))
	for _, v := range list.Items {
		books = append(books, mapVolume(v))
	}

	p.log.DebugContext(ctx, "googlebooks search response",
		slog.String("query", query),
		slog.Int("total_items", list.TotalItems),
		slog.Int("returned", len(books)),
	)

	return books, nil
}

// FetchByID fetches a single volume by its catalog id.
// Returns nil, nil if the catalog does not know the id.
func (p *Provider) FetchByID(ctx context.Context, externalID string) (*provider.CatalogBook, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(externalID)
	if p.apiKey != "" {
		reqURL += "?" + url.Values{"key": {p.apiKey}}.Encode()
	}

	p.log.DebugContext(ctx, "googlebooks fetch", slog.String("id", externalID))

	resp, err := p.get(ctx, reqURL)
	if err != nil {
		p.obs.ObserveCatalog("fetch", outcome(err))
		p.log.WarnContext(ctx, "googlebooks fetch failed", slog.String("id", externalID), slog.String("error", err.Error()))
		return nil, err
	}

	switch resp.status {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		p.obs.ObserveCatalog("fetch", outcomeNotFound)
		return nil, nil
	default:
		p.obs.ObserveCatalog("fetch", outcomeUnavailable)
		return nil, fmt.Errorf("%w: googlebooks: fetch: unexpected status %d", provider.ErrUnavailable, resp.status)
	}

	var v volume
	if err := json.Unmarshal(resp.body, &v); err != nil {
		p.obs.ObserveCatalog("fetch", outcomeUnavailable)
		return nil, fmt.Errorf("%w: googlebooks: decode volume: %w", provider.ErrUnavailable, err)
	}
	if v.ID == "" {
		p.obs.ObserveCatalog("fetch", outcomeNotFound)
		return nil, nil
	}
	p.obs.ObserveCatalog("fetch", outcomeOK)

	book := mapVolume(v)
	return &book, nil
}

// get performs a GET through the circuit breaker, retrying network errors,
// 429 and 5xx responses with exponential backoff. Any other status is
// returned to the caller as-is.
func (p *Provider) get(ctx context.Context, reqURL string) (response, error) {
	resp, err := p.breaker.Execute(func() (response, error) {
		return backoff.RetryWithData(func() (response, error) {
			return p.attempt(ctx, reqURL)
		}, p.backoff(ctx))
	})
	if err == nil {
		return resp, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return response{}, ctxErr
	}
	return response{}, fmt.Errorf("%w: googlebooks: %w", provider.ErrUnavailable, err)
}

func (p *Provider) attempt(ctx context.Context, reqURL string) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return response{}, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := p.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return response{}, backoff.Permanent(ctx.Err())
		}
		p.log.WarnContext(ctx, "googlebooks retry", slog.String("reason", "network error"))
		return response{}, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return response{}, fmt.Errorf("read body: %w", err)
	}

	if httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= 500 {
		p.log.WarnContext(ctx, "googlebooks retry", slog.String("reason", fmt.Sprintf("status %d", httpResp.StatusCode)))
		return response{}, fmt.Errorf("upstream status %d", httpResp.StatusCode)
	}

	return response{status: httpResp.StatusCode, body: body}, nil
}

func (p *Provider) backoff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.retryInterval > 0 {
		exp.InitialInterval = p.retryInterval
	}
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, p.maxRetries), ctx)
}

// mapVolume flattens a volume into a provider.CatalogBook.
// Missing strings stay "", missing lists become empty slices.
func mapVolume(v volume) provider.CatalogBook {
	info := v.VolumeInfo

	book := provider.CatalogBook{
		ExternalID:    v.ID,
		Title:         info.Title,
		Authors:       nonNil(info.Authors),
		Description:   info.Description,
		PageCount:     info.PageCount,
		Categories:    nonNil(info.Categories),
		PublishedDate: info.PublishedDate,
		AverageRating: info.AverageRating,
	}

	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
		thumb := info.ImageLinks.Thumbnail
		book.ThumbnailURL = &thumb
	}

	return book
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func outcome(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return outcomeCanceled
	}
	return outcomeUnavailable
}
