// Package quote fetches native currency prices from the CoinGecko API.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/arena-wallet-backend/internal/clock"
	"github.com/goodnatureofminers/arena-wallet-backend/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL      = "https://api.coingecko.com/api/v3"
	DefaultFiatCurrency = "usd"

	apiKeyHeader     = "x-cg-demo-api-key"
	maxErrorBodySize = 512
)

type (
	// Metrics records upstream call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config configures the CoinGecko client.
type Config struct {
	BaseURL           string
	APIKey            string
	FiatCurrency      string
	RequestsPerSecond int
	Timeout           time.Duration
}

// Client is the quote provider backed by CoinGecko.
type Client struct {
	baseURL    string
	apiKey     string
	fiat       string
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    Metrics
	now        clock.NowFunc
	logger     *zap.Logger
}

// NewClient constructs a Client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FiatCurrency == "" {
		cfg.FiatCurrency = DefaultFiatCurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.RequestsPerSecond)
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		fiat:       strings.ToLower(cfg.FiatCurrency),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		rl:         rl,
		metrics:    metrics,
		now:        clock.UTCNow,
		logger:     logger.Named("coingecko"),
	}
}

// CurrentPrice returns the spot price of one display unit of asset.
func (c *Client) CurrentPrice(ctx context.Context, asset model.Asset) (rate model.ExchangeRate, err error) {
	started := time.Now()
	defer func() {
		c.observe("current_price", err, started)
	}()

	query := url.Values{}
	query.Set("ids", string(asset))
	query.Set("vs_currencies", c.fiat)
	query.Set("include_last_updated_at", "true")

	var body map[string]map[string]json.Number
	if err := c.get(ctx, "/simple/price", query, &body); err != nil {
		return model.ExchangeRate{}, err
	}

	fields, ok := body[string(asset)]
	if !ok {
		return model.ExchangeRate{}, fmt.Errorf("%w: asset %q missing from response", model.ErrPriceUnavailable, asset)
	}
	price, err := parsePrice(fields[c.fiat])
	if err != nil {
		return model.ExchangeRate{}, err
	}

	asOf := c.now()
	if updated, ok := fields["last_updated_at"]; ok {
		if sec, convErr := updated.Int64(); convErr == nil && sec > 0 {
			asOf = time.Unix(sec, 0).UTC()
		}
	}

	return model.ExchangeRate{
		Asset:        asset,
		FiatCurrency: c.fiat,
		FiatPerUnit:  price,
		AsOf:         asOf,
	}, nil
}

// HistoricalPrices returns the price series of the trailing windowDays, oldest first.
func (c *Client) HistoricalPrices(ctx context.Context, asset model.Asset, windowDays int) (points []model.PricePoint, err error) {
	started := time.Now()
	defer func() {
		c.observe("historical_prices", err, started)
	}()

	if windowDays <= 0 {
		return nil, fmt.Errorf("%w: window of %d days", model.ErrPriceUnavailable, windowDays)
	}

	query := url.Values{}
	query.Set("vs_currency", c.fiat)
	query.Set("days", strconv.Itoa(windowDays))

	var body struct {
		Prices [][]json.Number `json:"prices"`
	}
	if err := c.get(ctx, "/coins/"+url.PathEscape(string(asset))+"/market_chart", query, &body); err != nil {
		return nil, err
	}

	points = make([]model.PricePoint, 0, len(body.Prices))
	for _, sample := range body.Prices {
		if len(sample) != 2 {
			c.logger.Warn("skip malformed price sample", zap.Int("fields", len(sample)))
			continue
		}
		ms, convErr := sample[0].Int64()
		if convErr != nil {
			// CoinGecko occasionally returns float timestamps.
			f, floatErr := sample[0].Float64()
			if floatErr != nil {
				c.logger.Warn("skip price sample with bad timestamp", zap.String("timestamp", sample[0].String()))
				continue
			}
			ms = int64(f)
		}
		price, priceErr := parsePrice(sample[1])
		if priceErr != nil {
			c.logger.Warn("skip price sample with bad price", zap.Error(priceErr))
			continue
		}
		points = append(points, model.PricePoint{At: time.UnixMilli(ms).UTC(), FiatPerUnit: price})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].At.Before(points[j].At) })

	return points, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	c.rl.Take()

	endpoint := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", model.ErrPriceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrPriceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%w: status %d: %s", model.ErrPriceUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", model.ErrPriceUnavailable, err)
	}
	return nil
}

func (c *Client) observe(operation string, err error, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(operation, err, started)
}

func parsePrice(raw json.Number) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: price missing", model.ErrPriceUnavailable)
	}
	price, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: parse price %q: %w", model.ErrPriceUnavailable, raw, err)
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: non-positive price %s", model.ErrPriceUnavailable, price)
	}
	return price, nil
}
