package off

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/poiesic/macrofind/core"
	"github.com/poiesic/macrofind/provider"
)

// Client implements provider.Client using the Open Food Facts search API.
type Client struct {
	host     string
	pageSize int
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates an Open Food Facts client from the provider configuration.
//
// Returns provider.Client interface to enforce abstraction.
func NewClient(config *provider.Config) (provider.Client, error) {
	return newClient(config)
}

// newClient is an internal constructor that returns the concrete type.
func newClient(config *provider.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		host:     config.OFFHost,
		pageSize: config.PageSize,
		http:     &http.Client{Timeout: config.Timeout},
		logger:   slog.Default().With("component", "off-client"),
	}, nil
}

// Name identifies the provider in diagnostics and logs.
func (c *Client) Name() string {
	return "off"
}

// searchResponse mirrors the subset of the search payload we consume.
// Nutriment values are decoded as json.RawMessage because Open Food Facts
// serves them inconsistently as numbers or strings.
type searchResponse struct {
	Products []product `json:"products"`
}

type product struct {
	ProductName string     `json:"product_name"`
	ServingSize string     `json:"serving_size"`
	Nutriments  nutriments `json:"nutriments"`
}

type nutriments struct {
	EnergyKcal100g json.RawMessage `json:"energy-kcal_100g"`
	Proteins100g   json.RawMessage `json:"proteins_100g"`
	Carbs100g      json.RawMessage `json:"carbohydrates_100g"`
	Fat100g        json.RawMessage `json:"fat_100g"`
}

// Lookup queries the Open Food Facts search endpoint and returns raw
// candidates on a 100 g basis. Records without a product name are dropped.
func (c *Client) Lookup(ctx context.Context, query string) ([]core.RawCandidate, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", strconv.Itoa(c.pageSize))
	params.Set("fields", "product_name,serving_size,nutriments")

	endpoint := c.host + "/cgi/search.pl?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("off: building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("off: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("off: search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("off: decoding response: %w", err)
	}

	candidates := make([]core.RawCandidate, 0, len(payload.Products))
	for _, p := range payload.Products {
		candidate := core.RawCandidate{
			Description: p.ProductName,
			ServingSize: p.ServingSize,
			Macros: core.Macros{
				Calories: coerceFloat(p.Nutriments.EnergyKcal100g),
				Protein:  coerceFloat(p.Nutriments.Proteins100g),
				Carbs:    coerceFloat(p.Nutriments.Carbs100g),
				Fat:      coerceFloat(p.Nutriments.Fat100g),
			},
		}
		if err := core.ValidateRawCandidate(&candidate); err != nil {
			c.logger.Debug("dropping malformed candidate", "product", p.ProductName, "err", err)
			continue
		}
		candidates = append(candidates, candidate)
	}

	c.logger.Debug("off lookup complete", "query", query, "candidates", len(candidates))
	return candidates, nil
}

// coerceFloat extracts a float from a raw JSON value that may be a number,
// a quoted number, or absent. Unparseable values become zero.
func coerceFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return 0
}
