package fdc

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

// FoodData Central nutrient numbers for the key macronutrients.
const (
	nutrientIDEnergy  = 1008 // Calories (kcal)
	nutrientIDProtein = 1003 // Protein (g)
	nutrientIDCarbs   = 1005 // Carbohydrates (g)
	nutrientIDFat     = 1004 // Total fat (g)
)

// Client implements provider.Client using the FoodData Central search API.
type Client struct {
	host     string
	apiKey   string
	pageSize int
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a FoodData Central client from the provider configuration.
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
		host:     config.FDCHost,
		apiKey:   config.FDCAPIKey,
		pageSize: config.PageSize,
		http:     &http.Client{Timeout: config.Timeout},
		logger:   slog.Default().With("component", "fdc-client"),
	}, nil
}

// Name identifies the provider in diagnostics and logs.
func (c *Client) Name() string {
	return "fdc"
}

// searchResponse mirrors the subset of the /v1/foods/search payload we consume.
type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	Description     string         `json:"description"`
	DataType        string         `json:"dataType"`
	ServingSize     float64        `json:"servingSize"`
	ServingSizeUnit string         `json:"servingSizeUnit"`
	FoodNutrients   []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientID int     `json:"nutrientId"`
	Value      float64 `json:"value"`
}

// Lookup queries the FoodData Central search endpoint and returns raw
// candidates. Records without a description are dropped.
func (c *Client) Lookup(ctx context.Context, query string) ([]core.RawCandidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("api_key", c.apiKey)

	endpoint := c.host + "/v1/foods/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fdc: building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fdc: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fdc: search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fdc: decoding response: %w", err)
	}

	candidates := make([]core.RawCandidate, 0, len(payload.Foods))
	for _, food := range payload.Foods {
		candidate := core.RawCandidate{
			Description: food.Description,
			ServingSize: servingSize(food),
			Macros:      extractMacros(food.FoodNutrients),
		}
		if err := core.ValidateRawCandidate(&candidate); err != nil {
			c.logger.Debug("dropping malformed candidate", "description", food.Description, "err", err)
			continue
		}
		candidates = append(candidates, candidate)
	}

	c.logger.Debug("fdc lookup complete", "query", query, "candidates", len(candidates))
	return candidates, nil
}

// extractMacros pulls the four key macronutrients from the nutrient list.
// Missing nutrients default to zero.
func extractMacros(nutrients []foodNutrient) core.Macros {
	var m core.Macros
	for _, n := range nutrients {
		switch n.NutrientID {
		case nutrientIDEnergy:
			m.Calories = n.Value
		case nutrientIDProtein:
			m.Protein = n.Value
		case nutrientIDCarbs:
			m.Carbs = n.Value
		case nutrientIDFat:
			m.Fat = n.Value
		}
	}
	return m
}

// servingSize formats the provider's serving size, if it supplied one.
// Survey and Foundation records report nutrients per 100 g and carry no
// serving size of their own, so the empty string is common.
func servingSize(food searchFood) string {
	if food.ServingSize <= 0 || food.ServingSizeUnit == "" {
		return ""
	}
	return strconv.FormatFloat(food.ServingSize, 'f', -1, 64) + food.ServingSizeUnit
}
