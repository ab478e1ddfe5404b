package fdc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/macrofind/provider"
)

const searchPayload = `{
	"foods": [
		{
			"description": "Rice, white, cooked",
			"dataType": "Survey (FNDDS)",
			"foodNutrients": [
				{"nutrientId": 1008, "value": 130},
				{"nutrientId": 1003, "value": 2.7},
				{"nutrientId": 1005, "value": 28.2},
				{"nutrientId": 1004, "value": 0.3}
			]
		},
		{
			"description": "",
			"foodNutrients": [{"nutrientId": 1008, "value": 99}]
		},
		{
			"description": "Rice flour, white",
			"dataType": "SR Legacy",
			"servingSize": 100,
			"servingSizeUnit": "g",
			"foodNutrients": [
				{"nutrientId": 1008, "value": 366},
				{"nutrientId": 1005, "value": 80.1}
			]
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := newClient(provider.NewConfig(
		provider.WithFDCHost(server.URL),
		provider.WithFDCAPIKey("test-key"),
	))
	require.NoError(t, err)
	return client, server
}

func TestNewClient(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		client, err := NewClient(provider.NewConfig())
		require.NoError(t, err)
		assert.Equal(t, "fdc", client.Name())
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewClient(provider.NewConfig(provider.WithFDCAPIKey("")))
		assert.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	var gotQuery, gotKey string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	})

	candidates, err := client.Lookup(context.Background(), "rice")
	require.NoError(t, err)

	assert.Equal(t, "rice", gotQuery)
	assert.Equal(t, "test-key", gotKey)

	// The empty-description record is dropped.
	require.Len(t, candidates, 2)

	assert.Equal(t, "Rice, white, cooked", candidates[0].Description)
	assert.Equal(t, 130.0, candidates[0].Macros.Calories)
	assert.Equal(t, 2.7, candidates[0].Macros.Protein)
	assert.Equal(t, 28.2, candidates[0].Macros.Carbs)
	assert.Equal(t, 0.3, candidates[0].Macros.Fat)
	assert.Empty(t, candidates[0].ServingSize)

	assert.Equal(t, "Rice flour, white", candidates[1].Description)
	assert.Equal(t, "100g", candidates[1].ServingSize)
	// Missing nutrients default to zero.
	assert.Equal(t, 0.0, candidates[1].Macros.Protein)
}

func TestLookup_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Lookup(context.Background(), "rice")
	assert.Error(t, err)
}

func TestLookup_MalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Lookup(context.Background(), "rice")
	assert.Error(t, err)
}

func TestLookup_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"foods":[]}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Lookup(ctx, "rice")
	assert.Error(t, err)
}
