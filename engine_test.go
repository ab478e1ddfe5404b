package macrofind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/macrofind/core"
	"github.com/poiesic/macrofind/provider"
	"github.com/poiesic/macrofind/provider/mock"
	"github.com/poiesic/macrofind/search"
)

func TestNewEngine(t *testing.T) {
	t.Run("creates engine with defaults", func(t *testing.T) {
		engine, err := NewEngine()
		require.NoError(t, err)
		assert.NotNil(t, engine.Searcher())
		assert.Len(t, engine.Providers(), 2)
	})

	t.Run("rejects invalid provider config", func(t *testing.T) {
		_, err := NewEngine(WithProviderConfig(&provider.Config{}))
		assert.Error(t, err)
	})
}

func TestNewEngineWithProviders(t *testing.T) {
	t.Run("requires providers", func(t *testing.T) {
		_, err := NewEngineWithProviders(nil)
		assert.ErrorIs(t, err, search.ErrProviderRequired)
	})

	t.Run("searches through custom chain", func(t *testing.T) {
		primary := &mock.MockClient{
			LookupFunc: func(_ context.Context, _ string) ([]core.RawCandidate, error) {
				return []core.RawCandidate{
					{Description: "Oats, rolled, cooked", Macros: core.Macros{Calories: 71, Protein: 2.5, Carbs: 12}},
				}, nil
			},
		}

		engine, err := NewEngineWithProviders([]provider.Client{primary})
		require.NoError(t, err)

		items := engine.Search(context.Background(), "oats")
		require.Len(t, items, 1)
		assert.Equal(t, "Oats Rolled (Cooked)", items[0].Name)
	})
}

func TestEngine_NewBatchPipeline(t *testing.T) {
	engine, err := NewEngineWithProviders([]provider.Client{mock.NewMockClient()})
	require.NoError(t, err)

	pipeline, err := engine.NewBatchPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	results := pipeline.Run(context.Background(), []string{"rice", "beans"})
	require.Len(t, results, 2)
	assert.Equal(t, "rice", results[0].Query)
	require.NotEmpty(t, results[0].Items)
	assert.Equal(t, "beans", results[1].Query)
	require.NotEmpty(t, results[1].Items)
}
