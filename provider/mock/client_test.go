package mock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/macrofind/core"
)

func TestMockClient_Defaults(t *testing.T) {
	client := NewMockClient()
	assert.Equal(t, "mock", client.Name())

	candidates, err := client.Lookup(context.Background(), "rice")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "rice", candidates[0].Description)
	assert.False(t, candidates[0].Macros.IsZero())
	assert.Equal(t, 1, client.CallCount())
}

func TestMockClient_LookupFuncOverride(t *testing.T) {
	client := &MockClient{
		ClientName: "failing",
		LookupFunc: func(_ context.Context, _ string) ([]core.RawCandidate, error) {
			return nil, errors.New("injected")
		},
	}

	assert.Equal(t, "failing", client.Name())
	_, err := client.Lookup(context.Background(), "rice")
	assert.Error(t, err)

	client.Reset()
	assert.Equal(t, 0, client.CallCount())
	_, err = client.Lookup(context.Background(), "rice")
	assert.NoError(t, err)
}

func TestMockClient_ConcurrentLookups(t *testing.T) {
	// One client shared across goroutines, as the batch pipeline does.
	client := NewMockClient()

	const lookups = 64
	var wg sync.WaitGroup
	for i := 0; i < lookups; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Lookup(context.Background(), "rice")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, lookups, client.CallCount())
}
