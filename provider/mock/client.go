package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/macrofind/core"
)

// MockClient is a test double for provider.Client.
// It allows custom behavior injection via function fields.
type MockClient struct {
	// ClientName is returned by Name. Defaults to "mock".
	ClientName string

	// LookupFunc is called by Lookup if set.
	// If nil, uses default deterministic behavior.
	LookupFunc func(ctx context.Context, query string) ([]core.RawCandidate, error)

	// Atomic because provider.Client requires thread safety and the batch
	// pipeline shares one client across workers.
	callCount atomic.Int64
}

// NewMockClient creates a mock client with default deterministic behavior.
// Note: Returns concrete type to allow test assertions on call counts.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Name identifies the provider in diagnostics and logs.
func (m *MockClient) Name() string {
	if m.ClientName == "" {
		return "mock"
	}
	return m.ClientName
}

// Lookup returns a small fixed candidate list echoing the query.
func (m *MockClient) Lookup(ctx context.Context, query string) ([]core.RawCandidate, error) {
	m.callCount.Add(1)

	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, query)
	}

	// Default: one plain candidate named after the query.
	return []core.RawCandidate{
		{
			Description: query,
			Macros:      core.Macros{Calories: 100, Protein: 1, Carbs: 10, Fat: 1},
		},
	}, nil
}

// CallCount returns the number of times Lookup was called.
func (m *MockClient) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and any injected behavior.
func (m *MockClient) Reset() {
	m.callCount.Store(0)
	m.LookupFunc = nil
}
