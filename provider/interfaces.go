package provider

import (
	"context"

	"github.com/poiesic/macrofind/core"
)

// Client looks up food candidates in an external nutrient reference database.
// Implementations must be thread-safe for concurrent use.
type Client interface {
	// Name identifies the provider in diagnostics and logs.
	Name() string

	// Lookup queries the provider for foods matching the query and returns
	// raw candidate records. Individual malformed records are dropped rather
	// than failing the whole response.
	// Returns an empty slice if nothing matched.
	// Returns an error if the provider is unreachable, times out, or responds
	// with an unusable payload.
	Lookup(ctx context.Context, query string) ([]core.RawCandidate, error)
}
