package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/macrofind/core"
)

// Searcher is the subset of the search API the pipeline depends on.
type Searcher interface {
	Search(ctx context.Context, query string) []core.FoodItem
}

// Result pairs a query with its ranked food items.
type Result struct {
	Query string
	Items []core.FoodItem
}

// Pipeline resolves batches of food queries concurrently.
type Pipeline struct {
	searcher Searcher
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent lookups.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new batch pipeline over the given searcher.
func NewPipeline(searcher Searcher, opts ...Option) (*Pipeline, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		searcher: searcher,
		pool:     pool,
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Run resolves every query concurrently and returns the results in input
// order. Each query is independent; a provider failure or empty response
// leaves an empty item list in that query's slot.
func (p *Pipeline) Run(ctx context.Context, queries []string) []Result {
	results := make([]Result, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		i, query := i, query // per-iteration copies for the closure under go < 1.22
		results[i].Query = query

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			results[i].Items = p.searcher.Search(ctx, query)
		})
		if err != nil {
			wg.Done()
			p.logger.Warn("batch worker submission failed", "query", query, "err", err)
			results[i].Items = []core.FoodItem{}
		}
	}
	wg.Wait()

	return results
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
