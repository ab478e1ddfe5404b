// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package macrofind

import (
	"context"
	"log/slog"

	"github.com/poiesic/macrofind/batch"
	"github.com/poiesic/macrofind/core"
	"github.com/poiesic/macrofind/provider"
	"github.com/poiesic/macrofind/provider/fdc"
	"github.com/poiesic/macrofind/provider/off"
	"github.com/poiesic/macrofind/search"
)

type Engine struct {
	providers []provider.Client
	searcher  *search.Searcher
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	providerConfig *provider.Config
	searchOptions  []search.Option
}

// WithProviderConfig sets the provider configuration.
func WithProviderConfig(config *provider.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.providerConfig = config
		}
	}
}

// WithSearchOptions forwards options to the underlying searcher.
func WithSearchOptions(opts ...search.Option) EngineOption {
	return func(o *engineOptions) {
		o.searchOptions = append(o.searchOptions, opts...)
	}
}

// NewEngine creates a search engine over the standard provider chain:
// FoodData Central as the canonical primary, Open Food Facts as the free-text
// fallback.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		providerConfig: provider.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Create the canonical primary
	primary, err := fdc.NewClient(options.providerConfig)
	if err != nil {
		return nil, err
	}

	// Create the free-text fallback
	fallback, err := off.NewClient(options.providerConfig)
	if err != nil {
		return nil, err
	}

	providers := []provider.Client{primary, fallback}

	searchOptions := append([]search.Option{
		search.WithLookupTimeout(options.providerConfig.Timeout),
	}, options.searchOptions...)

	searcher, err := search.NewSearcher(providers, searchOptions...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		providers: providers,
		searcher:  searcher,
		logger:    slog.Default(),
	}, nil
}

// NewEngineWithProviders creates an engine over a custom provider chain.
// Providers are tried in order; the first to yield usable candidates wins.
func NewEngineWithProviders(providers []provider.Client, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	searcher, err := search.NewSearcher(providers, options.searchOptions...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		providers: providers,
		searcher:  searcher,
		logger:    slog.Default(),
	}, nil
}

// Search returns up to 8 ranked, deduplicated food items for the query.
// It never fails; any provider problem degrades to an empty list.
func (e *Engine) Search(ctx context.Context, query string) []core.FoodItem {
	return e.searcher.Search(ctx, query)
}

// Searcher exposes the underlying searcher for callers that need
// per-stage monitoring.
func (e *Engine) Searcher() *search.Searcher {
	return e.searcher
}

// Providers returns the ordered provider chain.
func (e *Engine) Providers() []provider.Client {
	return e.providers
}

// NewBatchPipeline creates a batch pipeline backed by this engine's searcher.
func (e *Engine) NewBatchPipeline(opts ...batch.Option) (*batch.Pipeline, error) {
	return batch.NewPipeline(e.searcher, opts...)
}
