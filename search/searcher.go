package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/macrofind/core"
	"github.com/poiesic/macrofind/provider"
)

// maxResults caps the final ranked list.
const maxResults = 8

// defaultLookupTimeout bounds each provider call so a slow primary does not
// block the fallback chain.
const defaultLookupTimeout = 5 * time.Second

// Searcher ranks food candidates from an ordered chain of reference providers.
type Searcher struct {
	providers []provider.Client
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithLookupTimeout sets the per-provider lookup timeout.
// Default is 5 seconds.
func WithLookupTimeout(timeout time.Duration) Option {
	return func(s *Searcher) error {
		if timeout > 0 {
			s.timeout = timeout
		}
		return nil
	}
}

// NewSearcher creates a new searcher over an ordered provider chain.
// Providers are tried sequentially; the first to yield usable candidates wins.
func NewSearcher(providers []provider.Client, opts ...Option) (*Searcher, error) {
	if len(providers) == 0 {
		return nil, ErrProviderRequired
	}
	for _, p := range providers {
		if p == nil {
			return nil, ErrProviderRequired
		}
	}

	s := &Searcher{
		providers: providers,
		timeout:   defaultLookupTimeout,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to 8 ranked, deduplicated food items for the query.
// It never fails: provider errors, timeouts, and empty responses all degrade
// to an empty list, so the caller cannot distinguish "no matches" from
// "providers unreachable".
func (s *Searcher) Search(ctx context.Context, query string) []core.FoodItem {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor is Search with observation hooks for each pipeline stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) []core.FoodItem {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	query = collapseSpaces(strings.ToLower(query))
	if query == "" {
		monitor.Finish(nil)
		return []core.FoodItem{}
	}

	normalized := NormalizeQuery(query)
	monitor.AfterNormalize(normalized)

	for i, client := range s.providers {
		// The canonical primary benefits from the reordered query; free-text
		// fallbacks match better on the user's own phrasing.
		lookupQuery := query
		if i == 0 {
			lookupQuery = normalized
		}

		candidates, err := s.lookup(ctx, client, lookupQuery)
		monitor.AfterProviderLookup(client.Name(), len(candidates), err)

		if ctx.Err() != nil {
			// Caller abandoned the query; no partial results.
			monitor.Finish(nil)
			return []core.FoodItem{}
		}
		if err != nil {
			s.logger.Warn("provider lookup failed", "provider", client.Name(), "err", err)
			continue
		}

		usable := filterUsable(candidates)
		if len(usable) == 0 {
			s.logger.Debug("provider yielded no usable candidates",
				"provider", client.Name(), "query", lookupQuery)
			continue
		}

		return s.rank(usable, query, client.Name(), monitor)
	}

	monitor.Finish(nil)
	return []core.FoodItem{}
}

// lookup calls a single provider under the per-provider timeout.
func (s *Searcher) lookup(ctx context.Context, client provider.Client, query string) ([]core.RawCandidate, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return client.Lookup(lookupCtx, query)
}

// filterUsable drops candidates whose macros are all zero.
func filterUsable(candidates []core.RawCandidate) []core.RawCandidate {
	usable := make([]core.RawCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Macros.IsZero() {
			continue
		}
		usable = append(usable, candidate)
	}
	return usable
}

// rank scores, sorts, deduplicates, truncates, and maps candidates to the
// public result type. Scoring runs against the original query, not the
// normalized one.
func (s *Searcher) rank(candidates []core.RawCandidate, query, providerName string, monitor SearchMonitor) []core.FoodItem {
	scored := make([]*core.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, &core.ScoredCandidate{
			RawCandidate:   candidate,
			SimplifiedName: SimplifyName(candidate.Description),
			Score:          Score(candidate.Description, query),
			SourceProvider: providerName,
		})
	}

	// Stable sort keeps provider order on ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	monitor.AfterScoring(scored)

	deduped := dedupe(scored)
	monitor.AfterDeduplication(deduped)

	if len(deduped) > maxResults {
		deduped = deduped[:maxResults]
	}

	items := make([]core.FoodItem, 0, len(deduped))
	for _, candidate := range deduped {
		serving := candidate.ServingSize
		if serving == "" {
			serving = core.DefaultServingSize
		}
		items = append(items, core.FoodItem{
			Id:          core.IDFromContent(candidate.SimplifiedName),
			Name:        candidate.SimplifiedName,
			ServingSize: serving,
			Macros:      candidate.Macros.Rounded(),
		})
	}

	monitor.Finish(items)
	return items
}

// dedupe scans in score order, so a higher-scored entry is never evicted by a
// later, lower-scored one judged similar to it.
func dedupe(scored []*core.ScoredCandidate) []*core.ScoredCandidate {
	kept := make([]*core.ScoredCandidate, 0, len(scored))
	for _, candidate := range scored {
		duplicate := false
		for _, existing := range kept {
			if AreSimilar(existing.SimplifiedName, candidate.SimplifiedName) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}
	return kept
}
