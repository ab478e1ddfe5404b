package search

import "github.com/poiesic/macrofind/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterNormalize(normalized string)
	AfterProviderLookup(providerName string, candidates int, err error)
	AfterScoring(candidates []*core.ScoredCandidate)
	AfterDeduplication(candidates []*core.ScoredCandidate)
	Finish(items []core.FoodItem)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) AfterNormalize(_ string)                      {}
func (n *noopMonitor) AfterProviderLookup(_ string, _ int, _ error) {}
func (n *noopMonitor) AfterScoring(_ []*core.ScoredCandidate)       {}
func (n *noopMonitor) AfterDeduplication(_ []*core.ScoredCandidate) {}
func (n *noopMonitor) Finish(_ []core.FoodItem)                     {}
