// Package batch provides concurrent resolution of many food queries.
//
// The Pipeline type fans a list of free-text queries out over a worker pool,
// runs each through the search pipeline, and collects the ranked results back
// in input order. Individual queries never fail; a query that resolves to
// nothing simply yields an empty item list in its slot.
package batch
