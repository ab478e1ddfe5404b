// Package mock provides test double implementations of the provider interfaces.
//
// The mock client allows custom behavior injection via function fields while
// offering deterministic defaults, so engine and pipeline tests never touch
// the network.
package mock
