// Package off implements a provider.Client for the Open Food Facts API.
//
// Open Food Facts is a community-maintained branded-product database. Its
// payloads are looser than FoodData Central's (nutriment values may arrive as
// numbers or strings), so decoding is tolerant. It is used as the secondary
// provider, consulted only when the primary yields nothing usable.
package off
