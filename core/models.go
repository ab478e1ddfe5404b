package core

import (
	"encoding/binary"
	"math"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that the same food name
// always maps to the same identity across search calls.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Macros holds the macronutrient profile of a food, per serving.
// Calories are kcal, the remaining values are grams.
type Macros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// IsZero reports whether all four macro fields are zero.
// Candidates with all-zero macros carry no usable nutrition signal.
func (m Macros) IsZero() bool {
	return m.Calories == 0 && m.Protein == 0 && m.Carbs == 0 && m.Fat == 0
}

// Rounded returns the macros normalized to display precision:
// calories to whole numbers, protein/carbs/fat to one decimal place.
func (m Macros) Rounded() Macros {
	return Macros{
		Calories: math.Round(m.Calories),
		Protein:  math.Round(m.Protein*10) / 10,
		Carbs:    math.Round(m.Carbs*10) / 10,
		Fat:      math.Round(m.Fat*10) / 10,
	}
}

// RawCandidate is a food record as returned by a provider, before any
// scoring or filtering. It exists only for the duration of one search call.
type RawCandidate struct {
	Description string // Provider's canonical name, possibly verbose and comma-delimited
	ServingSize string // Optional per-unit serving size, empty if the provider has none
	Macros      Macros
}

// ScoredCandidate is a RawCandidate augmented with ranking state.
type ScoredCandidate struct {
	RawCandidate
	SimplifiedName string // Derived display name, also used for dedup comparison
	Score          int    // Relevance score, higher = more relevant, local to one call
	SourceProvider string // Which provider produced it, for diagnostics only
}

// FoodItem is the public result type of a search.
type FoodItem struct {
	Id          ID
	Name        string
	ServingSize string
	Macros      Macros
}

// DefaultServingSize is used when a provider does not supply portioning.
const DefaultServingSize = "100g"
