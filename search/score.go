package search

import "strings"

// Heuristic weights, in priority order. Larger weights dominate.
const (
	exactMatchBonus     = 1000
	prefixMatchBonus    = 500
	substringMatchBonus = 300
	allWordsBonus       = 200
	perWordBonus        = 50

	brevityBase   = 50
	brevityFactor = 8

	firstTokenBonus    = 60
	secondTokenBonus   = 30
	buriedTokenPenalty = -20

	derivativePenalty   = -100
	overSpecificPenalty = -50
	cookedStateBonus    = 40
	rawStatePenalty     = -20
)

// Derivative-product indicators. A query for a base food should not surface
// its processed derivatives above the food itself.
var derivativeWords = map[string]bool{
	"flour": true, "oil": true, "milk": true, "powder": true,
	"extract": true, "syrup": true, "juice": true, "sauce": true,
	"starch": true, "paste": true,
}

// Institutional, brand, and commercial qualifiers that mark a candidate as
// over-specific for a generic query.
var overSpecificWords = map[string]bool{
	"infant": true, "baby": true, "toddler": true, "formula": true,
	"restaurant": true, "brand": true, "commercial": true,
}

// Foods conventionally eaten cooked. When the query names one of these, a
// cooked candidate is preferred over a raw one.
var conventionallyCooked = map[string]bool{
	"rice": true, "pasta": true, "chicken": true, "beef": true, "pork": true,
	"fish": true, "egg": true, "potato": true, "broccoli": true,
	"beans": true, "lentils": true, "oats": true, "quinoa": true,
}

// Candidate-name words signaling a cooked state.
var cookedIndicators = map[string]bool{
	"cooked": true, "boiled": true, "steamed": true, "braised": true,
	"grilled": true, "roasted": true, "baked": true,
}

// Candidate-name words signaling a raw state.
var rawIndicators = map[string]bool{
	"raw": true, "uncooked": true,
}

// Score computes the relevance of a candidate name against the user's query.
// Pure function of the two strings and the package vocabularies; higher is
// more relevant, and every input pair yields a finite score.
func Score(candidateName, query string) int {
	name := collapseSpaces(strings.ToLower(candidateName))
	query = collapseSpaces(strings.ToLower(query))

	nameTokens := tokenizeName(name)
	queryTokens := tokenizeName(query)

	score := matchQualityBonus(name, query, queryTokens)

	// Shorter canonical names are typically more basic foods.
	score += max(0, brevityBase-brevityFactor*len(nameTokens))

	if len(queryTokens) > 0 {
		score += positionBonus(nameTokens, queryTokens[0])
	}

	if containsAny(nameTokens, derivativeWords) && !containsAny(queryTokens, derivativeWords) {
		score += derivativePenalty
	}

	if containsAny(nameTokens, overSpecificWords) {
		score += overSpecificPenalty
	}

	if containsAny(queryTokens, conventionallyCooked) {
		if containsAny(nameTokens, cookedIndicators) {
			score += cookedStateBonus
		} else if containsAny(nameTokens, rawIndicators) {
			score += rawStatePenalty
		}
	}

	return score
}

// matchQualityBonus grades how literally the name matches the query.
// The tiers are mutually exclusive; only the highest applicable one counts.
func matchQualityBonus(name, query string, queryTokens []string) int {
	if query == "" {
		return 0
	}

	switch {
	case name == query:
		return exactMatchBonus
	case strings.HasPrefix(name, query):
		return prefixMatchBonus
	case strings.Contains(name, query):
		return substringMatchBonus
	}

	found := 0
	for _, word := range queryTokens {
		if strings.Contains(name, word) {
			found++
		}
	}
	if found == len(queryTokens) && len(queryTokens) > 0 {
		return allWordsBonus
	}
	return perWordBonus * found
}

// positionBonus rewards candidates that lead with the query's main food and
// penalizes ones that bury it deep in the name.
func positionBonus(nameTokens []string, firstQueryWord string) int {
	for i, token := range nameTokens {
		if token != firstQueryWord {
			continue
		}
		switch {
		case i == 0:
			return firstTokenBonus
		case i == 1:
			return secondTokenBonus
		case i > 2:
			return buriedTokenPenalty
		}
		return 0
	}
	return 0
}

// tokenizeName splits a food name into comma/space-delimited tokens.
func tokenizeName(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// containsAny reports whether any token is a member of the vocabulary.
func containsAny(tokens []string, vocabulary map[string]bool) bool {
	for _, token := range tokens {
		if vocabulary[token] {
			return true
		}
	}
	return false
}

// collapseSpaces trims the string and collapses runs of whitespace, so that
// exact-match comparison is space-insensitive.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
