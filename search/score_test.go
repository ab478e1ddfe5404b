package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Deterministic(t *testing.T) {
	first := Score("Rice, white, cooked", "rice")
	second := Score("Rice, white, cooked", "rice")
	assert.Equal(t, first, second)
}

func TestScore_ExactMatchPrecedence(t *testing.T) {
	exact := Score("Rice, white", "rice, white")
	partial := Score("Rice, white, long-grain", "rice, white")

	assert.Greater(t, exact, partial)
	// Exact matches carry the top-tier bonus.
	assert.GreaterOrEqual(t, exact, exactMatchBonus)
}

func TestScore_MatchQualityTiers(t *testing.T) {
	query := "chicken breast"

	exact := Score("Chicken breast", query)
	prefix := Score("Chicken breast, grilled", query)
	substring := Score("Roasted chicken breast strips", query)
	allWords := Score("Chicken, broilers or fryers, breast", query)
	oneWord := Score("Chicken soup", query)

	assert.Greater(t, exact, prefix)
	assert.Greater(t, prefix, substring)
	assert.Greater(t, substring, allWords)
	assert.Greater(t, allWords, oneWord)
}

func TestScore_DerivativeSuppression(t *testing.T) {
	flour := Score("Rice flour", "rice")
	plain := Score("Rice, white, cooked", "rice")
	assert.Less(t, flour, plain)
}

func TestScore_DerivativeAllowedWhenQueried(t *testing.T) {
	// No penalty when the query itself asks for the derivative.
	withQuery := Score("Rice flour", "rice flour")
	withoutQuery := Score("Rice flour", "rice")
	assert.Greater(t, withQuery, withoutQuery)
}

func TestScore_BrevityPrefersShortNames(t *testing.T) {
	short := Score("Rice, white", "rice")
	long := Score("Rice, white, long-grain, parboiled, unenriched", "rice")
	assert.Greater(t, short, long)
}

func TestScore_PositionBonus(t *testing.T) {
	t.Run("leading token outranks second token", func(t *testing.T) {
		leading := Score("Rice, white", "rice")
		second := Score("Wild rice, cooked", "rice")
		assert.Greater(t, leading, second)
	})

	t.Run("buried token is penalized", func(t *testing.T) {
		buried := Score("Soup, cream of chicken, with rice", "rice")
		leading := Score("Rice, white", "rice")
		assert.Greater(t, leading, buried)
	})
}

func TestScore_OverSpecificityPenalty(t *testing.T) {
	infant := Score("Rice, infant formula", "rice")
	plain := Score("Rice, white", "rice")
	assert.Equal(t, overSpecificPenalty, infant-plain-(brevityDelta("rice, infant formula", "rice, white")))
}

// brevityDelta isolates the word-count contribution between two names so the
// over-specificity assertion stays exact.
func brevityDelta(nameA, nameB string) int {
	a := max(0, brevityBase-brevityFactor*len(tokenizeName(nameA)))
	b := max(0, brevityBase-brevityFactor*len(tokenizeName(nameB)))
	return a - b
}

func TestScore_PreparationState(t *testing.T) {
	t.Run("cooked candidate preferred for cooked-by-convention food", func(t *testing.T) {
		cooked := Score("Rice, white, cooked", "rice")
		raw := Score("Rice, white, raw", "rice")
		assert.Equal(t, cookedStateBonus-rawStatePenalty, cooked-raw)
	})

	t.Run("no adjustment for foods eaten raw", func(t *testing.T) {
		cooked := Score("Apple, cooked", "apple")
		plain := Score("Apple, sliced", "apple")
		assert.Equal(t, cooked, plain)
	})
}

func TestScore_FiniteForArbitraryInput(t *testing.T) {
	assert.NotPanics(t, func() {
		Score("", "")
		Score("Rice", "")
		Score("", "rice")
		Score("   ,,, ", " \t ")
	})
}
