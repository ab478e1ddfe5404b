package search

import "strings"

// Preparation and genericity words ignored when deciding whether two names
// denote the same practical food choice.
var similarityStopWords = map[string]bool{
	"cooked": true, "raw": true, "steamed": true, "boiled": true,
	"grilled": true, "baked": true, "roasted": true, "fried": true,
	"braised": true, "stewed": true, "smoked": true,
	"regular": true, "standard": true, "plain": true, "whole": true,
	"fresh": true,
}

// Substring comparison only applies beyond this length, so tiny normalized
// forms like "egg" and "eggnog" are not collapsed.
const similarityMinLength = 5

// AreSimilar reports whether two food names denote the same practical food
// choice once preparation and descriptor noise is normalized away. Used only
// for deduplication, never for ranking.
func AreSimilar(nameA, nameB string) bool {
	a := normalizeForComparison(nameA)
	b := normalizeForComparison(nameB)

	if a == b {
		return true
	}

	if len(a) > similarityMinLength && len(b) > similarityMinLength {
		return strings.Contains(a, b) || strings.Contains(b, a)
	}

	return false
}

// normalizeForComparison lower-cases the name, strips any parenthetical
// suffix, drops preparation/genericity words, and removes everything that is
// not a letter or digit.
func normalizeForComparison(name string) string {
	name = strings.ToLower(name)

	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, name)

	var b strings.Builder
	for _, word := range strings.Fields(cleaned) {
		if similarityStopWords[word] {
			continue
		}
		b.WriteString(word)
	}
	return b.String()
}
