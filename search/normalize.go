package search

import "strings"

// Descriptor words that reference databases put after the main food noun.
// A query like "white rice" matches better as "rice white" because canonical
// entries are named "Rice, white", not "White rice".
var descriptorWords = map[string]bool{
	"white": true, "brown": true, "red": true, "green": true, "black": true,
	"yellow": true, "whole": true, "skim": true, "raw": true, "cooked": true,
	"boiled": true, "steamed": true, "grilled": true, "roasted": true,
	"baked": true, "fried": true, "frozen": true, "fresh": true, "dried": true,
	"canned": true, "smoked": true, "sweet": true, "wild": true,
}

// NormalizeQuery rewrites a free-text query into the main-food-first form used
// by reference databases. If the query has two or more words and starts with a
// descriptor word, that word is moved to the end; otherwise the query is
// returned unchanged (apart from lower-casing and trimming).
func NormalizeQuery(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))

	words := strings.Fields(query)
	if len(words) < 2 || !descriptorWords[words[0]] {
		return query
	}

	reordered := append(words[1:len(words):len(words)], words[0])
	return strings.Join(reordered, " ")
}
