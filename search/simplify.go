package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Descriptors that read naturally before the food noun ("white rice").
var prefixDescriptors = map[string]bool{
	"white": true, "brown": true, "red": true, "green": true, "black": true,
	"yellow": true, "whole": true, "skim": true, "greek": true, "wild": true,
	"sweet": true, "lowfat": true, "nonfat": true,
}

// Preparation methods, appended parenthetically ("Rice (Cooked)").
var preparationMethods = map[string]bool{
	"raw": true, "cooked": true, "boiled": true, "steamed": true,
	"grilled": true, "roasted": true, "baked": true, "fried": true,
	"braised": true, "stewed": true, "smoked": true,
}

// Catalog noise that never belongs in a display name.
var noiseDescriptors = map[string]bool{
	"nfs": true, "unenriched": true, "enriched": true, "regular": true,
	"commercial": true, "unspecified": true, "unprepared": true,
}

// SimplifyName converts a verbose, comma-delimited canonical food description
// into a short display name. The first comma segment is taken as the main food
// noun; later segments are classified as prefix descriptor, preparation
// method, noise, or one verbatim extra, and composed as
// "[prefix] mainFood [extra] (preparation)" in title case.
// Always returns a non-empty string given non-empty input.
func SimplifyName(rawName string) string {
	segments := splitSegments(rawName)

	if len(segments) == 0 {
		return titleCase(rawName)
	}
	if len(segments) == 1 {
		return titleCase(segments[0])
	}

	mainFood := segments[0]
	var prefix, preparation, extra string

	for i, segment := range segments[1:] {
		lowered := strings.ToLower(segment)
		switch {
		case prefixDescriptors[lowered]:
			if prefix == "" {
				prefix = lowered
			}
		case preparationMethods[lowered]:
			if preparation == "" {
				preparation = lowered
			}
		case noiseDescriptors[lowered]:
			// always discarded
		case extra == "" && i < 3:
			extra = segment
		}
	}

	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, mainFood)
	if extra != "" {
		parts = append(parts, extra)
	}

	name := strings.Join(parts, " ")
	if preparation != "" {
		name += " (" + preparation + ")"
	}

	return titleCase(name)
}

// splitSegments splits a canonical description on commas, trimming and
// discarding empty segments.
func splitSegments(rawName string) []string {
	raw := strings.Split(rawName, ",")
	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// titleCase title-cases the string and collapses repeated whitespace.
// A fresh caser per call keeps this safe for concurrent searches.
func titleCase(s string) string {
	return cases.Title(language.English).String(collapseSpaces(s))
}
