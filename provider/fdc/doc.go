// Package fdc implements a provider.Client for the USDA FoodData Central API.
//
// FoodData Central is an authoritative structured nutrient database with rich
// per-nutrient data for generic foods. It is used as the primary provider in
// the search fallback chain.
package fdc
