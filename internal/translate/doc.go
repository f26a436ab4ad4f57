// Package translate converts natural language schedule phrases into
// five-field cron expressions.
//
// # Overview
//
// The package is a pure pipeline with two stages:
//
//   - Match classifies a phrase against an ordered list of recognized
//     shapes ("daily at HH:MM", "every N minutes", ...) and extracts the
//     shape's parameters into a Pattern.
//   - Emit maps a validated Pattern onto the five cron fields
//     (minute hour dom month dow) and a human-readable description.
//
// Translate composes the two. Shapes are tried most-specific first so
// ambiguous phrases resolve deterministically; a raw five-field cron
// expression short-circuits the matcher and passes through unchanged.
//
// # Supported phrasing
//
// See Guide() for the full list with examples. Time fragments accept
// 24-hour "HH:MM", a bare hour, "midnight", "noon", and am/pm suffixes.
// Date lists accept ordinals ("1st and 15th") and plain integers
// ("10,20"). Day-of-week names accept common abbreviations ("mon",
// "tues", "weds").
//
// # Errors
//
// All failures are user-input errors surfaced as *ParseError with a
// structured kind and the offending substring. Matching and emission
// never panic; emission from a matched Pattern cannot fail.
package translate
