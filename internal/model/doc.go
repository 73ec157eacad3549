// Package model defines the MIDS data model: identifiers and the curie map
// that produces them, the ordered MIDS levels, information elements with
// their matchers, and the per-level results assembled into a report.
//
// # Levels
//
// MIDS (Minimum Information about a Digital Specimen) defines four levels of
// increasing metadata completeness:
//
//	mids0 < mids1 < mids2 < mids3
//
// A record reaches a level only when every element of that level and of all
// lower levels is present. Levels() always yields them in ascending order.
//
// # Lifecycle
//
// Identifiers, elements and the curie map are built once when a discipline
// engine is compiled and never mutated afterwards, so they can be shared
// between goroutines. Results and reports are created per evaluation and
// belong to the caller.
package model
