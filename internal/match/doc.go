// Package match implements the presence-detection strategies used by MIDS
// elements, plus fuzzy field-name comparison used to explain failures.
//
// Matchers:
//   - Exact: the record has a non-empty value for one field
//   - Narrow: same behaviour as Exact, kept distinct for provenance
//   - IntersectionOf: the record has non-empty values for all of a set of fields
//
// A value is empty when the key is absent, the value is nil or the value is
// the empty string. Nested values (JSON arrays and objects) never satisfy a
// matcher.
//
// Fuzzy helpers:
//   - NormalizeIdent: normalizes field names for comparison
//   - Levenshtein: computes edit distance between strings
//   - RankFields / Closest: rank candidate names against a wanted name
//   - NearMisses: record fields that look like the ones a matcher wanted
package match
