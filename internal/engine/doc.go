// Package engine compiles SSSOM mapping rows into a MIDS engine and
// evaluates occurrence records against it.
//
// Compilation pipeline:
//  1. Build the curie map from the mapping set metadata
//  2. Stable-sort rows by subject_id and group consecutive rows per subject
//  3. Expand predicate and object identifiers; dispatch on the predicate
//     name (exactMatch, narrowMatch, intersectionOf) to build matchers
//  4. Build one element per subject, at the level named by its first row
//  5. Bucket elements per level, keeping row order
//
// Any malformed row is reported as an error diagnostic and no engine is
// returned. A compiled engine is immutable and safe for concurrent use.
package engine
