// Package record loads occurrence records for evaluation: from JSON files,
// from arbitrary URLs and from the GBIF occurrence API.
//
// Records are decoded into a flat model.Record. Numbers are kept as
// json.Number so that no precision is lost and zero values still count as
// present.
package record
