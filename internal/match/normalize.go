package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a record field name for fuzzy comparison:
//  1. Drop any namespace, so "dwc:eventDate" and
//     "http://rs.tdwg.org/dwc/terms/eventDate" both become "eventDate".
//  2. Strip separators (_, -, ., spaces).
//  3. Case-fold to lower.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// LocalName returns the part of s after the last '/', '#' or ':'.
func LocalName(s string) string {
	if i := strings.LastIndexAny(s, "/#:"); i >= 0 {
		return s[i+1:]
	}

	return s
}

// TokenizeIdent splits a field name into lowercase tokens at separators and
// camelCase boundaries, after dropping any namespace.
// Examples:
//   - "decimalLatitude" -> ["decimal", "latitude"]
//   - "decimal_latitude" -> ["decimal", "latitude"]
//   - "occurrenceID" -> ["occurrence", "id"]
//   - "dwc:GBIFRecordID" -> ["gbif", "record", "id"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(LocalName(s))
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// startsToken reports whether a new token begins at position i (i > 0).
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "decimalLatitude": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "GBIFRecord": end of an acronym before a lowercase rune
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
