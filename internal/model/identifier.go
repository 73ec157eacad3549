package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrUnknownPrefix is returned when a prefixed identifier uses a prefix
	// that is not present in the curie map.
	ErrUnknownPrefix = errors.New("unknown prefix")
	// ErrMalformedCurie is returned when a prefixed identifier has no ':'.
	ErrMalformedCurie = errors.New("malformed curie")
)

// Identifier is an expanded identifier from the SSSOM mapping.
type Identifier struct {
	ID     string // e.g. http://rs.tdwg.org/dwc/terms/occurrenceID
	Name   string // e.g. occurrenceID
	Prefix string // e.g. dwc
}

// String returns the full ID.
func (i Identifier) String() string {
	return i.ID
}

// Curie returns the prefixed form of the identifier, e.g. dwc:occurrenceID.
func (i Identifier) Curie() string {
	return i.Prefix + ":" + i.Name
}

// CurieMap expands prefixed identifiers using a prefix to namespace table.
// The zero value expands nothing.
type CurieMap struct {
	namespaces map[string]string
}

// NewCurieMap copies the given prefix to namespace table into a CurieMap.
func NewCurieMap(namespaces map[string]string) CurieMap {
	return CurieMap{namespaces: maps.Clone(namespaces)}
}

// Expand converts a prefixed identifier such as dwc:occurrenceID into an
// Identifier. The whole string is trimmed and then split at the first ':'.
func (c CurieMap) Expand(prefixed string) (Identifier, error) {
	prefix, name, found := strings.Cut(strings.TrimSpace(prefixed), ":")
	if !found {
		return Identifier{}, fmt.Errorf("%w: %q has no prefix separator", ErrMalformedCurie, prefixed)
	}

	namespace, ok := c.namespaces[prefix]
	if !ok {
		return Identifier{}, fmt.Errorf("%w %q in %q", ErrUnknownPrefix, prefix, prefixed)
	}

	return Identifier{ID: namespace + name, Name: name, Prefix: prefix}, nil
}

// Namespace returns the namespace registered for prefix.
func (c CurieMap) Namespace(prefix string) (string, bool) {
	ns, ok := c.namespaces[prefix]
	return ns, ok
}

// Prefixes returns the registered prefixes in sorted order.
func (c CurieMap) Prefixes() []string {
	return slices.Sorted(maps.Keys(c.namespaces))
}

// Len returns the number of registered prefixes.
func (c CurieMap) Len() int {
	return len(c.namespaces)
}
