package model

import "fmt"

// Matcher decides whether a record carries a piece of information.
// Implementations must be pure and must tolerate records that miss any key.
type Matcher interface {
	// Name is a human-readable label used for diagnostics only.
	Name() string
	// Match reports whether the record satisfies the matcher.
	Match(r Record) bool
	// Fields lists the record field names the matcher reads.
	Fields() []string
}

// Element is a single MIDS information element.
type Element struct {
	// Identifier of the element, e.g. mids:PhysicalSpecimenId.
	Identifier Identifier
	// Level this element belongs to.
	Level Level
	// Matchers are alternative ways of expressing the element in a record.
	Matchers []Matcher
}

// NewElement creates an element. The matcher slice is copied.
func NewElement(id Identifier, level Level, matchers []Matcher) *Element {
	return &Element{
		Identifier: id,
		Level:      level,
		Matchers:   append([]Matcher(nil), matchers...),
	}
}

// Name returns the name of the element's identifier.
func (e *Element) Name() string {
	return e.Identifier.Name
}

// Match reports whether any of the element's matchers match the record.
// An element without matchers never matches.
func (e *Element) Match(r Record) bool {
	for _, m := range e.Matchers {
		if m.Match(r) {
			return true
		}
	}

	return false
}

// String returns a short description, e.g. "mids1/Licence".
func (e *Element) String() string {
	return fmt.Sprintf("%s/%s", e.Level, e.Name())
}
