package match

import (
	"errors"
	"strings"

	"mids/internal/model"
)

// ErrEmptyIntersection is returned when an IntersectionOf matcher is built
// without identifiers.
var ErrEmptyIntersection = errors.New("intersectionOf requires at least one identifier")

// Predicate names recognised in SSSOM mappings.
const (
	PredicateExactMatch     = "exactMatch"
	PredicateNarrowMatch    = "narrowMatch"
	PredicateIntersectionOf = "intersectionOf"
)

// Kind identifies the matching strategy of a matcher.
type Kind int

const (
	KindUnknown Kind = iota
	KindExact
	KindNarrow
	KindIntersectionOf
)

// String returns the SSSOM predicate name for the kind.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return PredicateExactMatch
	case KindNarrow:
		return PredicateNarrowMatch
	case KindIntersectionOf:
		return PredicateIntersectionOf
	default:
		return "unknown"
	}
}

// KindOf returns the kind of m, or KindUnknown for matchers defined
// outside this package.
func KindOf(m model.Matcher) Kind {
	if k, ok := m.(interface{ Kind() Kind }); ok {
		return k.Kind()
	}

	return KindUnknown
}

// Exact matches when the record has a non-empty value for the identifier's
// name.
type Exact struct {
	Identifier model.Identifier
}

// NewExact creates an exact matcher over id.
func NewExact(id model.Identifier) *Exact {
	return &Exact{Identifier: id}
}

// Name returns the identifier name.
func (m *Exact) Name() string { return m.Identifier.Name }

// Kind returns KindExact.
func (m *Exact) Kind() Kind { return KindExact }

// Fields returns the single field read by the matcher.
func (m *Exact) Fields() []string { return []string{m.Identifier.Name} }

// Match implements model.Matcher.
func (m *Exact) Match(r model.Record) bool {
	return Present(r, m.Identifier.Name)
}

func (m *Exact) String() string { return "Matcher: " + m.Name() }

// Narrow behaves exactly like Exact. The separate type records that the
// mapping declared a narrower concept.
type Narrow struct {
	Exact
}

// NewNarrow creates a narrow matcher over id.
func NewNarrow(id model.Identifier) *Narrow {
	return &Narrow{Exact{Identifier: id}}
}

// Kind returns KindNarrow.
func (m *Narrow) Kind() Kind { return KindNarrow }

// IntersectionOf matches when every identifier has a non-empty value.
type IntersectionOf struct {
	Identifiers []model.Identifier

	names []string
	label string
}

// NewIntersectionOf creates an intersection matcher. The identifier order is
// kept for the label.
func NewIntersectionOf(ids []model.Identifier) (*IntersectionOf, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyIntersection
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.Name)
	}

	return &IntersectionOf{
		Identifiers: append([]model.Identifier(nil), ids...),
		names:       names,
		label:       "[" + strings.Join(names, ",") + "]",
	}, nil
}

// Name returns the identifier names joined in input order, e.g. [a,b].
func (m *IntersectionOf) Name() string { return m.label }

// Kind returns KindIntersectionOf.
func (m *IntersectionOf) Kind() Kind { return KindIntersectionOf }

// Fields returns the names of all required fields.
func (m *IntersectionOf) Fields() []string { return append([]string(nil), m.names...) }

// Match implements model.Matcher.
func (m *IntersectionOf) Match(r model.Record) bool {
	for _, name := range m.names {
		if !Present(r, name) {
			return false
		}
	}

	return true
}

func (m *IntersectionOf) String() string { return "Matcher: " + m.label }
