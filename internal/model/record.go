package model

// Record is a single occurrence record: a flat mapping of field names to
// scalar values, usually decoded from JSON. Missing keys and nil values are
// both treated as absent by matchers.
type Record map[string]any

// Get returns the value stored under name and whether the key exists.
func (r Record) Get(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// Fields returns the record's field names in unspecified order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	return names
}
