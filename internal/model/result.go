package model

import "mids/internal/common"

// ElementResult pairs an element with the outcome of matching it.
type ElementResult struct {
	Element *Element
	Passed  bool
}

// Result holds the element checks performed at a single MIDS level.
// Derived values are recomputed on each call.
type Result struct {
	Level    Level
	Elements []ElementResult
}

// Passed returns true if no element failed at this level. A level without
// elements passes.
func (r *Result) Passed() bool {
	for _, er := range r.Elements {
		if !er.Passed {
			return false
		}
	}

	return true
}

// Fails returns the elements that failed, in check order.
func (r *Result) Fails() []*Element {
	return r.filter(false)
}

// Passes returns the elements that passed, in check order.
func (r *Result) Passes() []*Element {
	return r.filter(true)
}

func (r *Result) filter(passed bool) []*Element {
	var out []*Element

	for _, er := range r.Elements {
		if er.Passed == passed {
			out = append(out, er.Element)
		}
	}

	return out
}

// Report is the outcome of checking one record against every MIDS level.
type Report struct {
	// Data is the record that was assessed.
	Data Record
	// Results holds one result per level.
	Results map[Level]*Result
}

// Result returns the result for the given level, or nil if the report does
// not cover it.
func (r *Report) Result(l Level) *Result {
	return r.Results[l]
}

// Ordered returns the results from mids0 up to mids3. Levels missing from
// the report are skipped.
func (r *Report) Ordered() []*Result {
	out := make([]*Result, 0, len(r.Results))

	for _, l := range Levels() {
		if res, ok := r.Results[l]; ok {
			out = append(out, res)
		}
	}

	return out
}

// Level returns the highest level such that it and every lower level fully
// passed. ok is false when mids0 itself fails.
func (r *Report) Level() (Level, bool) {
	return HighestContiguous(func(l Level) bool {
		res := r.Results[l]
		return res != nil && res.Passed()
	})
}

// HighestContiguous walks the levels in ascending order and returns the last
// level for which passed returned true before the first failure. ok is false
// when the first level fails. passed is not called after the first failure.
func HighestContiguous(passed func(Level) bool) (Level, bool) {
	var (
		matched Level
		ok      bool
	)

	for _, l := range Levels() {
		if !passed(l) {
			break
		}

		matched, ok = l, true
	}

	return matched, ok
}

// FailedNames returns the names of the failed elements, in check order.
func (r *Result) FailedNames() []string {
	fails := r.Fails()
	if common.IsEmpty(fails) {
		return nil
	}

	names := make([]string, 0, len(fails))
	for _, e := range fails {
		names = append(names, e.Name())
	}

	return names
}
