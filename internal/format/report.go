package format

import (
	"fmt"
	"io"
	"strings"

	"mids/internal/match"
	"mids/internal/model"
)

// Labels used for element and level outcomes.
const (
	Pass = "PASS"
	Fail = "FAIL"
)

func outcome(passed bool) string {
	if passed {
		return Pass
	}

	return Fail
}

// Report writes a report. The short form prints one line per level; the
// verbose form prints a table per level with every element, the matchers
// that were tried and hints for fields that look misspelled.
func Report(w io.Writer, r *model.Report, verbose bool, mode Mode) error {
	if !verbose {
		return shortReport(w, r)
	}

	for _, res := range r.Ordered() {
		t := NewTable(mode)
		t.Title("Level %s: %s", res.Level, outcome(res.Passed()))
		t.Header("Element", "Result", "Matchers", "Hint")
		t.Columns(ColumnConfig{Number: 2, Center: true}, ColumnConfig{Number: 3, MaxWidth: 60})

		for _, er := range res.Elements {
			t.Row(er.Element.Name(), outcome(er.Passed), describeMatchers(er.Element), hint(er, r.Data))
		}

		if mode == Markdown {
			if _, err := fmt.Fprintf(w, "### Level %s: %s\n\n", res.Level, outcome(res.Passed())); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
	}

	level, ok := r.Level()

	return Check(w, level, ok)
}

func shortReport(w io.Writer, r *model.Report) error {
	for _, res := range r.Ordered() {
		var err error
		if res.Passed() {
			_, err = fmt.Fprintf(w, "Level %s passed\n", res.Level)
		} else {
			_, err = fmt.Fprintf(w, "Level %s failed on %s\n", res.Level, strings.Join(res.FailedNames(), ", "))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func describeMatchers(e *model.Element) string {
	parts := make([]string, 0, len(e.Matchers))
	for _, m := range e.Matchers {
		parts = append(parts, m.Name())
	}

	if len(parts) == 0 {
		return "-"
	}

	return strings.Join(parts, " | ")
}

// hint suggests record fields that look like the ones a failed element
// wanted, e.g. "decimal_latitude for decimalLatitude?".
func hint(er model.ElementResult, data model.Record) string {
	if er.Passed {
		return ""
	}

	var hints []string

	seen := map[string]bool{}

	for _, m := range er.Element.Matchers {
		for _, s := range match.NearMisses(m, data) {
			key := s.Name + "/" + s.Wanted
			if seen[key] {
				continue
			}

			seen[key] = true
			hints = append(hints, fmt.Sprintf("%s for %s?", s.Name, s.Wanted))
		}
	}

	return strings.Join(hints, "; ")
}

// Check writes the level a record was matched to.
func Check(w io.Writer, level model.Level, ok bool) error {
	var err error
	if ok {
		_, err = fmt.Fprintf(w, "Matched to MIDS level %s\n", level)
	} else {
		_, err = fmt.Fprintln(w, "Did not match any MIDS level")
	}

	return err
}

// ElementSource exposes the compiled elements of a mapping.
type ElementSource interface {
	Elements(level model.Level) []*model.Element
}

// Elements writes one table listing the compiled elements of every level
// with their matchers.
func Elements(w io.Writer, src ElementSource, mode Mode) error {
	t := NewTable(mode)
	t.Header("Level", "Element", "Identifier", "Strategy", "Fields")

	total := 0

	for _, level := range model.Levels() {
		for _, e := range src.Elements(level) {
			if len(e.Matchers) == 0 {
				t.Row(level, e.Name(), e.Identifier.ID, "-", "-")
			}

			for _, m := range e.Matchers {
				t.Row(level, e.Name(), e.Identifier.ID, match.KindOf(m), strings.Join(m.Fields(), ", "))
			}

			total++
		}
	}

	t.Footer("", fmt.Sprintf("%d elements", total), "", "", "")

	_, err := fmt.Fprintln(w, t.String())

	return err
}
