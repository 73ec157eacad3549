package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fieldMatcher matches when the named field is a non-empty string.
type fieldMatcher string

func (f fieldMatcher) Name() string     { return string(f) }
func (f fieldMatcher) Fields() []string { return []string{string(f)} }

func (f fieldMatcher) Match(r Record) bool {
	v, _ := r[string(f)].(string)
	return v != ""
}

func element(name string, level Level, matchers ...Matcher) *Element {
	return NewElement(Identifier{ID: "mids:" + name, Name: name, Prefix: "mids"}, level, matchers)
}

func resultWith(level Level, outcomes ...bool) *Result {
	res := &Result{Level: level}
	for i, passed := range outcomes {
		res.Elements = append(res.Elements, ElementResult{
			Element: element(string(rune('a'+i)), level),
			Passed:  passed,
		})
	}

	return res
}

func TestResultPass(t *testing.T) {
	res := resultWith(MIDS1, true, true, true, true)

	assert.True(t, res.Passed())
	assert.Len(t, res.Passes(), 4)
	assert.Empty(t, res.Fails())
	assert.Nil(t, res.FailedNames())
}

func TestResultFail(t *testing.T) {
	res := resultWith(MIDS1, true, false, true, false)

	assert.False(t, res.Passed())
	assert.Equal(t, []string{"a", "c"}, names(res.Passes()))
	assert.Equal(t, []string{"b", "d"}, names(res.Fails()))
	assert.Equal(t, []string{"b", "d"}, res.FailedNames())

	// derived values are stable across calls
	assert.Equal(t, res.Fails(), res.Fails())
	assert.False(t, res.Passed())
}

func TestResultEmptyPasses(t *testing.T) {
	res := &Result{Level: MIDS3}
	assert.True(t, res.Passed())
}

func TestReportLevel(t *testing.T) {
	tests := []struct {
		name     string
		outcomes [LevelCount]bool
		want     Level
		wantOK   bool
	}{
		{"none", [LevelCount]bool{false, false, false, false}, 0, false},
		{"mids0", [LevelCount]bool{true, false, false, false}, MIDS0, true},
		{"mids1", [LevelCount]bool{true, true, false, false}, MIDS1, true},
		{"mids2", [LevelCount]bool{true, true, true, false}, MIDS2, true},
		{"mids3", [LevelCount]bool{true, true, true, true}, MIDS3, true},
		{"gap does not rescue", [LevelCount]bool{true, false, true, true}, MIDS0, true},
		{"failed base", [LevelCount]bool{false, true, true, true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{Data: Record{}, Results: map[Level]*Result{}}
			for _, l := range Levels() {
				report.Results[l] = resultWith(l, tt.outcomes[l])
			}

			got, ok := report.Level()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReportOrdered(t *testing.T) {
	report := &Report{Results: map[Level]*Result{
		MIDS2: resultWith(MIDS2, true),
		MIDS0: resultWith(MIDS0, true),
		MIDS3: resultWith(MIDS3, true),
		MIDS1: resultWith(MIDS1, true),
	}}

	var got []Level
	for _, res := range report.Ordered() {
		got = append(got, res.Level)
	}

	assert.Equal(t, Levels(), got)
	assert.Same(t, report.Results[MIDS2], report.Result(MIDS2))
}

func TestHighestContiguousStopsAtFirstFailure(t *testing.T) {
	var calls []Level

	level, ok := HighestContiguous(func(l Level) bool {
		calls = append(calls, l)
		return l != MIDS2
	})

	assert.True(t, ok)
	assert.Equal(t, MIDS1, level)
	assert.Equal(t, []Level{MIDS0, MIDS1, MIDS2}, calls)
}

func TestElement(t *testing.T) {
	e := element("elemname", MIDS1,
		fieldMatcher("field1"), fieldMatcher("field2"), fieldMatcher("field3"), fieldMatcher("field4"))

	assert.Equal(t, "elemname", e.Name())
	assert.Equal(t, "mids1/elemname", e.String())

	for _, field := range []string{"field1", "field2", "field3", "field4"} {
		assert.True(t, e.Match(Record{field: "beans"}), field)
	}

	assert.False(t, e.Match(Record{"field5": "beans"}))
	assert.False(t, e.Match(Record{"": "beans"}))
	assert.False(t, element("bare", MIDS0).Match(Record{"field1": "beans"}))
}

func TestNewElementCopiesMatchers(t *testing.T) {
	matchers := []Matcher{fieldMatcher("a")}
	e := element("x", MIDS0, matchers...)
	matchers[0] = fieldMatcher("b")

	assert.True(t, e.Match(Record{"a": "1"}))
}

func names(elements []*Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.Name())
	}

	return out
}
