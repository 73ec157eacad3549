package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mids/internal/match"
	"mids/internal/model"
)

func id(name string) model.Identifier {
	return model.Identifier{ID: "http://rs.tdwg.org/dwc/terms/" + name, Name: name, Prefix: "dwc"}
}

func element(t *testing.T, name string, level model.Level, fields ...string) *model.Element {
	t.Helper()

	if len(fields) == 1 {
		return model.NewElement(id(name), level, []model.Matcher{match.NewExact(id(fields[0]))})
	}

	ids := make([]model.Identifier, len(fields))
	for i, f := range fields {
		ids[i] = id(f)
	}

	m, err := match.NewIntersectionOf(ids)
	require.NoError(t, err)

	return model.NewElement(id(name), level, []model.Matcher{m})
}

type elementSet map[model.Level][]*model.Element

func (s elementSet) Elements(level model.Level) []*model.Element { return s[level] }

func fixture(t *testing.T) elementSet {
	t.Helper()

	return elementSet{
		model.MIDS0: {element(t, "Id", model.MIDS0, "occurrenceID")},
		model.MIDS1: {
			element(t, "Licence", model.MIDS1, "license"),
			element(t, "Name", model.MIDS1, "scientificName"),
		},
		model.MIDS2: {element(t, "Location", model.MIDS2, "decimalLatitude", "decimalLongitude")},
		model.MIDS3: {},
	}
}

func reportFor(set elementSet, r model.Record) *model.Report {
	rep := &model.Report{Data: r, Results: map[model.Level]*model.Result{}}

	for _, level := range model.Levels() {
		res := &model.Result{Level: level}
		for _, e := range set[level] {
			res.Elements = append(res.Elements, model.ElementResult{Element: e, Passed: e.Match(r)})
		}

		rep.Results[level] = res
	}

	return rep
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ASCII, false},
		{"ascii", ASCII, false},
		{"markdown", Markdown, false},
		{"md", Markdown, false},
		{"html", ASCII, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "markdown", Markdown.String())
	assert.Equal(t, "ascii", ASCII.String())
}

func TestReportShort(t *testing.T) {
	rep := reportFor(fixture(t), model.Record{"occurrenceID": "1234", "license": "CC0"})

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, rep, false, ASCII))

	want := strings.Join([]string{
		"Level mids0 passed",
		"Level mids1 failed on Name",
		"Level mids2 failed on Location",
		"Level mids3 passed",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestReportVerbose(t *testing.T) {
	rep := reportFor(fixture(t), model.Record{
		"occurrenceID":     "1234",
		"license":          "CC0",
		"scientificName":   "Puma concolor",
		"decimal_latitude": "10.4",
	})

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, rep, true, ASCII))

	out := buf.String()
	assert.Contains(t, out, "Level mids0: PASS")
	assert.Contains(t, out, "Level mids2: FAIL")
	assert.Contains(t, out, "[decimalLatitude,decimalLongitude]")
	assert.Contains(t, out, "decimal_latitude for decimalLatitude?")
	assert.True(t, strings.HasSuffix(out, "Matched to MIDS level mids1\n"), out)
}

func TestReportVerboseMarkdown(t *testing.T) {
	rep := reportFor(fixture(t), model.Record{})

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, rep, true, Markdown))

	out := buf.String()
	assert.Contains(t, out, "### Level mids0: FAIL")
	assert.Contains(t, out, "| Id |")
	assert.True(t, strings.HasSuffix(out, "Did not match any MIDS level\n"), out)
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Check(&buf, model.MIDS2, true))
	require.NoError(t, Check(&buf, 0, false))

	assert.Equal(t, "Matched to MIDS level mids2\nDid not match any MIDS level\n", buf.String())
}

func TestElements(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Elements(&buf, fixture(t), Markdown))

	out := buf.String()
	assert.Contains(t, out, "| mids0 | Id |")
	assert.Contains(t, out, "intersectionOf")
	assert.Contains(t, out, "decimalLatitude, decimalLongitude")
	assert.Contains(t, out, "4 elements")
}

func TestHintSkipsPassed(t *testing.T) {
	e := element(t, "Id", model.MIDS0, "occurrenceID")
	r := model.Record{"occurrenceId": "1"}

	assert.Empty(t, hint(model.ElementResult{Element: e, Passed: true}, r))
	assert.Equal(t, "occurrenceId for occurrenceID?", hint(model.ElementResult{Element: e}, r))
}
