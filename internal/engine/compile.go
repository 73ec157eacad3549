package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"mids/internal/common"
	"mids/internal/diagnostic"
	"mids/internal/match"
	"mids/internal/model"
	"mids/internal/sssom"
)

var (
	// ErrUnknownPredicate is returned for mapping predicates that have no
	// matcher.
	ErrUnknownPredicate = errors.New("unknown predicate")
	// ErrMalformedMapping wraps every compilation failure.
	ErrMalformedMapping = errors.New("malformed MIDS mapping")
)

// Diagnostic codes produced by Compile.
const (
	CodeBadSubject        = "bad_subject"
	CodeBadPredicate      = "bad_predicate"
	CodeBadObject         = "bad_object"
	CodeBadMatchField     = "bad_object_match_field"
	CodeUnknownPredicate  = "unknown_predicate"
	CodeUnknownLevel      = "unknown_level"
	CodeEmptyIntersection = "empty_intersection"
	CodeNoMatchers        = "element_without_matchers"
	CodeMixedLevels       = "mixed_levels"
	CodeLevelSummary      = "level_summary"
)

var knownPredicates = []string{
	match.PredicateExactMatch,
	match.PredicateNarrowMatch,
	match.PredicateIntersectionOf,
}

// Compile builds a MIDS engine for discipline from mapping rows and the
// mapping set metadata. The returned diagnostics hold warnings and notes even
// when compilation succeeds. When any row is malformed, the engine is nil and
// the error wraps ErrMalformedMapping plus the cause of every bad row.
func Compile(discipline model.Discipline, rows []sssom.Row, md *sssom.Metadata) (*MIDS, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	if md == nil {
		return nil, diags, fmt.Errorf("%w: %w", ErrMalformedMapping, sssom.ErrMissingCurieMap)
	}

	c := &compiler{
		curies: model.NewCurieMap(md.CurieMap),
		diags:  diags,
		levels: make(map[model.Level][]*model.Element, model.LevelCount),
	}

	for _, l := range model.Levels() {
		c.levels[l] = []*model.Element{}
	}

	for _, group := range groupBySubject(rows) {
		c.compileGroup(group)
	}

	if err := diags.Err(); err != nil {
		return nil, diags, fmt.Errorf("%w for %s: %w", ErrMalformedMapping, discipline, err)
	}

	for _, l := range model.Levels() {
		diags.AddInfo(CodeLevelSummary, fmt.Sprintf("%d elements", len(c.levels[l])), l.String(), 0)
	}

	return &MIDS{
		discipline: discipline,
		curies:     c.curies,
		levels:     c.levels,
	}, diags, nil
}

// groupBySubject stable-sorts rows by subject_id and splits them into runs
// sharing the exact same subject_id.
func groupBySubject(rows []sssom.Row) [][]sssom.Row {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b sssom.Row) int {
		return strings.Compare(a.SubjectID, b.SubjectID)
	})

	var (
		groups  [][]sssom.Row
		current []sssom.Row
	)

	for _, row := range sorted {
		if len(current) > 0 && current[0].SubjectID != row.SubjectID {
			groups = append(groups, current)
			current = nil
		}

		current = append(current, row)
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

type compiler struct {
	curies model.CurieMap
	diags  *diagnostic.Diagnostics
	levels map[model.Level][]*model.Element
}

// compileGroup builds the element for one subject. Errors are recorded in
// the diagnostics; the element is only bucketed when the group is clean.
func (c *compiler) compileGroup(rows []sssom.Row) {
	first, ok := common.First(rows)
	if !ok {
		return
	}

	before := len(c.diags.Errors)

	var matchers []model.Matcher

	for _, row := range rows {
		if m := c.compileRow(row); m != nil {
			matchers = append(matchers, m)
		}
	}

	id, err := c.curies.Expand(first.SubjectID)
	if err != nil {
		c.addExpandError(CodeBadSubject, first.SubjectID, err, first.SubjectID, first.Line)
	}

	level, err := model.ParseLevel(first.SubjectCategory)
	if err != nil {
		c.diags.AddError(CodeUnknownLevel, err, first.SubjectID, first.Line,
			match.Closest(first.SubjectCategory, model.LevelNames())...)
	}

	if len(c.diags.Errors) > before {
		return
	}

	for _, row := range rows[1:] {
		if row.SubjectCategory != first.SubjectCategory {
			c.diags.AddWarning(CodeMixedLevels,
				fmt.Sprintf("level %q ignored, element is %s", row.SubjectCategory, level), row.SubjectID, row.Line)
		}
	}

	if common.IsEmpty(matchers) {
		c.diags.AddWarning(CodeNoMatchers, "element has no matchers and can never be satisfied", first.SubjectID, first.Line)
	}

	c.levels[level] = append(c.levels[level], model.NewElement(id, level, matchers))
}

// compileRow returns the matcher described by row, or nil when the row adds
// none (an intersectionOf without fields) or is malformed.
func (c *compiler) compileRow(row sssom.Row) model.Matcher {
	predicate, err := c.curies.Expand(row.PredicateID)
	if err != nil {
		c.addExpandError(CodeBadPredicate, row.PredicateID, err, row.SubjectID, row.Line)
		return nil
	}

	object, err := c.curies.Expand(row.ObjectID)
	if err != nil {
		c.addExpandError(CodeBadObject, row.ObjectID, err, row.SubjectID, row.Line)
		return nil
	}

	switch predicate.Name {
	case match.PredicateNarrowMatch:
		return match.NewNarrow(object)
	case match.PredicateExactMatch:
		return match.NewExact(object)
	case match.PredicateIntersectionOf:
		return c.compileIntersection(row)
	default:
		c.diags.AddError(CodeUnknownPredicate,
			fmt.Errorf("%w %q", ErrUnknownPredicate, row.PredicateID),
			row.SubjectID, row.Line,
			match.Closest(predicate.Name, knownPredicates)...)

		return nil
	}
}

func (c *compiler) compileIntersection(row sssom.Row) model.Matcher {
	if row.ObjectMatchField == "" {
		c.diags.AddWarning(CodeEmptyIntersection,
			"intersectionOf row without object_match_field adds no matcher", row.SubjectID, row.Line)

		return nil
	}

	parts := strings.Split(row.ObjectMatchField, sssom.ObjectMatchFieldSeparator)
	ids := make([]model.Identifier, 0, len(parts))

	for _, part := range parts {
		id, err := c.curies.Expand(part)
		if err != nil {
			c.addExpandError(CodeBadMatchField, part, err, row.SubjectID, row.Line)
			return nil
		}

		ids = append(ids, id)
	}

	m, err := match.NewIntersectionOf(ids)
	if err != nil {
		c.diags.AddError(CodeEmptyIntersection, err, row.SubjectID, row.Line)
		return nil
	}

	return m
}

// addExpandError records a failure to expand curie, suggesting close
// prefixes when the prefix was not found.
func (c *compiler) addExpandError(code, curie string, err error, subject string, line int) {
	var suggestions []string

	if errors.Is(err, model.ErrUnknownPrefix) {
		prefix, _, _ := strings.Cut(strings.TrimSpace(curie), ":")
		suggestions = match.Closest(prefix, c.curies.Prefixes())
	}

	c.diags.AddError(code, err, subject, line, suggestions...)
}
