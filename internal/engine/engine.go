package engine

import (
	"fmt"
	"io/fs"
	"log/slog"

	"mids/internal/diagnostic"
	"mids/internal/model"
	"mids/internal/sssom"
)

// MIDS is the entry point for MIDS calculations for one discipline.
// It is immutable after construction.
type MIDS struct {
	discipline model.Discipline
	curies     model.CurieMap
	levels     map[model.Level][]*model.Element
}

// Init reads the mapping files of discipline from fsys and compiles them.
// Warnings found during compilation are logged to logger, which may be nil.
func Init(discipline model.Discipline, fsys fs.FS, logger *slog.Logger) (*MIDS, error) {
	if logger == nil {
		logger = slog.Default()
	}

	md, err := sssom.ReadMetadata(fsys, discipline)
	if err != nil {
		return nil, err
	}

	rows, err := sssom.ReadMapping(fsys, discipline)
	if err != nil {
		return nil, err
	}

	mids, diags, err := Compile(discipline, rows, md)
	logDiagnostics(logger, discipline, diags)

	if err != nil {
		return nil, err
	}

	logger.Debug("compiled MIDS mapping",
		slog.String("discipline", discipline.String()),
		slog.String("mapping_set", md.MappingSetID),
		slog.Int("rows", len(rows)),
		slog.Int("elements", mids.ElementCount()))

	return mids, nil
}

func logDiagnostics(logger *slog.Logger, discipline model.Discipline, diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, d := range diags.Warnings {
		logger.Warn(d.Message,
			slog.String("discipline", discipline.String()),
			slog.String("code", d.Code),
			slog.String("subject", d.Subject),
			slog.Int("line", d.Line))
	}

	for _, d := range diags.Infos {
		logger.Debug(d.Message,
			slog.String("discipline", discipline.String()),
			slog.String("code", d.Code),
			slog.String("subject", d.Subject))
	}
}

// Discipline returns the discipline the engine was built for.
func (m *MIDS) Discipline() model.Discipline {
	return m.discipline
}

// CurieMap returns the curie map of the mapping set.
func (m *MIDS) CurieMap() model.CurieMap {
	return m.curies
}

// Elements returns the elements of level in mapping order. The returned
// slice is a copy; the elements themselves must not be modified.
func (m *MIDS) Elements(level model.Level) []*model.Element {
	return append([]*model.Element(nil), m.levels[level]...)
}

// ElementCount returns the number of elements across all levels.
func (m *MIDS) ElementCount() int {
	n := 0
	for _, elements := range m.levels {
		n += len(elements)
	}

	return n
}

// Report checks record against every element of every level. All levels are
// checked even when a lower one already failed, so the report is complete.
func (m *MIDS) Report(record model.Record) *model.Report {
	results := make(map[model.Level]*model.Result, model.LevelCount)

	for _, level := range model.Levels() {
		elements := m.levels[level]
		res := &model.Result{
			Level:    level,
			Elements: make([]model.ElementResult, 0, len(elements)),
		}

		for _, e := range elements {
			res.Elements = append(res.Elements, model.ElementResult{Element: e, Passed: e.Match(record)})
		}

		results[level] = res
	}

	return &model.Report{Data: record, Results: results}
}

// Check returns the highest MIDS level such that record matches every
// element of it and of every lower level. ok is false when record does not
// meet mids0. Evaluation stops at the first failing element.
func (m *MIDS) Check(record model.Record) (level model.Level, ok bool) {
	return model.HighestContiguous(func(l model.Level) bool {
		for _, e := range m.levels[l] {
			if !e.Match(record) {
				return false
			}
		}

		return true
	})
}

func (m *MIDS) String() string {
	return fmt.Sprintf("MIDS(%s, %d elements)", m.discipline, m.ElementCount())
}
