package sssom

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"mids/internal/model"
)

// Version is the MIDS mapping version the file names refer to.
const Version = "0.1"

var (
	// ErrMissingColumn is returned when the mapping header lacks a required column.
	ErrMissingColumn = errors.New("missing mapping column")
	// ErrMissingCurieMap is returned when the metadata has no curie_map.
	ErrMissingCurieMap = errors.New("metadata has no curie_map")
)

//go:embed data
var embedded embed.FS

// Embedded returns the mapping files shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// "data" is a literal, valid path
		panic(err)
	}

	return sub
}

// Dir returns the mapping files stored in a directory on disk.
func Dir(path string) fs.FS {
	return os.DirFS(path)
}

// MappingFileName returns the TSV file name for a discipline.
func MappingFileName(d model.Discipline) string {
	return fmt.Sprintf("v%s_%s.sssom.tsv", Version, d)
}

// MetadataFileName returns the YAML file name for a discipline.
func MetadataFileName(d model.Discipline) string {
	return fmt.Sprintf("v%s_%s.sssom.yml", Version, d)
}

// ReadMapping reads the mapping rows for the given discipline from fsys.
func ReadMapping(fsys fs.FS, d model.Discipline) ([]Row, error) {
	name := MappingFileName(d)

	f, err := fsys.Open(name)
	if err != nil {
		return nil, openError(d, name, err)
	}
	defer f.Close()

	rows, err := ParseMapping(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", name, err)
	}

	return rows, nil
}

// ReadMetadata reads the mapping set metadata for the given discipline.
func ReadMetadata(fsys fs.FS, d model.Discipline) (*Metadata, error) {
	name := MetadataFileName(d)

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, openError(d, name, err)
	}

	md, err := ParseMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", name, err)
	}

	return md, nil
}

func openError(d model.Discipline, name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %q: %s not found", model.ErrUnknownDiscipline, d, name)
	}

	return fmt.Errorf("failed to open %s: %w", name, err)
}

// Available lists the disciplines that have both a mapping and a metadata
// file in fsys, sorted by name.
func Available(fsys fs.FS) ([]model.Discipline, error) {
	prefix := "v" + Version + "_"

	matches, err := fs.Glob(fsys, prefix+"*.sssom.tsv")
	if err != nil {
		return nil, err
	}

	var out []model.Discipline

	for _, m := range matches {
		d := model.Discipline(strings.TrimSuffix(strings.TrimPrefix(m, prefix), ".sssom.tsv"))
		if _, err := fs.Stat(fsys, MetadataFileName(d)); err == nil {
			out = append(out, d)
		}
	}

	slices.Sort(out)

	return out, nil
}

// ParseMapping parses a tab separated mapping file. The first non-comment
// line is the header; lines starting with '#' hold SSSOM embedded metadata
// and are skipped. Row order is preserved.
func ParseMapping(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty mapping, expected header", ErrMissingColumn)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	var rows []Row

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse mapping: %w", err)
		}

		if isBlank(record) {
			continue
		}

		line, _ := cr.FieldPos(0)
		get := func(col string) string {
			i, ok := columns[col]
			if !ok || i >= len(record) {
				return ""
			}

			return record[i]
		}

		rows = append(rows, Row{
			Line:                 line,
			SubjectID:            get(ColSubjectID),
			SubjectLabel:         get(ColSubjectLabel),
			SubjectCategory:      get(ColSubjectCategory),
			PredicateID:          get(ColPredicateID),
			ObjectID:             get(ColObjectID),
			ObjectLabel:          get(ColObjectLabel),
			ObjectMatchField:     get(ColObjectMatchField),
			MappingJustification: get(ColMappingJustification),
		})
	}

	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

// ParseMetadata parses the YAML metadata of a mapping set.
func ParseMetadata(data []byte) (*Metadata, error) {
	var md Metadata

	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("failed to parse metadata YAML: %w", err)
	}

	if len(md.CurieMap) == 0 {
		return nil, ErrMissingCurieMap
	}

	return &md, nil
}
