package sssom

// Column names read from the mapping TSV.
const (
	ColSubjectID            = "subject_id"
	ColSubjectLabel         = "subject_label"
	ColSubjectCategory      = "subject_category"
	ColPredicateID          = "predicate_id"
	ColObjectID             = "object_id"
	ColObjectLabel          = "object_label"
	ColObjectMatchField     = "object_match_field"
	ColMappingJustification = "mapping_justification"
)

// requiredColumns must be present in every mapping header.
var requiredColumns = []string{ColSubjectID, ColPredicateID, ColObjectID, ColSubjectCategory}

// ObjectMatchFieldSeparator separates the identifiers in object_match_field.
const ObjectMatchFieldSeparator = "|"

// Row is a single mapping row.
type Row struct {
	Line                 int    // 1-based line in the source file
	SubjectID            string // e.g. mids:PhysicalSpecimenId
	SubjectLabel         string
	SubjectCategory      string // MIDS level name, e.g. mids0
	PredicateID          string // e.g. skos:exactMatch
	ObjectID             string // e.g. dwc:catalogNumber
	ObjectLabel          string
	ObjectMatchField     string // "|" separated identifiers, may be empty
	MappingJustification string
}

// Metadata is the mapping set metadata file.
type Metadata struct {
	MappingSetID          string            `yaml:"mapping_set_id"`
	MappingSetVersion     string            `yaml:"mapping_set_version,omitempty"`
	MappingSetTitle       string            `yaml:"mapping_set_title,omitempty"`
	MappingSetDescription string            `yaml:"mapping_set_description,omitempty"`
	License               string            `yaml:"license,omitempty"`
	CurieMap              map[string]string `yaml:"curie_map"`
}
