package model

import (
	"errors"
	"fmt"
)

// ErrUnknownDiscipline is returned for disciplines without a mapping.
var ErrUnknownDiscipline = errors.New("unknown discipline")

// Discipline names a scientific discipline with its own MIDS mapping. It is
// an open string key; Disciplines lists the ones shipped with the tool.
type Discipline string

// Biology is currently the only discipline with a published mapping.
const Biology Discipline = "biology"

// Disciplines returns the disciplines shipped with the tool.
func Disciplines() []Discipline {
	return []Discipline{Biology}
}

// ParseDiscipline returns the shipped discipline called name.
func ParseDiscipline(name string) (Discipline, error) {
	for _, d := range Disciplines() {
		if string(d) == name {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrUnknownDiscipline, name)
}

func (d Discipline) String() string {
	return string(d)
}
