package model

import (
	"errors"
	"fmt"

	"mids/utils"
)

//go:generate go tool stringer -type=Level -linecomment -output=level_string.go

// ErrUnknownLevel is returned when a level name is not one of the canonical
// MIDS level names.
var ErrUnknownLevel = errors.New("unknown MIDS level")

// Level is a MIDS level. Levels are totally ordered: MIDS0 < MIDS1 < MIDS2 < MIDS3.
type Level int

const (
	MIDS0 Level = iota // mids0
	MIDS1              // mids1
	MIDS2              // mids2
	MIDS3              // mids3

	// LevelCount is the number of MIDS levels.
	LevelCount = int(iota)
)

// Levels returns every MIDS level in ascending order.
func Levels() []Level {
	return []Level{MIDS0, MIDS1, MIDS2, MIDS3}
}

// IsValid reports whether l is one of the four MIDS levels.
func (l Level) IsValid() bool {
	return utils.Between(MIDS0, l, MIDS3)
}

// ParseLevel parses a canonical level name (mids0..mids3).
func ParseLevel(name string) (Level, error) {
	for _, l := range Levels() {
		if l.String() == name {
			return l, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownLevel, name)
}

// LevelNames returns the canonical level names in ascending order.
func LevelNames() []string {
	names := make([]string, 0, LevelCount)
	for _, l := range Levels() {
		names = append(names, l.String())
	}

	return names
}
