package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrder(t *testing.T) {
	assert.Equal(t, []Level{MIDS0, MIDS1, MIDS2, MIDS3}, Levels())
	assert.Equal(t, []string{"mids0", "mids1", "mids2", "mids3"}, LevelNames())
	assert.Len(t, Levels(), LevelCount)

	levels := Levels()
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
		assert.True(t, got.IsValid())
	}

	for _, bad := range []string{"", "mids4", "MIDS0", " mids0", "0"} {
		_, err := ParseLevel(bad)
		assert.ErrorIs(t, err, ErrUnknownLevel, bad)
	}
}

func TestLevelStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Level(7)", Level(7).String())
	assert.False(t, Level(7).IsValid())
	assert.False(t, Level(-1).IsValid())

	for _, l := range Levels() {
		assert.True(t, l.IsValid(), l.String())
	}
}

func TestParseDiscipline(t *testing.T) {
	d, err := ParseDiscipline("biology")
	require.NoError(t, err)
	assert.Equal(t, Biology, d)
	assert.Equal(t, "biology", d.String())

	_, err = ParseDiscipline("geology")
	assert.ErrorIs(t, err, ErrUnknownDiscipline)
}
