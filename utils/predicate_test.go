package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	assert.True(t, Between(0, 0, 3))
	assert.True(t, Between(0, 3, 3))
	assert.False(t, Between(0, 4, 3))
	assert.False(t, Between(0, -1, 3))
	assert.True(t, Between("a", "b", "c"))
}
