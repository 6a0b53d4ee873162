package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMax(t *testing.T) {
	assert.Equal(t, 3, Max(2, 3))
	assert.Equal(t, 3, Max(3, 2))
	assert.Equal(t, -2, Max(-2, -3))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, 2, Min(3, 2))
	assert.Equal(t, -3, Min(-2, -3))
}
