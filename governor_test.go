package genvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGovernorCeiling(t *testing.T) {
	g := NewGovernor(3)
	assert.True(t, g.Visit())
	assert.True(t, g.Visit())
	assert.False(t, g.Exhausted())
	assert.True(t, g.Visit())
	assert.False(t, g.Visit())
	assert.True(t, g.Exhausted())
	assert.True(t, g.CeilingHit())
	assert.Equal(t, 3, g.Visits())
	assert.Equal(t, 3, g.Count())
}

func TestGovernorAdd(t *testing.T) {
	g := NewGovernor(5)
	g.Visit()
	g.Add(4)
	assert.True(t, g.Exhausted())
	assert.False(t, g.Visit())
	assert.Equal(t, 1, g.Visits())
	assert.Equal(t, 5, g.Count())
}

func TestGovernorReset(t *testing.T) {
	g := NewGovernor(1)
	g.Visit()
	g.Visit()
	g.Reset()
	assert.Zero(t, g.Count())
	assert.Zero(t, g.Visits())
	assert.False(t, g.CeilingHit())
	assert.True(t, g.Visit())
}

func TestGovernorDefaultCeiling(t *testing.T) {
	assert.Equal(t, DefaultRecursionCeiling, NewGovernor(0).Ceiling())
	assert.Equal(t, DefaultRecursionCeiling, NewGovernor(-1).Ceiling())
	assert.Equal(t, 10000, DefaultRecursionCeiling)
}
