package interact

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(name string, x, z float64, order int) Candidate {
	return Candidate{Name: name, Position: mgl64.Vec3{x, 0, z}, Materialized: true, Order: order}
}

func TestNearestWinsRegardlessOfOrder(t *testing.T) {
	cands := []Candidate{
		at("three", 3, 0, 0),
		at("two", 0, 2, 1),
		at("five", -5, 0, 2),
	}
	got, ok := Nearest(mgl64.Vec3{}, cands, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "two", got.Name)
}

func TestNearestNothingInRange(t *testing.T) {
	cands := []Candidate{at("four", 4, 0, 0), at("far", 0, 9, 1)}
	_, ok := Nearest(mgl64.Vec3{}, cands, DefaultThreshold)
	assert.False(t, ok)

	_, ok = Nearest(mgl64.Vec3{}, nil, DefaultThreshold)
	assert.False(t, ok)
}

func TestNearestThresholdIsExclusive(t *testing.T) {
	_, ok := Nearest(mgl64.Vec3{}, []Candidate{at("edge", 3.5, 0, 0)}, DefaultThreshold)
	assert.False(t, ok)

	got, ok := Nearest(mgl64.Vec3{}, []Candidate{at("inside", 3.49, 0, 0)}, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "inside", got.Name)
}

func TestNearestSkipsUnmaterialized(t *testing.T) {
	loading := at("loading", 1, 0, 0)
	loading.Materialized = false
	cands := []Candidate{loading, at("ready", 0, 3, 1)}

	got, ok := Nearest(mgl64.Vec3{}, cands, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "ready", got.Name)

	_, ok = Nearest(mgl64.Vec3{}, []Candidate{loading}, DefaultThreshold)
	assert.False(t, ok)
}

func TestNearestTieBreak(t *testing.T) {
	t.Run("lower_order_wins", func(t *testing.T) {
		cands := []Candidate{at("late", 2, 0, 5), at("early", -2, 0, 1)}
		got, ok := Nearest(mgl64.Vec3{}, cands, DefaultThreshold)
		require.True(t, ok)
		assert.Equal(t, "early", got.Name)
	})
	t.Run("equal_order_keeps_first", func(t *testing.T) {
		cands := []Candidate{at("first", 0, 2, 0), at("second", 0, -2, 0)}
		got, ok := Nearest(mgl64.Vec3{}, cands, DefaultThreshold)
		require.True(t, ok)
		assert.Equal(t, "first", got.Name)
	})
}

func TestNearestUsesHeight(t *testing.T) {
	high := Candidate{Name: "tower", Position: mgl64.Vec3{1, 5, 0}, Materialized: true}
	_, ok := Nearest(mgl64.Vec3{}, []Candidate{high}, DefaultThreshold)
	assert.False(t, ok)
}
