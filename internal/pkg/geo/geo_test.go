package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceZero(t *testing.T) {
	d := HaversineDistance(20.6597, -103.3496, 20.6597, -103.3496)
	assert.Zero(t, d, "distance to self must be zero")
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(20.6597, -103.3496, 19.4326, -99.1332)
	b := HaversineDistance(19.4326, -99.1332, 20.6597, -103.3496)
	assert.Equal(t, a, b, "distance must be symmetric")
}

func TestHaversineDistanceNearbyPoint(t *testing.T) {
	// One ten-thousandth of a degree in both axes is on the order of
	// fifteen meters at this latitude.
	d := HaversineDistance(20.6597, -103.3496, 20.6598, -103.3497)
	assert.Greater(t, d, 5.0)
	assert.Less(t, d, 25.0, "want a small two-digit meter value")
}

func TestRoundMeters(t *testing.T) {
	cases := []struct {
		input float64
		want  float64
	}{
		{14.23456, 14.23},
		{14.235, 14.24},
		{0, 0},
		{99.999, 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundMeters(c.input), "RoundMeters(%v)", c.input)
	}
}
