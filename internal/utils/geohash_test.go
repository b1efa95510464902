package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			lat1:      6.9271,
			lng1:      79.8612,
			lat2:      6.9271,
			lng2:      79.8612,
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Colombo Fort to Kandy (approximately)",
			lat1:      6.9344,
			lng1:      79.8428,
			lat2:      7.2906,
			lng2:      80.6337,
			expected:  95.0,
			tolerance: 5.0,
		},
		{
			name:      "One degree of latitude",
			lat1:      0,
			lng1:      0,
			lat2:      1,
			lng2:      0,
			expected:  111.19,
			tolerance: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDistance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohash(6.9271, 79.8612, LocationGeohashPrecision)
	assert.Len(t, hash, 7)
	assert.Equal(t, "tc0z3m1", hash)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(6.9271, 79.8612))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
}
