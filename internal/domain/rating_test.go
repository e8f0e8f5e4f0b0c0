package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"minimum", 1.0, false},
		{"maximum", 5.0, false},
		{"half step", 3.5, false},
		{"below minimum", 0.5, true},
		{"zero", 0, true},
		{"above maximum", 5.5, true},
		{"off-grid value", 3.3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRating(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, r.Value)
		})
	}
}

func TestRatingServiceScaleRoundTrip(t *testing.T) {
	for v := RatingMin; v <= RatingMax; v += RatingStep {
		r, err := NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v*2, r.ToServiceScale())
		assert.Equal(t, r, RatingFromServiceScale(r.ToServiceScale()))
	}
}

func TestRatingString(t *testing.T) {
	r, err := NewRating(4)
	require.NoError(t, err)
	assert.Equal(t, "4", r.String())

	r, err = NewRating(3.5)
	require.NoError(t, err)
	assert.Equal(t, "3.5", r.String())
}
