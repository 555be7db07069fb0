package dignity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	tests := []struct {
		planet, sign string
		want         Dignity
	}{
		{"Sun", "Leo", Domicile},
		{"Sun", "Aries", Exaltation},
		{"Sun", "Aquarius", Detriment},
		{"Sun", "Libra", Fall},
		{"Sun", "Gemini", Neutral},
		{"Mercury", "Virgo", Domicile},
		{"Mercury", "Pisces", Detriment},
		{"Venus", "Pisces", Exaltation},
		{"Mars", "Cancer", Fall},
		{"Saturn", "Leo", Detriment},
		{"moon", "taurus", Exaltation},
		{"Pluto", "Scorpio", Neutral},
		{"", "Leo", Neutral},
		{"Jupiter", "", Neutral},
	}

	for _, tc := range tests {
		t.Run(tc.planet+" in "+tc.sign, func(t *testing.T) {
			assert.Equal(t, tc.want, Of(tc.planet, tc.sign))
		})
	}
}

func TestClassical(t *testing.T) {
	assert.True(t, Classical("saturn"))
	assert.False(t, Classical("Uranus"))
}
