package zodiac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementAndModality(t *testing.T) {
	tests := []struct {
		sign     string
		element  Element
		modality Modality
	}{
		{"Scorpio", Water, Fixed},
		{"Capricorn", Earth, Cardinal},
		{"Gemini", Air, Mutable},
		{"leo", Fire, Fixed},
		{"  PISCES ", Water, Mutable},
		{"Ophiuchus", Unknown, Unknown},
		{"", Unknown, Unknown},
	}

	for _, tc := range tests {
		t.Run(tc.sign, func(t *testing.T) {
			assert.Equal(t, tc.element, ElementOf(tc.sign))
			assert.Equal(t, tc.modality, ModalityOf(tc.sign))
		})
	}
}

func TestEverySignHasTableEntries(t *testing.T) {
	for _, s := range Signs {
		assert.NotEqual(t, Element(Unknown), ElementOf(s), s)
		assert.NotEqual(t, Modality(Unknown), ModalityOf(s), s)
		assert.NotEqual(t, Unknown, Ruler(s), s)
	}
}

func TestParseSign(t *testing.T) {
	s, ok := ParseSign("  sagittarius")
	assert.True(t, ok)
	assert.Equal(t, "Sagittarius", s)

	_, ok = ParseSign("Dragon")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{-45, 315},
		{400, 40},
		{360, 0},
		{0, 0},
		{-720, 0},
		{359.5, 359.5},
		{-0.5, 359.5},
	}

	for _, tc := range tests {
		got := Normalize(tc.in)
		assert.InDelta(t, tc.out, got, 1e-9, "Normalize(%v)", tc.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestSignAtAndHouseAt(t *testing.T) {
	assert.Equal(t, "Aries", SignAt(0))
	assert.Equal(t, "Taurus", SignAt(30))
	assert.Equal(t, "Pisces", SignAt(-1))
	assert.Equal(t, "Aries", SignAt(360))
	assert.Equal(t, 1, HouseAt(10))
	assert.Equal(t, 12, HouseAt(345))
	assert.InDelta(t, 15.0, DegreeInSign(225), 1e-9)
}

func TestLongitude(t *testing.T) {
	assert.InDelta(t, 105.5, Longitude("Cancer", 15, 30, 0), 1e-9)
	assert.InDelta(t, 12.0, Longitude("nowhere", 12, 0, 0), 1e-9)
}

func TestSignFrom(t *testing.T) {
	assert.Equal(t, "Aries", SignFrom("Pisces", 1))
	assert.Equal(t, "Leo", SignFrom("Aries", 16))
	assert.Equal(t, "Pisces", SignFrom("Aries", -1))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 6, Mod(-4, 10))
	assert.Equal(t, 0, Mod(12, 12))
	assert.Equal(t, 3, Mod(3, 12))
}
