// Package zodiac holds the static sign tables shared by every calculator:
// sign order, classical element and modality, domicile rulers and degree
// normalization.
package zodiac

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Unknown = "Unknown"

	degreesPerSign = 30.0
	fullCircle     = 360.0
)

type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

type Modality string

const (
	Cardinal Modality = "Cardinal"
	Fixed    Modality = "Fixed"
	Mutable  Modality = "Mutable"
)

// Signs in zodiacal order, Aries at 0°.
var Signs = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var elements = map[string]Element{
	"Aries": Fire, "Leo": Fire, "Sagittarius": Fire,
	"Taurus": Earth, "Virgo": Earth, "Capricorn": Earth,
	"Gemini": Air, "Libra": Air, "Aquarius": Air,
	"Cancer": Water, "Scorpio": Water, "Pisces": Water,
}

var modalities = map[string]Modality{
	"Aries": Cardinal, "Cancer": Cardinal, "Libra": Cardinal, "Capricorn": Cardinal,
	"Taurus": Fixed, "Leo": Fixed, "Scorpio": Fixed, "Aquarius": Fixed,
	"Gemini": Mutable, "Virgo": Mutable, "Sagittarius": Mutable, "Pisces": Mutable,
}

// classical (pre-modern) domicile rulers
var rulers = map[string]string{
	"Aries": "Mars", "Taurus": "Venus", "Gemini": "Mercury", "Cancer": "Moon",
	"Leo": "Sun", "Virgo": "Mercury", "Libra": "Venus", "Scorpio": "Mars",
	"Sagittarius": "Jupiter", "Capricorn": "Saturn", "Aquarius": "Saturn", "Pisces": "Jupiter",
}

// ParseSign canonicalizes a sign name ("  scorpio" -> "Scorpio"). The second
// return value reports whether the name is one of the twelve signs.
func ParseSign(name string) (string, bool) {
	canonical := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name)))
	_, ok := elements[canonical]
	return canonical, ok
}

// ElementOf returns the classical element of a sign, or Unknown.
func ElementOf(sign string) Element {
	s, _ := ParseSign(sign)
	if e, ok := elements[s]; ok {
		return e
	}
	return Unknown
}

// ModalityOf returns the modality of a sign, or Unknown.
func ModalityOf(sign string) Modality {
	s, _ := ParseSign(sign)
	if m, ok := modalities[s]; ok {
		return m
	}
	return Unknown
}

// Ruler returns the classical domicile ruler of a sign, or Unknown.
func Ruler(sign string) string {
	s, _ := ParseSign(sign)
	if r, ok := rulers[s]; ok {
		return r
	}
	return Unknown
}

// Index returns the zero-based position of a sign (Aries = 0), or -1.
func Index(sign string) int {
	s, _ := ParseSign(sign)
	for i, name := range Signs {
		if name == s {
			return i
		}
	}
	return -1
}

// SignFrom returns the sign n places after start, wrapping around the circle.
func SignFrom(start string, n int) string {
	idx := Index(start)
	if idx < 0 {
		idx = 0
	}
	return Signs[Mod(idx+n, len(Signs))]
}

// Normalize wraps a degree into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, fullCircle)
	if deg < 0 {
		deg += fullCircle
	}
	// -0.0 and values that round up to 360 after the shift
	if deg >= fullCircle || deg == 0 {
		return 0
	}
	return deg
}

// SignAt returns the sign occupying an absolute longitude.
func SignAt(deg float64) string {
	return Signs[int(Normalize(deg)/degreesPerSign)]
}

// HouseAt is the whole-sign style house counted from 0° Aries, not from the
// ascendant.
func HouseAt(deg float64) int {
	return int(Normalize(deg)/degreesPerSign) + 1
}

// DegreeInSign returns the offset of a longitude inside its sign.
func DegreeInSign(deg float64) float64 {
	return math.Mod(Normalize(deg), degreesPerSign)
}

// Longitude converts a sign-relative position into an absolute longitude.
// Unknown signs contribute no offset.
func Longitude(sign string, degree, minute, second float64) float64 {
	offset := 0.0
	if idx := Index(sign); idx >= 0 {
		offset = float64(idx) * degreesPerSign
	}
	return Normalize(offset + degree + minute/60 + second/3600)
}

// Mod is the Euclidean modulo, always in [0, n).
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
