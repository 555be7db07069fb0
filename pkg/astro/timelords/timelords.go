// Package timelords implements three Hellenistic period systems keyed by
// age: decennial lords, annual profections and zodiacal releasing.
//
// Every function takes the age (or "now") explicitly; nothing here reads the
// wall clock.
package timelords

import (
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

// Age returns the number of whole years between birth and now. A birth date
// after now yields 0.
func Age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// Period is one time-lord interval, in years of age: [Start, End).
type Period struct {
	Planet string
	Sign   string
	Years  int
	Start  int
	End    int
}

func (p Period) Contains(age int) bool {
	return age >= p.Start && age < p.End
}

// Current is the period in force at an age. InRange is false when the age
// lies beyond the last period and Period holds the first entry instead.
type Current struct {
	Period
	Age       int
	Elapsed   int
	Remaining int
	InRange   bool
}

func locate(periods []Period, age int) Current {
	for _, p := range periods {
		if p.Contains(age) {
			return Current{
				Period:    p,
				Age:       age,
				Elapsed:   age - p.Start,
				Remaining: p.End - age,
				InRange:   true,
			}
		}
	}
	first := periods[0]
	return Current{Period: first, Age: age, Remaining: first.Years}
}

func cumulative(seq []Period) []Period {
	out := make([]Period, len(seq))
	start := 0
	for i, p := range seq {
		p.Start = start
		p.End = start + p.Years
		start = p.End
		out[i] = p
	}
	return out
}

var decennials = cumulative([]Period{
	{Planet: "Mars", Years: 15},
	{Planet: "Sun", Years: 19},
	{Planet: "Venus", Years: 8},
	{Planet: "Mercury", Years: 20},
	{Planet: "Moon", Years: 25},
	{Planet: "Saturn", Years: 30},
})

// Decennials returns the decennial sequence (Mars 0–15 through Saturn 87–117).
func Decennials() []Period {
	return append([]Period(nil), decennials...)
}

// Decennial returns the decennial lord for an age. Ages of 117 and over fall
// back to the first entry with InRange false.
func Decennial(age int) Current {
	return locate(decennials, age)
}

var profectionThemes = [12]string{
	"Self, body and new beginnings",
	"Resources, income and values",
	"Communication, siblings and short journeys",
	"Home, family and roots",
	"Creativity, pleasure and children",
	"Health, work and daily routine",
	"Partnerships and open relationships",
	"Transformation and shared resources",
	"Philosophy, travel and higher learning",
	"Career, reputation and public life",
	"Friends, community and hopes",
	"Solitude, spirituality and hidden matters",
}

type Profection struct {
	Age   int
	House int
	Theme string
	// Ruler is the natural-zodiac ruler of the house (house 1 = Aries).
	Ruler string
	// Sign and SignRuler are set when the ascendant sign is known: the sign
	// profected to this year and its domicile lord, the lord of the year.
	Sign      string
	SignRuler string
}

// Profect returns the annual profection for an age: house (age mod 12) + 1.
// ascendant may be empty.
func Profect(age int, ascendant string) Profection {
	idx := zodiac.Mod(age, 12)
	p := Profection{
		Age:   age,
		House: idx + 1,
		Theme: profectionThemes[idx],
		Ruler: zodiac.Ruler(zodiac.Signs[idx]),
	}
	if _, ok := zodiac.ParseSign(ascendant); ok {
		p.Sign = zodiac.SignFrom(ascendant, idx)
		p.SignRuler = zodiac.Ruler(p.Sign)
	}
	return p
}

// Minor years of each sign's ruler; 208 years over the full circle.
var releasingYears = map[string]int{
	"Aries": 15, "Taurus": 8, "Gemini": 20, "Cancer": 25,
	"Leo": 19, "Virgo": 20, "Libra": 8, "Scorpio": 15,
	"Sagittarius": 12, "Capricorn": 27, "Aquarius": 27, "Pisces": 12,
}

// DefaultReleasingSign is used when the Lot of Fortune sign is unknown.
const DefaultReleasingSign = "Aries"

// ReleasingPeriods returns the twelve level-1 periods starting from the given
// sign, normally the sign of the Lot of Fortune.
func ReleasingPeriods(start string) []Period {
	if _, ok := zodiac.ParseSign(start); !ok {
		start = DefaultReleasingSign
	}
	seq := make([]Period, 0, len(zodiac.Signs))
	for i := range zodiac.Signs {
		sign := zodiac.SignFrom(start, i)
		seq = append(seq, Period{
			Sign:   sign,
			Planet: zodiac.Ruler(sign),
			Years:  releasingYears[sign],
		})
	}
	return cumulative(seq)
}

// Release returns the releasing period in force at an age. Ages beyond the
// 208-year cycle fall back to the first period with InRange false.
func Release(start string, age int) Current {
	return locate(ReleasingPeriods(start), age)
}
