package vedic

import (
	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

type Mahadasha struct {
	Lord  string
	Years int
	Start int
	End   int
}

// Vimshottari order and lengths; 120 years in total.
var vimshottari = []Mahadasha{
	{Lord: "Ketu", Years: 7},
	{Lord: "Venus", Years: 20},
	{Lord: "Sun", Years: 6},
	{Lord: "Moon", Years: 10},
	{Lord: "Mars", Years: 7},
	{Lord: "Rahu", Years: 18},
	{Lord: "Jupiter", Years: 16},
	{Lord: "Saturn", Years: 19},
	{Lord: "Mercury", Years: 17},
}

const CycleYears = 120

// Sequence returns the nine mahadashas starting from the given lord, normally
// the lord of the Moon's nakshatra. The dasha balance at birth is not
// modelled: the first period starts in full at age 0. An unknown lord starts
// the sequence at Ketu.
func Sequence(lord string) []Mahadasha {
	start := 0
	for i, d := range vimshottari {
		if d.Lord == lord {
			start = i
			break
		}
	}

	out := make([]Mahadasha, 0, len(vimshottari))
	age := 0
	for i := range vimshottari {
		d := vimshottari[zodiac.Mod(start+i, len(vimshottari))]
		d.Start = age
		d.End = age + d.Years
		age = d.End
		out = append(out, d)
	}
	return out
}

type CurrentDasha struct {
	Mahadasha
	Age       int
	Remaining int
	Cycle     int
}

// Current returns the mahadasha running at an age. Ages past 120 continue
// into the next cycle.
func Current(lord string, age int) CurrentDasha {
	if age < 0 {
		age = 0
	}
	seq := Sequence(lord)
	inCycle := age % CycleYears
	for _, d := range seq {
		if inCycle >= d.Start && inCycle < d.End {
			return CurrentDasha{
				Mahadasha: d,
				Age:       age,
				Remaining: d.End - inCycle,
				Cycle:     age/CycleYears + 1,
			}
		}
	}
	// unreachable: the sequence covers [0, 120)
	return CurrentDasha{Mahadasha: seq[0], Age: age, Cycle: 1}
}
