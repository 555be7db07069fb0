package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

const DateLayout = "2006-01-02"

type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (*TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return nil, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

type Location struct {
	Latitude  float64
	Longitude float64
	Timezone  string
	City      string
	Country   string
}

type Planet struct {
	Name      string
	Sign      string
	Degree    float64
	Minute    float64
	Second    float64
	House     int
	Nakshatra string
}

// Longitude is the absolute ecliptic position of the planet in [0, 360).
func (p Planet) Longitude() float64 {
	return zodiac.Longitude(p.Sign, p.Degree, p.Minute, p.Second)
}

type House struct {
	Number int
	Sign   string
}

type Aspect struct {
	Planet1 string
	Planet2 string
	Aspect  string
	Orb     float64
}

// BirthChart is the read-only input to every calculator.
type BirthChart struct {
	ID        string
	Name      string
	BirthDate time.Time
	BirthTime *TimeOfDay
	Location  *Location
	Planets   []Planet
	Houses    []House
	Aspects   []Aspect
}

// Is reports whether the body is called name, ignoring case and
// surrounding space.
func (p Planet) Is(name string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), name)
}

// Planet returns the named body, if the chart has it. Names match without
// regard to case.
func (c BirthChart) Planet(name string) (Planet, bool) {
	for _, p := range c.Planets {
		if p.Is(name) {
			return p, true
		}
	}
	return Planet{}, false
}

// AscendantSign is the sign on the first house cusp, or an "Ascendant"
// entry in Planets. Empty when neither is present.
func (c BirthChart) AscendantSign() string {
	for _, h := range c.Houses {
		if h.Number == 1 {
			return h.Sign
		}
	}
	if p, ok := c.Planet("Ascendant"); ok {
		return p.Sign
	}
	return ""
}

// BirthHour returns the hour of birth, nil when the time is unknown.
func (c BirthChart) BirthHour() *int {
	if c.BirthTime == nil {
		return nil
	}
	h := c.BirthTime.Hour
	return &h
}

// Positions maps every planet name to its absolute longitude.
func (c BirthChart) Positions() map[string]float64 {
	pos := make(map[string]float64, len(c.Planets))
	for _, p := range c.Planets {
		pos[p.Name] = p.Longitude()
	}
	return pos
}
