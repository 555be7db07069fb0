package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/timelords"
	"github.com/de-tools/astro-atlas/pkg/astro/vedic"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type vedicRenderer struct {
	seed uint64
}

func NewVedicRenderer(seed uint64) Renderer {
	return vedicRenderer{seed: seed}
}

func (r vedicRenderer) Render(ctx context.Context, in Input) []domain.ReportSection {
	chart := in.Chart
	return []domain.ReportSection{
		gated("Nakshatras", false, in, func() domain.ReportSection { return r.nakshatraSection(ctx, chart) }),
		gated("Vimshottari Dasha", true, in, func() domain.ReportSection { return dashaSection(chart, in.Now) }),
	}
}

// PlanetNakshatra is the nakshatra of one body in a chart.
type PlanetNakshatra struct {
	Planet    string
	Placement vedic.Placement
}

// ChartNakshatras holds the rising nakshatra and those of the other bodies.
type ChartNakshatras struct {
	Ascendant vedic.Placement
	// FromChart is false when the chart had no Ascendant body and the rising
	// nakshatra was picked.
	FromChart bool
	Planets   []PlanetNakshatra
}

// Nakshatras resolves every nakshatra of a chart. Without an Ascendant body
// the rising nakshatra comes from a picker seeded by the birth date and seed.
func Nakshatras(chart domain.BirthChart, seed uint64) ChartNakshatras {
	var ascLon *float64
	if asc, ok := chart.Planet("Ascendant"); ok {
		lon := asc.Longitude()
		ascLon = &lon
	}

	out := ChartNakshatras{
		Ascendant: vedic.AscendantNakshatra(ascLon, vedic.NewPicker(chart.BirthDate, seed)),
		FromChart: ascLon != nil,
		Planets:   make([]PlanetNakshatra, 0, len(chart.Planets)),
	}
	for _, p := range chart.Planets {
		if p.Is("Ascendant") {
			continue
		}
		out.Planets = append(out.Planets, PlanetNakshatra{
			Planet:    p.Name,
			Placement: vedic.Resolve(p.Nakshatra, p.Longitude()),
		})
	}
	return out
}

func (r vedicRenderer) nakshatraSection(ctx context.Context, chart domain.BirthChart) domain.ReportSection {
	s := domain.ReportSection{Summary: map[string]interface{}{}}

	nak := Nakshatras(chart, r.seed)
	if !nak.FromChart {
		zerolog.Ctx(ctx).Debug().
			Str("chart", chart.ID).
			Msg("no ascendant position, picked seeded ascendant nakshatra")
	}
	s.Summary["ascendant_nakshatra"] = nak.Ascendant.Name
	s.Summary["ascendant_derived"] = nak.FromChart

	if len(chart.Planets) == 0 {
		s.Body = noPlanetsBody
		return s
	}
	for _, pn := range nak.Planets {
		n := pn.Placement
		unit := ""
		if n.Pada > 0 {
			unit = fmt.Sprintf("pada %d", n.Pada)
		}
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        pn.Planet,
			Value:       n.Name,
			Unit:        unit,
			Description: fmt.Sprintf("ruled by %s, deity %s, symbol %s", n.Lord, n.Deity, n.Symbol),
		})
	}
	return s
}

// MoonLord is the lord of the Moon's nakshatra, which opens the dasha
// sequence. Empty when the chart has no Moon.
func MoonLord(chart domain.BirthChart) string {
	moon, ok := chart.Planet("Moon")
	if !ok {
		return ""
	}
	return vedic.Resolve(moon.Nakshatra, moon.Longitude()).Lord
}

func dashaSection(chart domain.BirthChart, now time.Time) domain.ReportSection {
	lord := MoonLord(chart)
	if lord == "" {
		return domain.ReportSection{Body: "The Moon's position is required to time the dashas."}
	}

	age := timelords.Age(chart.BirthDate, now)
	cur := vedic.Current(lord, age)
	s := domain.ReportSection{
		Summary: map[string]interface{}{
			"mahadasha": cur.Lord,
			"remaining": cur.Remaining,
			"age":       age,
		},
	}
	for _, d := range vedic.Sequence(lord) {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        d.Lord,
			Value:       d.Years,
			Unit:        "years",
			Description: fmt.Sprintf("ages %d-%d", d.Start, d.End),
		})
	}
	return s
}
