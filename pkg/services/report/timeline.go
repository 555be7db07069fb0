package report

import (
	"fmt"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/timelords"
	"github.com/de-tools/astro-atlas/pkg/astro/vedic"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

// BuildTimeline collects decennials, zodiacal releasing from the Lot of
// Fortune and, when the chart has a Moon, the Vimshottari dashas.
func BuildTimeline(chart domain.BirthChart, now time.Time) domain.Timeline {
	t := domain.Timeline{
		Subject: subject(chart),
		Age:     timelords.Age(chart.BirthDate, now),
	}

	dec := domain.TimelineTrack{Name: "Decennials"}
	for _, p := range timelords.Decennials() {
		dec.Periods = append(dec.Periods, domain.TimelinePeriod{Label: p.Planet, Start: p.Start, End: p.End})
	}

	fortune := FortuneSign(chart)
	zr := domain.TimelineTrack{Name: fmt.Sprintf("Releasing from %s", fortune)}
	for _, p := range timelords.ReleasingPeriods(fortune) {
		zr.Periods = append(zr.Periods, domain.TimelinePeriod{Label: p.Sign, Start: p.Start, End: p.End})
	}
	t.Tracks = append(t.Tracks, dec, zr)

	if lord := MoonLord(chart); lord != "" {
		dasha := domain.TimelineTrack{Name: "Vimshottari"}
		for _, d := range vedic.Sequence(lord) {
			dasha.Periods = append(dasha.Periods, domain.TimelinePeriod{Label: d.Lord, Start: d.Start, End: d.End})
		}
		t.Tracks = append(t.Tracks, dasha)
	}
	return t
}
