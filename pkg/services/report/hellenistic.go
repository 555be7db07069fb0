package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/lots"
	"github.com/de-tools/astro-atlas/pkg/astro/timelords"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

type hellenisticRenderer struct{}

func NewHellenisticRenderer() Renderer {
	return hellenisticRenderer{}
}

func (hellenisticRenderer) Render(_ context.Context, in Input) []domain.ReportSection {
	chart := in.Chart
	day := IsDayChart(chart)
	computed := lots.ComputeAll(chart.Positions(), day)

	return []domain.ReportSection{
		gated("Sect", false, in, func() domain.ReportSection { return sectSection(day) }),
		gated("Lots", false, in, func() domain.ReportSection { return lotsSection(computed) }),
		gated("Dignities", false, in, func() domain.ReportSection { return dignitySection(chart) }),
		gated("Time Lords", true, in, func() domain.ReportSection {
			return timeLordsSection(chart, in.Now, FortuneSign(chart))
		}),
	}
}

// IsDayChart decides sect from the Sun's house; a chart without a Sun is
// treated as a day chart.
func IsDayChart(chart domain.BirthChart) bool {
	sun, ok := chart.Planet("Sun")
	if !ok {
		return true
	}
	return lots.IsDayChart(sun.House)
}

// FortuneSign is the sign of the Lot of Fortune, the starting point of
// zodiacal releasing.
func FortuneSign(chart domain.BirthChart) string {
	def, _ := lots.Find("Fortune")
	return lots.Compute(def, chart.Positions(), IsDayChart(chart)).Sign
}

func sectSection(day bool) domain.ReportSection {
	sect, light := "Night", "Moon"
	if day {
		sect, light = "Day", "Sun"
	}
	return domain.ReportSection{
		Summary: map[string]interface{}{"sect": sect, "sect_light": light},
	}
}

func lotsSection(computed []lots.Lot) domain.ReportSection {
	s := domain.ReportSection{}
	for _, l := range computed {
		desc := fmt.Sprintf("%s: %s", l.Description, l.Formula)
		if len(l.Unresolved) > 0 {
			desc += fmt.Sprintf(" (missing %v)", l.Unresolved)
		}
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        "Lot of " + l.Name,
			Value:       formatPosition(l.Sign, l.DegreeInSign),
			Unit:        houseUnit(l.House),
			Description: desc,
		})
	}
	return s
}

func timeLordsSection(chart domain.BirthChart, now time.Time, fortune string) domain.ReportSection {
	age := timelords.Age(chart.BirthDate, now)
	dec := timelords.Decennial(age)
	prof := timelords.Profect(age, chart.AscendantSign())
	zr := timelords.Release(fortune, age)

	lordOfYear := prof.Ruler
	if prof.SignRuler != "" {
		lordOfYear = prof.SignRuler
	}

	return domain.ReportSection{
		Summary: map[string]interface{}{
			"age":          age,
			"lord_of_year": lordOfYear,
		},
		Details: []domain.ReportDetail{
			{
				Name:        "Decennial lord",
				Value:       dec.Planet,
				Unit:        periodUnit(dec),
				Description: fmt.Sprintf("%d years elapsed, %d remaining", dec.Elapsed, dec.Remaining),
			},
			{
				Name:        "Annual profection",
				Value:       fmt.Sprintf("House %d", prof.House),
				Unit:        lordOfYear,
				Description: prof.Theme,
			},
			{
				Name:        "Zodiacal releasing",
				Value:       fmt.Sprintf("%s (%s)", zr.Sign, zr.Planet),
				Unit:        periodUnit(zr),
				Description: fmt.Sprintf("released from Fortune in %s, %d years remaining", fortune, zr.Remaining),
			},
		},
	}
}

func periodUnit(c timelords.Current) string {
	if !c.InRange {
		return "beyond cycle"
	}
	return fmt.Sprintf("ages %d-%d", c.Start, c.End)
}
