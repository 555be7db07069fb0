package report

import (
	"fmt"
	"math"

	"github.com/de-tools/astro-atlas/pkg/astro/dignity"
	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

const noPlanetsBody = "No planetary data available for this chart."

// Options configures the default renderers.
type Options struct {
	// Gender drives the Kua calculation; defaults to male.
	Gender fengshui.Gender
	// Seed is mixed into the per-chart seed of the vedic ascendant picker.
	Seed uint64
}

// gated returns the section built by build, or a locked placeholder with the
// same title when the section is premium-only and the report is not premium.
func gated(title string, premiumOnly bool, in Input, build func() domain.ReportSection) domain.ReportSection {
	if premiumOnly && !in.Premium {
		return domain.ReportSection{
			Title:  title,
			Body:   "Upgrade to premium to unlock this section.",
			Locked: true,
		}
	}
	s := build()
	s.Title = title
	return s
}

func formatPosition(sign string, deg float64) string {
	whole := math.Floor(deg)
	minutes := math.Floor((deg - whole) * 60)
	return fmt.Sprintf("%s %d°%02d'", sign, int(whole), int(minutes))
}

func formatPlanet(p domain.Planet) string {
	return fmt.Sprintf("%s %d°%02d'", p.Sign, int(p.Degree), int(p.Minute))
}

func houseUnit(house int) string {
	if house <= 0 {
		return ""
	}
	return fmt.Sprintf("house %d", house)
}

// dignitySection is shared by the western and hellenistic renderers.
func dignitySection(chart domain.BirthChart) domain.ReportSection {
	s := domain.ReportSection{Summary: map[string]interface{}{}}
	counts := map[dignity.Dignity]int{}
	for _, p := range chart.Planets {
		if !dignity.Classical(p.Name) {
			continue
		}
		d := dignity.Of(p.Name, p.Sign)
		counts[d]++
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        p.Name,
			Value:       string(d),
			Description: fmt.Sprintf("%s in %s", p.Name, p.Sign),
		})
	}
	if len(s.Details) == 0 {
		s.Body = noPlanetsBody
		return s
	}
	for d, n := range counts {
		s.Summary[string(d)] = n
	}
	return s
}
