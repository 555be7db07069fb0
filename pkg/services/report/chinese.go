package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/astro-atlas/pkg/astro/bazi"
	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

type chineseRenderer struct {
	gender fengshui.Gender
}

func NewChineseRenderer(gender fengshui.Gender) Renderer {
	if gender == "" {
		gender = fengshui.GenderMale
	}
	return chineseRenderer{gender: gender}
}

func (r chineseRenderer) Render(_ context.Context, in Input) []domain.ReportSection {
	chart := in.Chart
	return []domain.ReportSection{
		gated("Four Pillars", false, in, func() domain.ReportSection { return pillarsSection(chart) }),
		gated("Feng Shui Kua", true, in, func() domain.ReportSection { return kuaSection(chart, r.gender) }),
	}
}

func pillarsSection(chart domain.BirthChart) domain.ReportSection {
	fp := bazi.Derive(chart.BirthDate, chart.BirthHour())
	s := domain.ReportSection{
		Summary: map[string]interface{}{
			"animal":       fp.Year.Animal,
			"year_element": fp.YearElement,
			"hour_known":   fp.HourKnown,
		},
	}
	for _, p := range fp.Ordered() {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:  p.Name,
			Value: p.Stem + p.Branch,
			Description: fmt.Sprintf("%s %s, %s %s",
				p.StemRomanized, p.BranchRomanized, p.Animal, p.AnimalChinese),
		})
	}
	return s
}

func kuaSection(chart domain.BirthChart, gender fengshui.Gender) domain.ReportSection {
	p := fengshui.ProfileFor(chart.BirthDate.Year(), gender)
	return domain.ReportSection{
		Summary: map[string]interface{}{
			"kua":     p.Number,
			"element": p.Element,
			"group":   string(p.Group),
		},
		Details: []domain.ReportDetail{
			{Name: "Favorable directions", Value: strings.Join(p.Favorable, ", ")},
			{Name: "Unfavorable directions", Value: strings.Join(p.Unfavorable, ", ")},
			{Name: "Colors", Value: strings.Join(p.Colors, ", ")},
		},
		Body: p.Personality,
	}
}
