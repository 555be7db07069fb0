package report

import (
	"context"
	"fmt"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

type westernRenderer struct{}

func NewWesternRenderer() Renderer {
	return westernRenderer{}
}

func (westernRenderer) Render(_ context.Context, in Input) []domain.ReportSection {
	chart := in.Chart
	return []domain.ReportSection{
		gated("Planetary Positions", false, in, func() domain.ReportSection { return positionsSection(chart) }),
		gated("Elements & Modalities", false, in, func() domain.ReportSection { return balanceSection(chart) }),
		gated("Dignities", false, in, func() domain.ReportSection { return dignitySection(chart) }),
		gated("Aspects", true, in, func() domain.ReportSection { return aspectsSection(chart) }),
	}
}

func positionsSection(chart domain.BirthChart) domain.ReportSection {
	s := domain.ReportSection{Summary: map[string]interface{}{"planets": len(chart.Planets)}}
	if len(chart.Planets) == 0 {
		s.Body = noPlanetsBody
		return s
	}
	for _, p := range chart.Planets {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        p.Name,
			Value:       formatPlanet(p),
			Unit:        houseUnit(p.House),
			Description: fmt.Sprintf("%s, %s", zodiac.ElementOf(p.Sign), zodiac.ModalityOf(p.Sign)),
		})
	}
	if asc := chart.AscendantSign(); asc != "" {
		s.Summary["ascendant"] = asc
	}
	return s
}

var (
	elementOrder  = []zodiac.Element{zodiac.Fire, zodiac.Earth, zodiac.Air, zodiac.Water}
	modalityOrder = []zodiac.Modality{zodiac.Cardinal, zodiac.Fixed, zodiac.Mutable}
)

func balanceSection(chart domain.BirthChart) domain.ReportSection {
	s := domain.ReportSection{Summary: map[string]interface{}{}}
	if len(chart.Planets) == 0 {
		s.Body = noPlanetsBody
		return s
	}

	elements := map[zodiac.Element]int{}
	modalities := map[zodiac.Modality]int{}
	for _, p := range chart.Planets {
		elements[zodiac.ElementOf(p.Sign)]++
		modalities[zodiac.ModalityOf(p.Sign)]++
	}

	var dominant zodiac.Element
	for _, e := range elementOrder {
		if elements[e] > elements[dominant] {
			dominant = e
		}
		s.Details = append(s.Details, domain.ReportDetail{Name: string(e), Value: elements[e], Unit: "planets"})
	}
	for _, m := range modalityOrder {
		s.Details = append(s.Details, domain.ReportDetail{Name: string(m), Value: modalities[m], Unit: "planets"})
	}
	if dominant != "" {
		s.Summary["dominant_element"] = string(dominant)
	}
	return s
}

func aspectsSection(chart domain.BirthChart) domain.ReportSection {
	s := domain.ReportSection{Summary: map[string]interface{}{"aspects": len(chart.Aspects)}}
	if len(chart.Aspects) == 0 {
		s.Body = "No aspects recorded for this chart."
		return s
	}
	for _, a := range chart.Aspects {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:  fmt.Sprintf("%s %s %s", a.Planet1, a.Aspect, a.Planet2),
			Value: a.Orb,
			Unit:  "° orb",
		})
	}
	return s
}
