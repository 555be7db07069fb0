package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

// MapChartApiToDomain validates and converts a chart from the wire format.
func MapChartApiToDomain(c api.BirthChart) (domain.BirthChart, error) {
	birthDate, err := time.Parse(domain.DateLayout, c.BirthDate)
	if err != nil {
		return domain.BirthChart{}, fmt.Errorf("invalid 'birth_date' format. Expected format: YYYY-MM-DD")
	}

	chart := domain.BirthChart{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: birthDate,
	}

	if c.BirthTime != nil && *c.BirthTime != "" {
		chart.BirthTime, err = domain.ParseTimeOfDay(*c.BirthTime)
		if err != nil {
			return domain.BirthChart{}, fmt.Errorf("invalid 'birth_time' format. Expected format: HH:MM")
		}
	}

	if l := c.BirthLocation; l != nil {
		chart.Location = &domain.Location{
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Timezone:  l.Timezone,
			City:      l.City,
			Country:   l.Country,
		}
	}

	ApplyChartData(&chart, c.ChartData)
	return chart, nil
}

// ApplyChartData copies planets, houses and aspects onto a chart.
func ApplyChartData(chart *domain.BirthChart, data api.ChartData) {
	chart.Planets = make([]domain.Planet, 0, len(data.Planets))
	for _, p := range data.Planets {
		chart.Planets = append(chart.Planets, domain.Planet{
			Name:      p.Name,
			Sign:      p.Sign,
			Degree:    p.Degree,
			Minute:    p.Minute,
			Second:    p.Second,
			House:     p.House,
			Nakshatra: p.Nakshatra,
		})
	}

	chart.Houses = make([]domain.House, 0, len(data.Houses))
	for _, h := range data.Houses {
		chart.Houses = append(chart.Houses, domain.House{Number: h.Number, Sign: h.Sign})
	}

	chart.Aspects = make([]domain.Aspect, 0, len(data.Aspects))
	for _, a := range data.Aspects {
		chart.Aspects = append(chart.Aspects, domain.Aspect{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Aspect:  a.Aspect,
			Orb:     a.Orb,
		})
	}
}

func MapChartDataDomainToApi(chart domain.BirthChart) api.ChartData {
	data := api.ChartData{
		Planets: make([]api.Planet, 0, len(chart.Planets)),
		Houses:  make([]api.House, 0, len(chart.Houses)),
		Aspects: make([]api.Aspect, 0, len(chart.Aspects)),
	}
	for _, p := range chart.Planets {
		data.Planets = append(data.Planets, api.Planet{
			Name:      p.Name,
			Sign:      p.Sign,
			Degree:    p.Degree,
			Minute:    p.Minute,
			Second:    p.Second,
			House:     p.House,
			Nakshatra: p.Nakshatra,
		})
	}
	for _, h := range chart.Houses {
		data.Houses = append(data.Houses, api.House{Number: h.Number, Sign: h.Sign})
	}
	for _, a := range chart.Aspects {
		data.Aspects = append(data.Aspects, api.Aspect{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Aspect:  a.Aspect,
			Orb:     a.Orb,
		})
	}
	return data
}

func MapProfileDomainToApi(p domain.BirthProfile) api.Profile {
	return api.Profile{
		Name:      p.Name,
		BirthDate: p.BirthDate,
		BirthTime: p.BirthTime,
		City:      p.City,
		Country:   p.Country,
	}
}
