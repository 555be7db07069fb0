package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/de-tools/astro-atlas/pkg/models/store"
)

func MapChartDomainToStore(c domain.BirthChart) (store.Chart, error) {
	data, err := json.Marshal(MapChartDataDomainToApi(c))
	if err != nil {
		return store.Chart{}, fmt.Errorf("failed to encode chart data: %w", err)
	}

	out := store.Chart{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate,
		ChartData: data,
	}
	if c.BirthTime != nil {
		t := c.BirthTime.String()
		out.BirthTime = &t
	}
	if l := c.Location; l != nil {
		lat, lon := l.Latitude, l.Longitude
		out.Latitude = &lat
		out.Longitude = &lon
		out.Timezone = l.Timezone
		out.City = l.City
		out.Country = l.Country
	}
	return out, nil
}

func MapChartStoreToDomain(c store.Chart) (domain.BirthChart, error) {
	out := domain.BirthChart{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate,
	}

	if c.BirthTime != nil {
		t, err := domain.ParseTimeOfDay(*c.BirthTime)
		if err != nil {
			return domain.BirthChart{}, fmt.Errorf("chart %s: %w", c.ID, err)
		}
		out.BirthTime = t
	}

	if c.Latitude != nil || c.City != "" {
		out.Location = &domain.Location{
			Timezone: c.Timezone,
			City:     c.City,
			Country:  c.Country,
		}
		if c.Latitude != nil {
			out.Location.Latitude = *c.Latitude
		}
		if c.Longitude != nil {
			out.Location.Longitude = *c.Longitude
		}
	}

	var data api.ChartData
	if len(c.ChartData) > 0 {
		if err := json.Unmarshal(c.ChartData, &data); err != nil {
			return domain.BirthChart{}, fmt.Errorf("chart %s: failed to decode chart data: %w", c.ID, err)
		}
	}
	ApplyChartData(&out, data)
	return out, nil
}

func MapReportDomainToStore(r domain.AstrologyReport) store.Report {
	return store.Report{
		ID:         r.ID,
		ChartID:    r.ChartID,
		ReportType: r.ReportType,
		Title:      r.Title,
		Content:    r.Content,
		IsPremium:  r.IsPremium,
		CreatedAt:  r.CreatedAt,
	}
}

func MapReportStoreToDomain(r store.Report) domain.AstrologyReport {
	return domain.AstrologyReport{
		ID:         r.ID,
		ChartID:    r.ChartID,
		ReportType: r.ReportType,
		Title:      r.Title,
		Content:    r.Content,
		IsPremium:  r.IsPremium,
		CreatedAt:  r.CreatedAt,
	}
}
