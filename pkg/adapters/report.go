package adapters

import (
	"maps"

	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

func MapReportSectionDomainToApi(s domain.ReportSection) api.ReportSection {
	out := api.ReportSection{
		Title:   s.Title,
		Summary: maps.Clone(s.Summary),
		Body:    s.Body,
		Locked:  s.Locked,
	}
	for _, d := range s.Details {
		out.Details = append(out.Details, api.ReportDetail{
			Name:        d.Name,
			Value:       d.Value,
			Unit:        d.Unit,
			Description: d.Description,
		})
	}
	return out
}

func MapReportDomainToApi(r domain.Report) api.Report {
	out := api.Report{
		ID:          r.ID,
		Title:       r.Title,
		Tradition:   string(r.Tradition),
		Subject:     r.Subject,
		GeneratedAt: r.GeneratedAt,
		Premium:     r.Premium,
		Sections:    make([]api.ReportSection, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		out.Sections = append(out.Sections, MapReportSectionDomainToApi(s))
	}
	return out
}

func MapReportRequestApiToDomain(r api.ReportRequest) domain.AstrologyReport {
	return domain.AstrologyReport{
		ReportType: r.ReportType,
		Title:      r.Title,
		Content:    r.Content,
		IsPremium:  r.IsPremium,
	}
}
