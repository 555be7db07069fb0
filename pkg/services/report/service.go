// Package report renders birth charts into titled, sectioned reports. The
// report type picks a tradition-specific Renderer; the report's written
// content is appended as reading sections.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Service struct {
	registry Registry
	now      func() time.Time
}

// NewService creates a report service. now may be nil, in which case
// time.Now is used.
func NewService(registry Registry, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{registry: registry, now: now}
}

// Generate renders a chart according to the report's type and premium flag.
func (s *Service) Generate(
	ctx context.Context,
	chart domain.BirthChart,
	req domain.AstrologyReport,
) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)
	tradition := TraditionOf(req.ReportType)

	renderer, err := s.registry.Get(tradition)
	if err != nil {
		return nil, fmt.Errorf("failed to get renderer for report type %q: %w", req.ReportType, err)
	}

	now := s.now()
	sections := renderer.Render(ctx, Input{Chart: chart, Now: now, Premium: req.IsPremium})
	sections = append(sections, SplitContent(req.Content)...)

	logger.Debug().
		Str("report_type", req.ReportType).
		Str("tradition", string(tradition)).
		Bool("premium", req.IsPremium).
		Int("sections", len(sections)).
		Msg("report rendered")

	title := req.Title
	if title == "" {
		title = defaultTitle(tradition)
	}

	return &domain.Report{
		ID:          req.ID,
		Title:       title,
		Tradition:   tradition,
		Subject:     subject(chart),
		GeneratedAt: now,
		Premium:     req.IsPremium,
		Sections:    sections,
	}, nil
}

func defaultTitle(t domain.Tradition) string {
	return strings.ToUpper(string(t[:1])) + string(t[1:]) + " Birth Chart"
}

func subject(chart domain.BirthChart) string {
	var b strings.Builder
	if chart.Name != "" {
		b.WriteString(chart.Name)
		b.WriteString(", ")
	}
	b.WriteString("born ")
	b.WriteString(chart.BirthDate.Format(domain.DateLayout))
	if chart.BirthTime != nil {
		b.WriteString(" ")
		b.WriteString(chart.BirthTime.String())
	}
	if chart.Location != nil && chart.Location.City != "" {
		b.WriteString(" in ")
		b.WriteString(chart.Location.City)
	}
	return b.String()
}
