package export

import (
	"fmt"
	"io"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteTimeline prints each track with the current period marked.
func WriteTimeline(w io.Writer, t domain.Timeline) error {
	if _, err := fmt.Fprintf(w, "%s\nAge: %d\n", t.Subject, t.Age); err != nil {
		return err
	}
	for _, track := range t.Tracks {
		if _, err := fmt.Fprintf(w, "\n=== %s ===\n", track.Name); err != nil {
			return err
		}
		for _, p := range track.Periods {
			marker := " "
			if t.Age >= p.Start && t.Age < p.End {
				marker = ">"
			}
			if _, err := fmt.Fprintf(w, "%s %-12s %3d-%-3d (%d years)\n", marker, p.Label, p.Start, p.End, p.Years()); err != nil {
				return err
			}
		}
	}
	return nil
}

// TimelineChart renders the tracks as horizontal stacked bars, one bar per
// track, one segment per period.
func TimelineChart(t domain.Timeline) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Time Lords",
			Width:     "1200px",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Time Lords",
			Subtitle: fmt.Sprintf("%s, age %d", t.Subject, t.Age),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "age"}),
	)

	names := make([]string, 0, len(t.Tracks))
	slots := 0
	for _, track := range t.Tracks {
		names = append(names, track.Name)
		slots = max(slots, len(track.Periods))
	}
	bar.SetXAxis(names)

	// series i holds the i-th period of every track
	for i := 0; i < slots; i++ {
		data := make([]opts.BarData, 0, len(t.Tracks))
		for _, track := range t.Tracks {
			if i >= len(track.Periods) {
				data = append(data, opts.BarData{Value: 0})
				continue
			}
			p := track.Periods[i]
			data = append(data, opts.BarData{
				Name:  fmt.Sprintf("%s %d-%d", p.Label, p.Start, p.End),
				Value: p.Years(),
			})
		}
		bar.AddSeries(fmt.Sprintf("period %d", i+1), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "age"}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}
	bar.XYReversal()
	return bar
}

// WriteTimelineHTML writes a standalone HTML page with the timeline chart.
func WriteTimelineHTML(w io.Writer, t domain.Timeline) error {
	if err := TimelineChart(t).Render(w); err != nil {
		return fmt.Errorf("failed to render timeline chart: %w", err)
	}
	return nil
}
