package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Title:       "Western Birth Chart",
		Subject:     "Jane, born 1990-07-15",
		GeneratedAt: time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC),
		Sections: []domain.ReportSection{
			{
				Title:   "Planetary Positions",
				Summary: map[string]interface{}{"sun_sign": "Cancer", "ascendant": "Scorpio"},
				Details: []domain.ReportDetail{
					{Name: "Sun", Value: "Cancer 22°", Unit: "house 9", Description: "Water, Cardinal"},
				},
			},
			{Title: "Aspects", Locked: true},
			{Title: "Career", Body: "A steady climb."},
		},
	}
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Western Birth Chart\nJane, born 1990-07-15\nGenerated: 2026-07-15 12:00")
	assert.Contains(t, out, "=== Planetary Positions ===\nascendant: Scorpio\nsun_sign: Cancer")
	assert.Contains(t, out, "| Sun ")
	assert.Contains(t, out, "| house 9 ")
	assert.Contains(t, out, "=== Aspects ===\n[premium] Upgrade to unlock this section.")
	assert.Contains(t, out, "A steady climb.")

	// every table row has the same width
	var widths []int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			widths = append(widths, len([]rune(line)))
		}
	}
	require.NotEmpty(t, widths)
	for _, w := range widths {
		assert.Equal(t, widths[0], w)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "°°", truncate("°°", 2))
}

func sampleTimeline() domain.Timeline {
	return domain.Timeline{
		Subject: "Jane",
		Age:     20,
		Tracks: []domain.TimelineTrack{
			{Name: "Decennials", Periods: []domain.TimelinePeriod{
				{Label: "Mars", Start: 0, End: 15},
				{Label: "Sun", Start: 15, End: 34},
			}},
			{Name: "Vimshottari", Periods: []domain.TimelinePeriod{
				{Label: "Ketu", Start: 0, End: 7},
			}},
		},
	}
}

func TestWriteTimeline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimeline(&buf, sampleTimeline()))

	out := buf.String()
	assert.Contains(t, out, "Jane\nAge: 20\n")
	assert.Contains(t, out, "  Mars           0-15  (15 years)")
	assert.Contains(t, out, "> Sun           15-34  (19 years)")
	assert.Contains(t, out, "  Ketu           0-7   (7 years)")
}

func TestWriteTimelineHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimelineHTML(&buf, sampleTimeline()))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Time Lords")
	assert.Contains(t, out, "Sun 15-34")
}
