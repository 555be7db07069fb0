package report

import (
	"testing"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestSplitContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []domain.ReportSection
	}{
		{
			name:     "empty",
			content:  "   \n",
			expected: nil,
		},
		{
			name:     "no headings",
			content:  "Just a paragraph.",
			expected: []domain.ReportSection{{Title: IntroTitle, Body: "Just a paragraph."}},
		},
		{
			name:    "intro and headings",
			content: "Welcome.\n\n**Career**\nAmbitious year.\n\n**Love**\nSteady.\n",
			expected: []domain.ReportSection{
				{Title: IntroTitle, Body: "Welcome."},
				{Title: "Career", Body: "Ambitious year."},
				{Title: "Love", Body: "Steady."},
			},
		},
		{
			name:    "empty body is kept",
			content: "**First**\n**Second**\ntext",
			expected: []domain.ReportSection{
				{Title: "First", Body: ""},
				{Title: "Second", Body: "text"},
			},
		},
		{
			name:    "inline bold is not a heading",
			content: "**Overview**\nThe **Sun** is strong.",
			expected: []domain.ReportSection{
				{Title: "Overview", Body: "The **Sun** is strong."},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitContent(tc.content))
		})
	}
}
