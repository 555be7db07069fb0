package report

import (
	"regexp"
	"strings"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

// a heading is a line consisting only of **Title**
var headingRe = regexp.MustCompile(`(?m)^[ \t]*\*\*([^*\n]+)\*\*[ \t]*$`)

// IntroTitle names the text that precedes the first heading.
const IntroTitle = "Introduction"

// SplitContent splits report prose on "**Title**" heading lines. Text before
// the first heading becomes an Introduction section; empty bodies are kept
// so a heading is never lost.
func SplitContent(content string) []domain.ReportSection {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	matches := headingRe.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return []domain.ReportSection{{Title: IntroTitle, Body: content}}
	}

	var sections []domain.ReportSection
	if intro := strings.TrimSpace(content[:matches[0][0]]); intro != "" {
		sections = append(sections, domain.ReportSection{Title: IntroTitle, Body: intro})
	}

	for i, m := range matches {
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, domain.ReportSection{
			Title: strings.TrimSpace(content[m[2]:m[3]]),
			Body:  strings.TrimSpace(content[m[1]:end]),
		})
	}
	return sections
}
