package domain

import "time"

type Tradition string

const (
	TraditionWestern     Tradition = "western"
	TraditionVedic       Tradition = "vedic"
	TraditionChinese     Tradition = "chinese"
	TraditionHellenistic Tradition = "hellenistic"
)

// AstrologyReport is a stored report request: which renderer to use, the
// written reading and whether premium sections are unlocked.
type AstrologyReport struct {
	ID         string
	ChartID    string
	ReportType string
	Title      string
	Content    string
	IsPremium  bool
	CreatedAt  time.Time
}

// Report represents a complete rendered report
type Report struct {
	ID          string
	Title       string
	Tradition   Tradition
	Subject     string
	GeneratedAt time.Time
	Premium     bool
	Sections    []ReportSection
}

// ReportSection represents a logical section in the report. Locked sections
// are premium-only and carry no details.
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
	Body    string
	Locked  bool
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
