package api

import "time"

type ReportRequest struct {
	Chart      BirthChart `json:"chart"`
	ReportType string     `json:"report_type"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	IsPremium  bool       `json:"is_premium"`
}

// ReportSummary lists a stored report without rendering it.
type ReportSummary struct {
	ID         string    `json:"id"`
	ChartID    string    `json:"chart_id"`
	ReportType string    `json:"report_type"`
	Title      string    `json:"title,omitempty"`
	IsPremium  bool      `json:"is_premium"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReportDetail struct {
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description,omitempty"`
}

type ReportSection struct {
	Title   string                 `json:"title"`
	Summary map[string]interface{} `json:"summary,omitempty"`
	Details []ReportDetail         `json:"details,omitempty"`
	Body    string                 `json:"body,omitempty"`
	Locked  bool                   `json:"locked"`
}

type Report struct {
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title"`
	Tradition   string          `json:"tradition"`
	Subject     string          `json:"subject"`
	GeneratedAt time.Time       `json:"generated_at"`
	Premium     bool            `json:"premium"`
	Sections    []ReportSection `json:"sections"`
}

type Archive struct {
	ReportID string `json:"report_id"`
	URI      string `json:"uri"`
}
