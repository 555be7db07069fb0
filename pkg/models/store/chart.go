package store

import "time"

type Chart struct {
	ID        string
	Name      string
	BirthDate time.Time
	BirthTime *string
	Latitude  *float64
	Longitude *float64
	Timezone  string
	City      string
	Country   string
	// ChartData is the JSON encoded planets, houses and aspects.
	ChartData []byte
	CreatedAt time.Time
}

type Report struct {
	ID         string
	ChartID    string
	ReportType string
	Title      string
	Content    string
	IsPremium  bool
	CreatedAt  time.Time
}
