package domain

import "fmt"

// BirthProfile is a named person from the profiles file.
type BirthProfile struct {
	Name      string
	BirthDate string
	BirthTime string
	City      string
	Country   string
	ChartFile string
}

func (p BirthProfile) String() string {
	if p.City == "" {
		return fmt.Sprintf("%s:%s", p.Name, p.BirthDate)
	}
	return fmt.Sprintf("%s:%s (%s)", p.Name, p.BirthDate, p.City)
}
