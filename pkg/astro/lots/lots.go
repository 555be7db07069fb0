package lots

import "strings"

// Definition pairs the day and night formulas of a lot. Sect reversal swaps
// the two moving points at night.
type Definition struct {
	Name        string
	Description string
	Day         string
	Night       string
}

var Catalogue = []Definition{
	{
		Name:        "Fortune",
		Description: "Body, health and material circumstances",
		Day:         "Ascendant + Moon - Sun",
		Night:       "Ascendant + Sun - Moon",
	},
	{
		Name:        "Spirit",
		Description: "Mind, intention and vocation",
		Day:         "Ascendant + Sun - Moon",
		Night:       "Ascendant + Moon - Sun",
	},
	{
		Name:        "Eros",
		Description: "Desire and affection",
		Day:         "Ascendant + Venus - Sun",
		Night:       "Ascendant + Sun - Venus",
	},
	{
		Name:        "Victory",
		Description: "Success, faith and alliances",
		Day:         "Ascendant + Jupiter - Sun",
		Night:       "Ascendant + Sun - Jupiter",
	},
	{
		Name:        "Nemesis",
		Description: "Hidden difficulties and what must be faced",
		Day:         "Ascendant + Saturn - Sun",
		Night:       "Ascendant + Sun - Saturn",
	},
}

type Lot struct {
	Name        string
	Description string
	Formula     Formula
	DayChart    bool
	Evaluation
}

// Compute evaluates the sect-appropriate formula of a lot.
func Compute(def Definition, pos Positions, isDayChart bool) Lot {
	src := def.Night
	if isDayChart {
		src = def.Day
	}
	f := Parse(src)
	return Lot{
		Name:        def.Name,
		Description: def.Description,
		Formula:     f,
		DayChart:    isDayChart,
		Evaluation:  f.Evaluate(pos),
	}
}

// ComputeAll evaluates every lot in the catalogue.
func ComputeAll(pos Positions, isDayChart bool) []Lot {
	out := make([]Lot, 0, len(Catalogue))
	for _, def := range Catalogue {
		out = append(out, Compute(def, pos, isDayChart))
	}
	return out
}

// Find looks a catalogue entry up by name, ignoring case.
func Find(name string) (Definition, bool) {
	for _, def := range Catalogue {
		if strings.EqualFold(def.Name, strings.TrimSpace(name)) {
			return def, true
		}
	}
	return Definition{}, false
}

// IsDayChart reports whether the Sun sits above the horizon, i.e. in houses
// 7 to 12. An unknown house (0) counts as a day chart.
func IsDayChart(sunHouse int) bool {
	return sunHouse < 1 || sunHouse > 6
}
