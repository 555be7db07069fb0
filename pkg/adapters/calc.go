package adapters

import (
	"github.com/de-tools/astro-atlas/pkg/astro/bazi"
	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/astro/lots"
	"github.com/de-tools/astro-atlas/pkg/astro/timelords"
	"github.com/de-tools/astro-atlas/pkg/astro/vedic"
	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
	"github.com/de-tools/astro-atlas/pkg/models/api"
)

func MapSignToApi(sign string) api.Sign {
	return api.Sign{
		Sign:     sign,
		Element:  string(zodiac.ElementOf(sign)),
		Modality: string(zodiac.ModalityOf(sign)),
		Ruler:    zodiac.Ruler(sign),
	}
}

func MapPillarToApi(p bazi.Pillar) api.Pillar {
	return api.Pillar{
		Name:            p.Name,
		Stem:            p.Stem,
		StemRomanized:   p.StemRomanized,
		Branch:          p.Branch,
		BranchRomanized: p.BranchRomanized,
		Animal:          p.Animal,
		AnimalChinese:   p.AnimalChinese,
	}
}

func MapFourPillarsToApi(fp bazi.FourPillars) api.FourPillars {
	return api.FourPillars{
		Hour:        MapPillarToApi(fp.Hour),
		Day:         MapPillarToApi(fp.Day),
		Month:       MapPillarToApi(fp.Month),
		Year:        MapPillarToApi(fp.Year),
		YearElement: fp.YearElement,
		HourKnown:   fp.HourKnown,
	}
}

func MapKuaToApi(year int, gender fengshui.Gender, p fengshui.Profile) api.Kua {
	return api.Kua{
		Year:        year,
		Gender:      string(gender),
		Kua:         p.Number,
		Element:     p.Element,
		Group:       string(p.Group),
		Favorable:   p.Favorable,
		Unfavorable: p.Unfavorable,
		Colors:      p.Colors,
		Personality: p.Personality,
	}
}

func MapPeriodToApi(p timelords.Period) api.Period {
	return api.Period{
		Planet: p.Planet,
		Sign:   p.Sign,
		Years:  p.Years,
		Start:  p.Start,
		End:    p.End,
	}
}

func MapCurrentPeriodToApi(c timelords.Current) api.CurrentPeriod {
	return api.CurrentPeriod{
		Period:    MapPeriodToApi(c.Period),
		Elapsed:   c.Elapsed,
		Remaining: c.Remaining,
		InRange:   c.InRange,
	}
}

func MapProfectionToApi(p timelords.Profection) api.Profection {
	return api.Profection{
		House:     p.House,
		Theme:     p.Theme,
		Ruler:     p.Ruler,
		Sign:      p.Sign,
		SignRuler: p.SignRuler,
	}
}

// MapTimeLordsToApi assembles the three techniques computed for one age.
func MapTimeLordsToApi(
	age int,
	decennial timelords.Current,
	profection timelords.Profection,
	releasing timelords.Current,
	periods []timelords.Period,
) api.TimeLords {
	out := api.TimeLords{
		Age:        age,
		Decennial:  MapCurrentPeriodToApi(decennial),
		Profection: MapProfectionToApi(profection),
		Releasing:  MapCurrentPeriodToApi(releasing),
	}
	for _, p := range periods {
		out.ReleasingPeriods = append(out.ReleasingPeriods, MapPeriodToApi(p))
	}
	return out
}

func MapLotToApi(l lots.Lot) api.Lot {
	return api.Lot{
		Name:         l.Name,
		Formula:      l.Formula.String(),
		Degree:       l.Degree,
		Sign:         l.Sign,
		DegreeInSign: l.DegreeInSign,
		House:        l.House,
		Unresolved:   l.Unresolved,
	}
}

func MapLotsToApi(day bool, computed []lots.Lot) api.Lots {
	out := api.Lots{DayChart: day, Lots: make([]api.Lot, 0, len(computed))}
	for _, l := range computed {
		out.Lots = append(out.Lots, MapLotToApi(l))
	}
	return out
}

func MapPlacementToApi(planet string, p vedic.Placement) api.NakshatraPlacement {
	return api.NakshatraPlacement{
		Planet:    planet,
		Nakshatra: p.Name,
		Lord:      p.Lord,
		Pada:      p.Pada,
	}
}

func MapDashaToApi(cur vedic.CurrentDasha, sequence []vedic.Mahadasha) api.Dasha {
	out := api.Dasha{
		Current:   cur.Lord,
		Remaining: cur.Remaining,
		Cycle:     cur.Cycle,
	}
	for _, d := range sequence {
		out.Sequence = append(out.Sequence, api.Mahadasha{
			Lord:  d.Lord,
			Years: d.Years,
			Start: d.Start,
			End:   d.End,
		})
	}
	return out
}
