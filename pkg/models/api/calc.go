package api

type Sign struct {
	Sign     string `json:"sign"`
	Element  string `json:"element"`
	Modality string `json:"modality"`
	Ruler    string `json:"ruler"`
}

type BirthMoment struct {
	BirthDate string  `json:"birth_date"`
	BirthTime *string `json:"birth_time"`
}

type Pillar struct {
	Name            string `json:"name"`
	Stem            string `json:"stem"`
	StemRomanized   string `json:"stem_romanized"`
	Branch          string `json:"branch"`
	BranchRomanized string `json:"branch_romanized"`
	Animal          string `json:"animal"`
	AnimalChinese   string `json:"animal_chinese"`
}

type FourPillars struct {
	Hour        Pillar `json:"hour"`
	Day         Pillar `json:"day"`
	Month       Pillar `json:"month"`
	Year        Pillar `json:"year"`
	YearElement string `json:"year_element"`
	HourKnown   bool   `json:"hour_known"`
}

type Kua struct {
	Year        int      `json:"year"`
	Gender      string   `json:"gender"`
	Kua         int      `json:"kua"`
	Element     string   `json:"element"`
	Group       string   `json:"group"`
	Favorable   []string `json:"favorable_directions"`
	Unfavorable []string `json:"unfavorable_directions"`
	Colors      []string `json:"colors"`
	Personality string   `json:"personality"`
}

type TimeLordsRequest struct {
	BirthDate   string `json:"birth_date"`
	Now         string `json:"now,omitempty"`
	Ascendant   string `json:"ascendant,omitempty"`
	FortuneSign string `json:"fortune_sign,omitempty"`
}

type Period struct {
	Planet string `json:"planet"`
	Sign   string `json:"sign,omitempty"`
	Years  int    `json:"years"`
	Start  int    `json:"start_age"`
	End    int    `json:"end_age"`
}

type CurrentPeriod struct {
	Period
	Elapsed   int  `json:"elapsed_years"`
	Remaining int  `json:"remaining_years"`
	InRange   bool `json:"in_range"`
}

type Profection struct {
	House     int    `json:"house"`
	Theme     string `json:"theme"`
	Ruler     string `json:"ruler"`
	Sign      string `json:"sign,omitempty"`
	SignRuler string `json:"sign_ruler,omitempty"`
}

type TimeLords struct {
	Age              int           `json:"age"`
	Decennial        CurrentPeriod `json:"decennial"`
	Profection       Profection    `json:"profection"`
	Releasing        CurrentPeriod `json:"zodiacal_releasing"`
	ReleasingPeriods []Period      `json:"zodiacal_releasing_periods"`
}

type LotsRequest struct {
	Chart      BirthChart `json:"chart"`
	IsDayChart *bool      `json:"is_day_chart,omitempty"`
}

type Lot struct {
	Name         string   `json:"name"`
	Formula      string   `json:"formula"`
	Degree       float64  `json:"degree"`
	Sign         string   `json:"sign"`
	DegreeInSign float64  `json:"degree_in_sign"`
	House        int      `json:"house"`
	Unresolved   []string `json:"unresolved,omitempty"`
}

type Lots struct {
	DayChart bool  `json:"day_chart"`
	Lots     []Lot `json:"lots"`
}

type Dignity struct {
	Planet  string `json:"planet"`
	Sign    string `json:"sign"`
	Dignity string `json:"dignity"`
}

type NakshatraPlacement struct {
	Planet    string `json:"planet"`
	Nakshatra string `json:"nakshatra"`
	Lord      string `json:"lord"`
	Pada      int    `json:"pada,omitempty"`
}

type Mahadasha struct {
	Lord  string `json:"lord"`
	Years int    `json:"years"`
	Start int    `json:"start_age"`
	End   int    `json:"end_age"`
}

type Dasha struct {
	Current   string      `json:"current"`
	Remaining int         `json:"remaining_years"`
	Cycle     int         `json:"cycle"`
	Sequence  []Mahadasha `json:"sequence"`
}

type Nakshatras struct {
	Ascendant  NakshatraPlacement   `json:"ascendant"`
	Placements []NakshatraPlacement `json:"placements"`
	Dasha      *Dasha               `json:"dasha,omitempty"`
}
