// Package bazi derives the Four Pillars (Year, Month, Day, Hour stem-branch
// pairs) of a birth moment.
//
// The month and hour pillars use simplified formulas: month boundaries follow
// the Gregorian calendar rather than solar terms, and the hour stem is
// (hour + day of month) mod 10 instead of the traditional derivation table.
// These are the values the product has always displayed.
package bazi

import (
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

// DefaultHour is used when the birth time is not known.
const DefaultHour = 12

const secondsPerDay = 24 * 60 * 60

type Stem struct {
	Chinese   string
	Romanized string
	Element   string
	Polarity  string
}

type Branch struct {
	Chinese       string
	Romanized     string
	Animal        string
	AnimalChinese string
}

var Stems = [10]Stem{
	{"甲", "Jia", "Wood", "Yang"},
	{"乙", "Yi", "Wood", "Yin"},
	{"丙", "Bing", "Fire", "Yang"},
	{"丁", "Ding", "Fire", "Yin"},
	{"戊", "Wu", "Earth", "Yang"},
	{"己", "Ji", "Earth", "Yin"},
	{"庚", "Geng", "Metal", "Yang"},
	{"辛", "Xin", "Metal", "Yin"},
	{"壬", "Ren", "Water", "Yang"},
	{"癸", "Gui", "Water", "Yin"},
}

var Branches = [12]Branch{
	{"子", "Zi", "Rat", "鼠"},
	{"丑", "Chou", "Ox", "牛"},
	{"寅", "Yin", "Tiger", "虎"},
	{"卯", "Mao", "Rabbit", "兔"},
	{"辰", "Chen", "Dragon", "龙"},
	{"巳", "Si", "Snake", "蛇"},
	{"午", "Wu", "Horse", "马"},
	{"未", "Wei", "Goat", "羊"},
	{"申", "Shen", "Monkey", "猴"},
	{"酉", "You", "Rooster", "鸡"},
	{"戌", "Xu", "Dog", "狗"},
	{"亥", "Hai", "Pig", "猪"},
}

// Elements indexed by floor(stemIndex / 2).
var Elements = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

var epoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type Pillar struct {
	Name            string
	StemIndex       int
	BranchIndex     int
	Stem            string
	StemRomanized   string
	Branch          string
	BranchRomanized string
	Animal          string
	AnimalChinese   string
}

type FourPillars struct {
	Hour        Pillar
	Day         Pillar
	Month       Pillar
	Year        Pillar
	YearElement string
	HourKnown   bool
}

// Ordered returns the pillars Hour, Day, Month, Year, the order they are
// traditionally written in.
func (fp FourPillars) Ordered() []Pillar {
	return []Pillar{fp.Hour, fp.Day, fp.Month, fp.Year}
}

// Derive computes the pillars for a birth date. hour may be nil when the
// birth time is unknown, in which case DefaultHour is used. Out-of-range
// hours are wrapped.
func Derive(birth time.Time, hour *int) FourPillars {
	h := DefaultHour
	if hour != nil {
		h = zodiac.Mod(*hour, 24)
	}

	year := birth.Year()
	month := int(birth.Month())

	yearStem := YearStemIndex(year)
	fp := FourPillars{
		Year:        newPillar("Year", yearStem, YearBranchIndex(year)),
		Month:       newPillar("Month", zodiac.Mod(year*12+month-1, 10), zodiac.Mod(month-1, 12)),
		YearElement: Elements[yearStem/2],
		HourKnown:   hour != nil,
	}

	days := DaysSinceEpoch(birth)
	fp.Day = newPillar("Day", zodiac.Mod(days, 10), zodiac.Mod(days, 12))
	fp.Hour = newPillar("Hour", zodiac.Mod(h+birth.Day(), 10), zodiac.Mod(h/2, 12))

	return fp
}

func YearStemIndex(year int) int {
	return zodiac.Mod(year-4, 10)
}

func YearBranchIndex(year int) int {
	return zodiac.Mod(year-4, 12)
}

// DaysSinceEpoch counts whole calendar days between 1900-01-01 and the
// birth date. The birth date's own location is ignored.
func DaysSinceEpoch(birth time.Time) int {
	d := time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds rather than Sub: time.Duration saturates at ~292 years.
	return int((d.Unix() - epoch.Unix()) / secondsPerDay)
}

func newPillar(name string, stemIdx, branchIdx int) Pillar {
	s := Stems[stemIdx]
	b := Branches[branchIdx]
	return Pillar{
		Name:            name,
		StemIndex:       stemIdx,
		BranchIndex:     branchIdx,
		Stem:            s.Chinese,
		StemRomanized:   s.Romanized,
		Branch:          b.Chinese,
		BranchRomanized: b.Romanized,
		Animal:          b.Animal,
		AnimalChinese:   b.AnimalChinese,
	}
}
