package fengshui

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender accepts "male"/"m" and "female"/"f" in any case. Anything
// else, including the empty string, is reported as not ok.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, true
	case "female", "f":
		return GenderFemale, true
	default:
		return GenderMale, false
	}
}

type Group string

const (
	EastGroup Group = "East"
	WestGroup Group = "West"
)

type Profile struct {
	Number      int
	Element     string
	Group       Group
	Favorable   []string
	Unfavorable []string
	Colors      []string
	Personality string
}

var profiles = map[int]Profile{
	1: {
		Number: 1, Element: "Water", Group: EastGroup,
		Favorable:   []string{"Southeast", "East", "South", "North"},
		Unfavorable: []string{"West", "Northeast", "Northwest", "Southwest"},
		Colors:      []string{"Blue", "Black", "White"},
		Personality: "Adaptable and intuitive, drawn to depth and quiet wisdom.",
	},
	2: {
		Number: 2, Element: "Earth", Group: WestGroup,
		Favorable:   []string{"Northeast", "West", "Northwest", "Southwest"},
		Unfavorable: []string{"East", "Southeast", "South", "North"},
		Colors:      []string{"Yellow", "Beige", "Brown"},
		Personality: "Nurturing and steady, the one others lean on.",
	},
	3: {
		Number: 3, Element: "Wood", Group: EastGroup,
		Favorable:   []string{"South", "North", "Southeast", "East"},
		Unfavorable: []string{"Southwest", "Northwest", "Northeast", "West"},
		Colors:      []string{"Green", "Brown", "Blue"},
		Personality: "Energetic and ambitious, quick to start new ventures.",
	},
	4: {
		Number: 4, Element: "Wood", Group: EastGroup,
		Favorable:   []string{"North", "South", "East", "Southeast"},
		Unfavorable: []string{"Northwest", "Southwest", "West", "Northeast"},
		Colors:      []string{"Green", "Teal", "Blue"},
		Personality: "Gentle and persuasive, growing through patience.",
	},
	6: {
		Number: 6, Element: "Metal", Group: WestGroup,
		Favorable:   []string{"West", "Northeast", "Southwest", "Northwest"},
		Unfavorable: []string{"Southeast", "East", "North", "South"},
		Colors:      []string{"White", "Gold", "Silver"},
		Personality: "Principled and decisive, a natural leader.",
	},
	7: {
		Number: 7, Element: "Metal", Group: WestGroup,
		Favorable:   []string{"Northwest", "Southwest", "Northeast", "West"},
		Unfavorable: []string{"North", "South", "Southeast", "East"},
		Colors:      []string{"White", "Silver", "Grey"},
		Personality: "Charming and expressive, at ease in company.",
	},
	8: {
		Number: 8, Element: "Earth", Group: WestGroup,
		Favorable:   []string{"Southwest", "Northwest", "West", "Northeast"},
		Unfavorable: []string{"South", "North", "East", "Southeast"},
		Colors:      []string{"Yellow", "Tan", "Orange"},
		Personality: "Reliable and reflective, building slowly and surely.",
	},
	9: {
		Number: 9, Element: "Fire", Group: EastGroup,
		Favorable:   []string{"East", "Southeast", "North", "South"},
		Unfavorable: []string{"Northeast", "West", "Southwest", "Northwest"},
		Colors:      []string{"Red", "Purple", "Orange"},
		Personality: "Passionate and visible, seeking recognition.",
	},
}

// Kua derives the personal Kua number from a birth year.
//
// The last two digits of the year are digit-summed down to one digit d.
// Males take 11 - d, females 4 + d; results above 9 have 9 subtracted.
// 5 is never returned: it maps to 2 for males and 8 for females.
func Kua(year int, gender Gender) int {
	d := reduce(abs(year) % 100)

	var n int
	if gender == GenderFemale {
		n = 4 + d
	} else {
		n = 11 - d
	}

	if n == 5 {
		if gender == GenderFemale {
			return 8
		}
		return 2
	}
	if n > 9 {
		n -= 9
	}
	return n
}

// Lookup returns the profile for a Kua number.
func Lookup(kua int) (Profile, error) {
	p, ok := profiles[kua]
	if !ok {
		return Profile{}, fmt.Errorf("no feng shui profile for kua number %d", kua)
	}
	return p, nil
}

// ProfileFor is Kua followed by Lookup; it never fails because Kua only
// yields numbers that have a profile.
func ProfileFor(year int, gender Gender) Profile {
	return profiles[Kua(year, gender)]
}

func reduce(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
