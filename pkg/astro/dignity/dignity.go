package dignity

import (
	"strings"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

type Dignity string

const (
	Domicile   Dignity = "Domicile"
	Exaltation Dignity = "Exaltation"
	Detriment  Dignity = "Detriment"
	Fall       Dignity = "Fall"
	Neutral    Dignity = "Neutral"
)

type rule struct {
	domicile   []string
	exaltation string
	detriment  []string
	fall       string
}

// Classical planets only; the outer planets have no entry and are Neutral.
var rules = map[string]rule{
	"Sun":     {[]string{"Leo"}, "Aries", []string{"Aquarius"}, "Libra"},
	"Moon":    {[]string{"Cancer"}, "Taurus", []string{"Capricorn"}, "Scorpio"},
	"Mercury": {[]string{"Gemini", "Virgo"}, "Virgo", []string{"Sagittarius", "Pisces"}, "Pisces"},
	"Venus":   {[]string{"Taurus", "Libra"}, "Pisces", []string{"Scorpio", "Aries"}, "Virgo"},
	"Mars":    {[]string{"Aries", "Scorpio"}, "Capricorn", []string{"Libra", "Taurus"}, "Cancer"},
	"Jupiter": {[]string{"Sagittarius", "Pisces"}, "Cancer", []string{"Gemini", "Virgo"}, "Capricorn"},
	"Saturn":  {[]string{"Capricorn", "Aquarius"}, "Libra", []string{"Cancer", "Leo"}, "Aries"},
}

// Of returns the essential dignity of a planet in a sign. Checks run in the
// order domicile, exaltation, detriment, fall and the first match wins, so
// Mercury in Virgo is Domicile and Mercury in Pisces is Detriment.
func Of(planet, sign string) Dignity {
	r, ok := rules[canonicalPlanet(planet)]
	if !ok {
		return Neutral
	}
	s, _ := zodiac.ParseSign(sign)

	switch {
	case contains(r.domicile, s):
		return Domicile
	case r.exaltation == s:
		return Exaltation
	case contains(r.detriment, s):
		return Detriment
	case r.fall == s:
		return Fall
	default:
		return Neutral
	}
}

// Classical reports whether the planet has a dignity table entry.
func Classical(planet string) bool {
	_, ok := rules[canonicalPlanet(planet)]
	return ok
}

func canonicalPlanet(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

func contains(signs []string, s string) bool {
	for _, v := range signs {
		if v == s {
			return true
		}
	}
	return false
}
