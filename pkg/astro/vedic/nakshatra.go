// Package vedic maps longitudes onto the 27 nakshatras (lunar mansions) and
// walks the Vimshottari dasha sequence.
package vedic

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

const (
	nakshatraSpan = 360.0 / 27
	padaSpan      = nakshatraSpan / 4
)

type Nakshatra struct {
	Index  int
	Name   string
	Lord   string
	Deity  string
	Symbol string
}

var Nakshatras = [27]Nakshatra{
	{0, "Ashwini", "Ketu", "Ashvins", "Horse's head"},
	{1, "Bharani", "Venus", "Yama", "Yoni"},
	{2, "Krittika", "Sun", "Agni", "Razor"},
	{3, "Rohini", "Moon", "Brahma", "Chariot"},
	{4, "Mrigashira", "Mars", "Soma", "Deer's head"},
	{5, "Ardra", "Rahu", "Rudra", "Teardrop"},
	{6, "Punarvasu", "Jupiter", "Aditi", "Quiver"},
	{7, "Pushya", "Saturn", "Brihaspati", "Cow's udder"},
	{8, "Ashlesha", "Mercury", "Nagas", "Coiled serpent"},
	{9, "Magha", "Ketu", "Pitris", "Throne"},
	{10, "Purva Phalguni", "Venus", "Bhaga", "Front legs of a bed"},
	{11, "Uttara Phalguni", "Sun", "Aryaman", "Back legs of a bed"},
	{12, "Hasta", "Moon", "Savitr", "Hand"},
	{13, "Chitra", "Mars", "Tvashtr", "Pearl"},
	{14, "Swati", "Rahu", "Vayu", "Young shoot"},
	{15, "Vishakha", "Jupiter", "Indra-Agni", "Archway"},
	{16, "Anuradha", "Saturn", "Mitra", "Lotus"},
	{17, "Jyeshtha", "Mercury", "Indra", "Earring"},
	{18, "Mula", "Ketu", "Nirriti", "Roots"},
	{19, "Purva Ashadha", "Venus", "Apas", "Fan"},
	{20, "Uttara Ashadha", "Sun", "Vishvadevas", "Elephant tusk"},
	{21, "Shravana", "Moon", "Vishnu", "Ear"},
	{22, "Dhanishta", "Mars", "Vasus", "Drum"},
	{23, "Shatabhisha", "Rahu", "Varuna", "Empty circle"},
	{24, "Purva Bhadrapada", "Jupiter", "Aja Ekapada", "Sword"},
	{25, "Uttara Bhadrapada", "Saturn", "Ahir Budhnya", "Twin"},
	{26, "Revati", "Mercury", "Pushan", "Fish"},
}

type Placement struct {
	Nakshatra
	Pada int
}

// At returns the nakshatra and pada (1–4) of an absolute longitude.
func At(longitude float64) Placement {
	deg := zodiac.Normalize(longitude)
	idx := int(deg / nakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	pada := int(math.Mod(deg, nakshatraSpan)/padaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return Placement{Nakshatra: Nakshatras[idx], Pada: pada}
}

// Find looks a nakshatra up by name, ignoring case.
func Find(name string) (Nakshatra, bool) {
	name = strings.TrimSpace(name)
	for _, n := range Nakshatras {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Nakshatra{}, false
}

// Resolve prefers an explicitly recorded nakshatra name and falls back to the
// longitude. The pada is only known when derived from the longitude.
func Resolve(recorded string, longitude float64) Placement {
	if n, ok := Find(recorded); ok {
		p := At(longitude)
		if p.Index == n.Index {
			return p
		}
		return Placement{Nakshatra: n}
	}
	return At(longitude)
}

// Picker chooses an index in [0, n). *math/rand/v2.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a PCG source seeded from the birth date and seed, so the
// same chart always gets the same pick.
func NewPicker(birth time.Time, seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(birth.Unix()), seed))
}

// AscendantNakshatra resolves the rising nakshatra. Charts carry no house
// cusps, so unless an ascendant longitude is supplied the nakshatra is
// picked from p. Seed p deterministically to keep reports reproducible.
func AscendantNakshatra(longitude *float64, p Picker) Placement {
	if longitude != nil {
		return At(*longitude)
	}
	return Placement{Nakshatra: Nakshatras[p.IntN(len(Nakshatras))]}
}
