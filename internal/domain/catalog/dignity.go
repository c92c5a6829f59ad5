package catalog

import (
	"github.com/okian/astroclimate/internal/domain/types"
)

// Essential dignity adjustments. Domicile and exaltation strengthen a body,
// detriment and fall weaken it.
const (
	domicileScore   = 1.0
	exaltationScore = 0.75
	detrimentScore  = -1.0
	fallScore       = -0.75
)

// domiciles lists the sign(s) each body rules in the traditional scheme.
// Detriment is the opposite sign, derived in init.
var domiciles = map[types.Body][]types.Sign{
	types.Sun:     {types.Leo},
	types.Moon:    {types.Cancer},
	types.Mercury: {types.Gemini, types.Virgo},
	types.Venus:   {types.Taurus, types.Libra},
	types.Mars:    {types.Aries, types.Scorpio},
	types.Jupiter: {types.Sagittarius, types.Pisces},
	types.Saturn:  {types.Capricorn, types.Aquarius},
	types.Uranus:  {types.Aquarius},
	types.Neptune: {types.Pisces},
	types.Pluto:   {types.Scorpio},
}

// exaltations per the classical list. Fall is the opposite sign, derived in init.
var exaltations = map[types.Body]types.Sign{
	types.Sun:     types.Aries,
	types.Moon:    types.Taurus,
	types.Mercury: types.Virgo,
	types.Venus:   types.Pisces,
	types.Mars:    types.Capricorn,
	types.Jupiter: types.Cancer,
	types.Saturn:  types.Libra,
}

// dignities is the resolved (body, sign) -> adjustment map, built once at
// package init. Exaltation in a domicile sign does not stack: the stronger
// domicile score wins (Mercury in Virgo scores domicile, not both).
var dignities map[types.Body]map[types.Sign]float64

func init() {
	dignities = make(map[types.Body]map[types.Sign]float64, len(domiciles))
	set := func(b types.Body, s types.Sign, v float64) {
		m, ok := dignities[b]
		if !ok {
			m = make(map[types.Sign]float64, 4)
			dignities[b] = m
		}
		m[s] = v
	}

	for body, sign := range exaltations {
		set(body, sign, exaltationScore)
		set(body, opposite(sign), fallScore)
	}
	// Domiciles after exaltations so domicile wins where they overlap.
	for body, signs := range domiciles {
		for _, sign := range signs {
			set(body, sign, domicileScore)
			set(body, opposite(sign), detrimentScore)
		}
	}
}

// opposite returns the sign 180 degrees away.
func opposite(s types.Sign) types.Sign {
	signs := types.Signs()
	for i, candidate := range signs {
		if candidate == s {
			return signs[(i+6)%len(signs)]
		}
	}
	return s
}

// Dignity returns the signed essential-dignity adjustment for a body in a
// sign: positive for domicile/exaltation, negative for detriment/fall, and
// zero for any unknown or peregrine combination. It never fails.
func Dignity(b types.Body, s types.Sign) float64 {
	return dignities[b][s]
}
