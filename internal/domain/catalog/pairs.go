package catalog

import (
	"github.com/okian/astroclimate/internal/domain/types"
)

// temperament classes a body as benefic, malefic, or neutral for the
// purpose of conjunction quality.
type temperament int

const (
	benefic temperament = iota
	neutral
	malefic
)

var temperaments = map[types.Body]temperament{
	types.Venus:   benefic,
	types.Jupiter: benefic,
	types.Moon:    benefic,
	types.Sun:     neutral,
	types.Mercury: neutral,
	types.Uranus:  neutral,
	types.Neptune: neutral,
	types.Mars:    malefic,
	types.Saturn:  malefic,
	types.Pluto:   malefic,
}

// Conjunction quality by temperament combination. Two benefics together
// flow; a benefic on a malefic lands near neutral, mildly strained; two
// malefics compound each other.
var conjunctionQuality = map[[2]temperament]float64{
	{benefic, benefic}: 0.7,
	{benefic, neutral}: 0.35,
	{benefic, malefic}: -0.15,
	{neutral, neutral}: 0.10,
	{neutral, malefic}: -0.40,
	{malefic, malefic}: -0.70,
}

// pairQuality is the resolved (body, body) -> quality map for conjunctions,
// built once at package init so runtime lookups are a single map access.
var pairQuality map[[2]types.Body]float64

func init() {
	bodies := types.Bodies()
	pairQuality = make(map[[2]types.Body]float64, len(bodies)*len(bodies))
	for _, a := range bodies {
		for _, b := range bodies {
			ta, tb := temperaments[a], temperaments[b]
			if tb < ta {
				ta, tb = tb, ta
			}
			pairQuality[[2]types.Body{a, b}] = conjunctionQuality[[2]temperament{ta, tb}]
		}
	}
}

// ConjunctionQuality returns the quality of a conjunction between the two
// bodies. Order does not matter. Unknown bodies resolve to zero.
func ConjunctionQuality(a, b types.Body) float64 {
	return pairQuality[[2]types.Body{a, b}]
}
