// Package catalog holds the static astrological lookup tables: base body
// weights, house bonuses, rulerships, essential dignities, and per-aspect
// intensity and quality. Tables are plain data, initialized once and
// read-only for the life of the process.
package catalog

import (
	"github.com/okian/astroclimate/internal/domain/types"
)

// Additive house bonuses by accidental strength class.
const (
	angularBonus   = 1.5 // houses 1, 4, 7, 10
	succedentBonus = 1.0 // houses 2, 5, 8, 11
	cadentBonus    = 0.5 // houses 3, 6, 9, 12
)

// baseWeights measure how much a body's condition matters structurally.
// Luminaries highest, social planets next, outer planets least.
var baseWeights = map[types.Body]float64{
	types.Sun:     4.0,
	types.Moon:    4.0,
	types.Mercury: 3.0,
	types.Venus:   3.0,
	types.Mars:    3.0,
	types.Jupiter: 3.5,
	types.Saturn:  3.5,
	types.Uranus:  2.5,
	types.Neptune: 2.5,
	types.Pluto:   2.5,
}

// rulers maps each sign to its modern ruling body.
var rulers = map[types.Sign]types.Body{
	types.Aries:       types.Mars,
	types.Taurus:      types.Venus,
	types.Gemini:      types.Mercury,
	types.Cancer:      types.Moon,
	types.Leo:         types.Sun,
	types.Virgo:       types.Mercury,
	types.Libra:       types.Venus,
	types.Scorpio:     types.Pluto,
	types.Sagittarius: types.Jupiter,
	types.Capricorn:   types.Saturn,
	types.Aquarius:    types.Uranus,
	types.Pisces:      types.Neptune,
}

// aspectIntensity is the fixed base intensity per aspect type. Conjunction
// and opposition are the strongest contacts; minor aspects trail off.
var aspectIntensity = map[types.AspectType]float64{
	types.Conjunction: 1.0,
	types.Opposition:  0.9,
	types.Square:      0.8,
	types.Trine:       0.7,
	types.Sextile:     0.6,
	types.Quincunx:    0.45,
	types.Semisextile: 0.3,
}

// aspectQuality is the fixed quality for every aspect except conjunction,
// whose quality is resolved per body pair (see pairs.go).
var aspectQuality = map[types.AspectType]float64{
	types.Trine:       0.8,
	types.Sextile:     0.6,
	types.Semisextile: 0.25,
	types.Square:      -0.8,
	types.Opposition:  -0.9,
	types.Quincunx:    -0.4,
}

// BaseWeight returns the structural base weight for a body.
func BaseWeight(b types.Body) (float64, bool) {
	w, ok := baseWeights[b]
	return w, ok
}

// HouseBonus returns the additive accidental bonus for a house placement.
// The house must already be validated to 1-12 by the caller.
func HouseBonus(house int) float64 {
	switch house {
	case 1, 4, 7, 10:
		return angularBonus
	case 2, 5, 8, 11:
		return succedentBonus
	default:
		return cadentBonus
	}
}

// Ruler returns the body ruling the given sign. The second return is false
// for an unknown sign, in which case no chart ruler applies.
func Ruler(sign types.Sign) (types.Body, bool) {
	b, ok := rulers[sign]
	return b, ok
}

// AspectIntensity returns the fixed base intensity for an aspect type.
func AspectIntensity(a types.AspectType) (float64, bool) {
	v, ok := aspectIntensity[a]
	return v, ok
}

// AspectQuality returns the fixed quality for a non-conjunction aspect type.
func AspectQuality(a types.AspectType) (float64, bool) {
	v, ok := aspectQuality[a]
	return v, ok
}
