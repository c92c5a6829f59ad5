// Package types contains common identifiers used across the scoring engine.
package types

// Body identifies a planetary body.
type Body string

// Planetary bodies known to the engine.
const (
	Sun     Body = "sun"
	Moon    Body = "moon"
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Uranus  Body = "uranus"
	Neptune Body = "neptune"
	Pluto   Body = "pluto"
)

// Bodies lists every known body in a fixed order.
func Bodies() []Body {
	return []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
}

// Sign identifies a zodiac sign.
type Sign string

// Zodiac signs in ecliptic order.
const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs lists the twelve signs in ecliptic order.
func Signs() []Sign {
	return []Sign{
		Aries, Taurus, Gemini, Cancer, Leo, Virgo,
		Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
	}
}

// AspectType identifies the geometric relation between two bodies.
type AspectType string

// Aspect types, majors first.
const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
	Quincunx    AspectType = "quincunx"
	Semisextile AspectType = "semisextile"
)

// Aspects lists every known aspect type.
func Aspects() []AspectType {
	return []AspectType{Conjunction, Sextile, Square, Trine, Opposition, Quincunx, Semisextile}
}

// Hardness classifies an aspect by the character of its influence.
type Hardness string

// Hardness classes. Conjunction and the minor aspects are neutral: their
// character comes from the bodies involved, not the geometry alone.
const (
	Hard    Hardness = "hard"
	Soft    Hardness = "soft"
	Neutral Hardness = "neutral"
)

// Hardness returns the hardness class for the aspect type.
func (a AspectType) Hardness() Hardness {
	switch a {
	case Square, Opposition:
		return Hard
	case Trine, Sextile:
		return Soft
	default:
		return Neutral
	}
}
