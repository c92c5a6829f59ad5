package meter

import (
	"github.com/okian/astroclimate/internal/domain/types"
)

// RetroAdjust is an optional post-hoc adjustment: when the named body is
// transiting retrograde anywhere in the filtered subset, the meter's raw
// harmony is halved before normalization and a note is recorded.
type RetroAdjust struct {
	Body types.Body
}

// Definition declares one meter: an identity, a presentation category, a
// declarative filter, and an optional retrograde adjustment. The
// classification table is resolved from the category.
type Definition struct {
	ID       string
	Name     string
	Category Category
	Filter   Filter
	Retro    *RetroAdjust
}

// House triplicities by element, used by the element meters.
var (
	fireHouses  = []int{1, 5, 9}
	earthHouses = []int{2, 6, 10}
	airHouses   = []int{3, 7, 11}
	waterHouses = []int{4, 8, 12}
)

// Definitions returns the fixed registry of all 23 meters in presentation
// order. The returned slice is freshly allocated; the definitions are values
// and safe to share.
func Definitions() []Definition {
	return []Definition{
		// Global.
		{ID: "overall", Name: "Overall Climate", Category: CategoryGlobal},

		// Element, filtered by house triplicity.
		{ID: "fire", Name: "Fire", Category: CategoryElement, Filter: Filter{Houses: fireHouses}},
		{ID: "earth", Name: "Earth", Category: CategoryElement, Filter: Filter{Houses: earthHouses}},
		{ID: "air", Name: "Air", Category: CategoryElement, Filter: Filter{Houses: airHouses}},
		{ID: "water", Name: "Water", Category: CategoryElement, Filter: Filter{Houses: waterHouses}},

		// Cognitive.
		{
			ID: "mind", Name: "Mind", Category: CategoryCognitive,
			Filter: Filter{AnyBodies: []types.Body{types.Mercury}},
			Retro:  &RetroAdjust{Body: types.Mercury},
		},
		{
			ID: "communication", Name: "Communication", Category: CategoryCognitive,
			Filter: Filter{AnyBodies: []types.Body{types.Mercury}, Houses: airHouses},
		},
		{
			ID: "learning", Name: "Learning", Category: CategoryCognitive,
			Filter: Filter{AnyBodies: []types.Body{types.Mercury, types.Jupiter}, Houses: []int{3, 9}},
		},

		// Emotional.
		{
			ID: "mood", Name: "Mood", Category: CategoryEmotional,
			Filter: Filter{AnyBodies: []types.Body{types.Moon}},
		},
		{
			ID: "ease", Name: "Emotional Ease", Category: CategoryEmotional,
			Filter: Filter{AnyBodies: []types.Body{types.Moon, types.Venus}, Hardness: types.Soft},
		},
		{
			ID: "stress", Name: "Stress Load", Category: CategoryEmotional,
			Filter: Filter{AnyBodies: []types.Body{types.Moon, types.Saturn, types.Pluto}, Hardness: types.Hard},
		},

		// Physical / action.
		{
			ID: "energy", Name: "Energy", Category: CategoryPhysical,
			Filter: Filter{AnyBodies: []types.Body{types.Sun, types.Mars}},
		},
		{
			ID: "drive", Name: "Drive", Category: CategoryPhysical,
			Filter: Filter{AnyBodies: []types.Body{types.Mars}, Hardness: types.Hard},
		},
		{
			ID: "vitality", Name: "Vitality", Category: CategoryPhysical,
			Filter: Filter{AnyBodies: []types.Body{types.Sun}, Houses: []int{1, 6}},
		},
		{
			ID: "recovery", Name: "Recovery", Category: CategoryPhysical,
			Filter: Filter{AnyBodies: []types.Body{types.Mars, types.Saturn}, Hardness: types.Soft},
		},

		// Life domain.
		{
			ID: "career", Name: "Career", Category: CategoryLifeDomain,
			Filter: Filter{AnyBodies: []types.Body{types.Sun, types.Jupiter, types.Saturn}, Houses: earthHouses},
		},
		{
			ID: "finance", Name: "Finance", Category: CategoryLifeDomain,
			Filter: Filter{AnyBodies: []types.Body{types.Venus, types.Jupiter, types.Saturn}, Houses: []int{2, 8}},
		},
		{
			ID: "love", Name: "Love", Category: CategoryLifeDomain,
			Filter: Filter{AnyBodies: []types.Body{types.Venus, types.Mars}, Houses: []int{5, 7}},
		},
		{
			ID: "home", Name: "Home", Category: CategoryLifeDomain,
			Filter: Filter{Houses: []int{4, 12}},
		},
		{
			ID: "travel", Name: "Travel", Category: CategoryLifeDomain,
			Filter: Filter{AnyBodies: []types.Body{types.Jupiter}, Houses: []int{3, 9, 12}},
		},

		// Specialized.
		{
			ID: "karmic", Name: "Karmic Lessons", Category: CategorySpecialized,
			Filter: Filter{AnyBodies: []types.Body{types.Saturn, types.Pluto}, Hardness: types.Hard},
			Retro:  &RetroAdjust{Body: types.Saturn},
		},
		{
			ID: "transformation", Name: "Transformation", Category: CategorySpecialized,
			Filter: Filter{AnyBodies: []types.Body{types.Uranus, types.Pluto}},
		},
		{
			ID: "luck", Name: "Luck", Category: CategorySpecialized,
			Filter: Filter{AnyBodies: []types.Body{types.Venus, types.Jupiter}, Hardness: types.Soft},
		},
	}
}
