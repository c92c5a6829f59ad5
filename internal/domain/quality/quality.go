// Package quality classifies an influence as harmonious, discordant, or
// neutral, returning a value in [-1, +1].
package quality

import (
	"github.com/okian/astroclimate/internal/domain/catalog"
	"github.com/okian/astroclimate/internal/domain/types"
)

// Quality returns Q for an aspect between a natal and a transiting body.
//
// Soft aspects score positive and hard aspects negative, scaled by aspect
// hardness, from a fixed table. Conjunction is ambiguous by nature, so its
// quality is resolved dynamically from the body pair: two benefics flow,
// benefic-on-malefic lands near neutral, two malefics compound.
//
// Unknown aspect types score zero; the transit calculator is the layer that
// rejects them as contract violations.
func Quality(aspect types.AspectType, natal, transiting types.Body) float64 {
	if aspect == types.Conjunction {
		return catalog.ConjunctionQuality(natal, transiting)
	}
	q, ok := catalog.AspectQuality(aspect)
	if !ok {
		return 0
	}
	return q
}
