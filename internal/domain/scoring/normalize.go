package scoring

import "math"

// Normalization constants. The curve is linear up to the knee (which maps
// to kneeNormalized) and logarithmically compressed beyond it, so a single
// freakishly strong configuration set approaches but never exceeds 100.
// The default knees are sized to the contribution scale (one full-strength
// configuration yields an intensity product around 4-6): a single exact hard
// aspect lands in the high band, while busy charts compress in the log tail
// instead of saturating.
const (
	defaultIntensityKnee = 2.5
	defaultHarmonyKnee   = 4.0

	kneeNormalized = 70.0
	maxNormalized  = 100.0

	// NeutralHarmony is the normalized harmony of a zero raw total.
	NeutralHarmony = 50.0
)

// NormalizerOption applies a configuration option to the Normalizer.
type NormalizerOption func(*Normalizer)

// WithIntensityKnee sets the raw intensity value where compression starts.
func WithIntensityKnee(knee float64) NormalizerOption {
	return func(n *Normalizer) {
		if knee > 0 {
			n.intensityKnee = knee
		}
	}
}

// WithHarmonyKnee sets the raw harmony magnitude where compression starts.
func WithHarmonyKnee(knee float64) NormalizerOption {
	return func(n *Normalizer) {
		if knee > 0 {
			n.harmonyKnee = knee
		}
	}
}

// Normalizer maps unbounded raw totals onto 0-100 scales.
type Normalizer struct {
	intensityKnee float64
	harmonyKnee   float64
}

// NewNormalizer creates a Normalizer with configuration options.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		intensityKnee: defaultIntensityKnee,
		harmonyKnee:   defaultHarmonyKnee,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Intensity maps a raw intensity total onto [0, 100]. Monotonic
// non-decreasing everywhere; negative raw clamps to 0.
func (n *Normalizer) Intensity(raw float64) float64 {
	return softCeiling(raw, n.intensityKnee)
}

// Harmony maps a signed raw harmony total onto [0, 100] with 0 raw at the
// neutral midpoint 50. The soft-ceiling curve is mirrored around the
// midpoint, so Harmony(raw) + Harmony(-raw) == 100 exactly.
func (n *Normalizer) Harmony(raw float64) float64 {
	half := softCeiling(math.Abs(raw), n.harmonyKnee) / 2
	if raw < 0 {
		return NeutralHarmony - half
	}
	return NeutralHarmony + half
}

// softCeiling is linear from 0 at raw=0 to kneeNormalized at raw=knee,
// then compresses logarithmically toward (but never reaching) 100.
func softCeiling(raw, knee float64) float64 {
	switch {
	case raw <= 0 || math.IsNaN(raw):
		return 0
	case raw <= knee:
		return raw / knee * kneeNormalized
	case math.IsInf(raw, 1):
		return maxNormalized
	default:
		return maxNormalized - (maxNormalized-kneeNormalized)/(1+math.Log1p((raw-knee)/knee))
	}
}
