package scoring

// Label bin boundaries. These are contractual: downstream classification
// keys off the exact same thresholds.
const (
	intensityMildAt    = 26.0
	intensityActiveAt  = 51.0
	intensityIntenseAt = 76.0
	intensityPeakAt    = 91.0

	harmonyChallengingAt = 21.0
	harmonyMixedAt       = 41.0
	harmonySupportiveAt  = 61.0
	harmonyFlowingAt     = 81.0
)

// IntensityLabel bins a normalized intensity into its label.
func IntensityLabel(v float64) string {
	switch {
	case v < intensityMildAt:
		return "calm"
	case v < intensityActiveAt:
		return "mild"
	case v < intensityIntenseAt:
		return "active"
	case v < intensityPeakAt:
		return "intense"
	default:
		return "peak"
	}
}

// HarmonyLabel bins a normalized harmony into its label.
func HarmonyLabel(v float64) string {
	switch {
	case v < harmonyChallengingAt:
		return "turbulent"
	case v < harmonyMixedAt:
		return "challenging"
	case v < harmonySupportiveAt:
		return "mixed"
	case v < harmonyFlowingAt:
		return "supportive"
	default:
		return "flowing"
	}
}

// Band is a coarse low/medium/high classification band reusing the label
// bin boundaries, used by meter decision tables.
type Band string

// Classification bands.
const (
	Low    Band = "low"
	Medium Band = "medium"
	High   Band = "high"
)

// IntensityBand classifies a normalized intensity: low below the "active"
// bin, high from the "intense" bin upward.
func IntensityBand(v float64) Band {
	switch {
	case v < intensityActiveAt:
		return Low
	case v < intensityIntenseAt:
		return Medium
	default:
		return High
	}
}

// HarmonyBand classifies a normalized harmony: low below the "mixed" bin,
// high from the "supportive" bin upward.
func HarmonyBand(v float64) Band {
	switch {
	case v < harmonyMixedAt:
		return Low
	case v < harmonySupportiveAt:
		return Medium
	default:
		return High
	}
}
