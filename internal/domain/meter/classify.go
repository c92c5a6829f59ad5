package meter

import (
	"fmt"

	"github.com/okian/astroclimate/internal/domain/scoring"
)

// Category groups meters for presentation. The evaluation protocol is
// category-agnostic.
type Category string

// Presentation categories.
const (
	CategoryGlobal      Category = "global"
	CategoryElement     Category = "element"
	CategoryCognitive   Category = "cognitive"
	CategoryEmotional   Category = "emotional"
	CategoryPhysical    Category = "physical"
	CategoryLifeDomain  Category = "life-domain"
	CategorySpecialized Category = "specialized"
)

// Outcome is one cell of a classification table: the state label plus its
// narrative and ranked advice.
type Outcome struct {
	State     string
	Narrative string
	Advice    []string
}

// Table is a 3x3 decision table keyed by intensity band then harmony band.
// All tables share the same band boundaries as the normalizer's label bins.
type Table map[scoring.Band]map[scoring.Band]Outcome

// Classify resolves the outcome for a normalized (intensity, harmony) pair.
func (t Table) Classify(intensity, harmony float64) Outcome {
	return t[scoring.IntensityBand(intensity)][scoring.HarmonyBand(harmony)]
}

// Shared state labels across all tables. Meter-specific flavor lives in the
// narrative and advice, never in ad hoc thresholds.
const (
	stateUndercurrent = "Undercurrent"
	stateSteady       = "Steady"
	stateGentleFlow   = "Gentle Flow"
	stateFriction     = "Friction"
	stateActive       = "Active"
	stateProductive   = "Productive Flow"
	stateStorm        = "Storm"
	stateHighVoltage  = "High Voltage"
	stateBreakthrough = "Breakthrough"
)

// QuietOutcome is the canonical reading for an empty filtered subset. It is
// fixed data, bit-for-bit reproducible.
var QuietOutcome = Outcome{
	State:     "Quiet",
	Narrative: "No significant activity registers in this area today.",
	Advice:    []string{"Nothing demands attention here; invest your energy where the sky is busier."},
}

// newTable builds a classification table themed for one area of life. The
// theme only flavors the narrative and advice text; the decision structure
// is identical for every meter.
func newTable(theme string) Table {
	return Table{
		scoring.Low: {
			scoring.Low: Outcome{
				State:     stateUndercurrent,
				Narrative: fmt.Sprintf("A faint undertow runs through your %s; little is visible on the surface.", theme),
				Advice: []string{
					fmt.Sprintf("Small irritations around your %s pass quickly if you let them.", theme),
					"Avoid reading too much into minor friction.",
				},
			},
			scoring.Medium: Outcome{
				State:     stateSteady,
				Narrative: fmt.Sprintf("Your %s holds steady with little outside pressure.", theme),
				Advice: []string{
					"Maintain existing routines; no course correction is needed.",
				},
			},
			scoring.High: Outcome{
				State:     stateGentleFlow,
				Narrative: fmt.Sprintf("A mild supportive current favors your %s without demanding anything.", theme),
				Advice: []string{
					fmt.Sprintf("Quietly consolidate gains in your %s.", theme),
					"Good day for low-effort maintenance work.",
				},
			},
		},
		scoring.Medium: {
			scoring.Low: Outcome{
				State:     stateFriction,
				Narrative: fmt.Sprintf("Noticeable resistance is working against your %s today.", theme),
				Advice: []string{
					"Slow down and double-check before committing.",
					fmt.Sprintf("Postpone optional risks involving your %s.", theme),
				},
			},
			scoring.Medium: Outcome{
				State:     stateActive,
				Narrative: fmt.Sprintf("Your %s is stirred up, with mixed currents pulling both ways.", theme),
				Advice: []string{
					"Channel the activity into one concrete task.",
					"Expect some push and pull; neither dominates.",
				},
			},
			scoring.High: Outcome{
				State:     stateProductive,
				Narrative: fmt.Sprintf("Supportive momentum is behind your %s; effort pays off easily.", theme),
				Advice: []string{
					fmt.Sprintf("Lean in: initiatives around your %s find traction now.", theme),
					"Schedule the important conversation or decision today.",
				},
			},
		},
		scoring.High: {
			scoring.Low: Outcome{
				State:     stateStorm,
				Narrative: fmt.Sprintf("Heavy, discordant pressure bears on your %s; this is a peak-stress window.", theme),
				Advice: []string{
					"Do not force outcomes; protect what already works.",
					"Delay irreversible choices until the pressure passes.",
					fmt.Sprintf("Tend to basics that keep your %s grounded.", theme),
				},
			},
			scoring.Medium: Outcome{
				State:     stateHighVoltage,
				Narrative: fmt.Sprintf("Intense, ambivalent energy charges your %s; outcomes follow your handling.", theme),
				Advice: []string{
					"High stakes cut both ways; act deliberately, not reactively.",
					"Burn off excess charge with focused work.",
				},
			},
			scoring.High: Outcome{
				State:     stateBreakthrough,
				Narrative: fmt.Sprintf("A rare strong and harmonious window opens for your %s.", theme),
				Advice: []string{
					fmt.Sprintf("Make your boldest move involving your %s now.", theme),
					"Windows like this close; do not wait for a better day.",
				},
			},
		},
	}
}

// tables holds one themed table per category, built once at package init
// and read-only afterwards.
var tables = map[Category]Table{
	CategoryGlobal:      newTable("overall climate"),
	CategoryElement:     newTable("elemental balance"),
	CategoryCognitive:   newTable("mental life"),
	CategoryEmotional:   newTable("emotional life"),
	CategoryPhysical:    newTable("physical energy"),
	CategoryLifeDomain:  newTable("practical affairs"),
	CategorySpecialized: newTable("deeper currents"),
}
