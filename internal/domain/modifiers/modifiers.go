// Package modifiers combines a blended skill score with a gear multiplier
// into the effective-ability figure consumed by gig, recording, and rehearsal
// subsystems.
package modifiers

import "math"

const (
	// maxEffectiveLevel caps the final ability figure.
	maxEffectiveLevel = 100

	// neutralLevel is the system-wide "unknown means average" baseline. When
	// upstream skill or gear data cannot be fetched, callers substitute this
	// rather than failing.
	neutralLevel = 50
)

// Breakdown itemizes how the effective level was reached.
type Breakdown struct {
	BaseSkill  int `json:"baseSkill"`
	GearBonus  int `json:"gearBonus"`
	TotalBonus int `json:"totalBonus"`
}

// Modifiers is the computed performance figure for one member in one role.
// It is a value object, computed fresh on every call and never persisted.
type Modifiers struct {
	SkillLevel     int       `json:"skillLevel"`
	GearMultiplier float64   `json:"gearMultiplier"`
	EffectiveLevel int       `json:"effectiveLevel"`
	Breakdown      Breakdown `json:"breakdown"`
}

// Compute derives the effective level from a 0-100 skill score and a gear
// multiplier. The effective level is capped at 100; the total bonus is
// measured against the neutral baseline.
func Compute(skillLevel int, gearMultiplier float64) Modifiers {
	if skillLevel < 0 {
		skillLevel = 0
	}
	if gearMultiplier < 1.0 {
		gearMultiplier = 1.0
	}

	effective := int(math.Round(float64(skillLevel) * gearMultiplier))
	if effective > maxEffectiveLevel {
		effective = maxEffectiveLevel
	}

	return Modifiers{
		SkillLevel:     skillLevel,
		GearMultiplier: gearMultiplier,
		EffectiveLevel: effective,
		Breakdown: Breakdown{
			BaseSkill:  skillLevel,
			GearBonus:  effective - skillLevel,
			TotalBonus: effective - neutralLevel,
		},
	}
}

// Neutral returns the documented fallback used when upstream skill or gear
// data cannot be fetched: average skill, no gear bonus.
func Neutral() Modifiers {
	return Compute(neutralLevel, 1.0)
}

// NeutralLevel exposes the baseline for aggregators that need the raw figure.
func NeutralLevel() int {
	return neutralLevel
}
