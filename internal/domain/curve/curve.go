// Package curve implements the tiered bonus curve shared by every derived
// calculation in the progression engine.
//
// The curve maps a trained skill level (0-20) to a cumulative bonus percent.
// Each band's per-level rate is higher than the previous, so marginal returns
// increase with training, and a flat mastery bonus lands at level 20.
package curve

import "math"

// Level band boundaries and per-level rates.
const (
	// MaxLevel is the highest trainable skill level.
	MaxLevel = 20

	// MaxTieredBonus is the global maximum bonus percent, reached at MaxLevel.
	MaxTieredBonus = 28.0

	beginnerRate     = 0.5 // levels 1-5
	intermediateRate = 1.0 // levels 6-10
	advancedRate     = 1.5 // levels 11-15
	expertRate       = 2.0 // levels 16-19
	masteryBonus     = 5.0 // flat, at level 20

	beginnerCap     = 5
	intermediateCap = 10
	advancedCap     = 15
	expertCap       = 19
)

// clamp bounds level to the valid [0, MaxLevel] domain. Out-of-range input is
// clamped rather than rejected; the curve is total.
func clamp(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// RawBonusPercent returns the cumulative bonus percent for a skill level.
// The result is 0 at level 0 and MaxTieredBonus at level 20.
func RawBonusPercent(level int) float64 {
	l := clamp(level)
	switch {
	case l == 0:
		return 0
	case l <= beginnerCap:
		return float64(l) * beginnerRate
	case l <= intermediateCap:
		return float64(beginnerCap)*beginnerRate +
			float64(l-beginnerCap)*intermediateRate
	case l <= advancedCap:
		return float64(beginnerCap)*beginnerRate +
			float64(intermediateCap-beginnerCap)*intermediateRate +
			float64(l-intermediateCap)*advancedRate
	case l <= expertCap:
		return float64(beginnerCap)*beginnerRate +
			float64(intermediateCap-beginnerCap)*intermediateRate +
			float64(advancedCap-intermediateCap)*advancedRate +
			float64(l-advancedCap)*expertRate
	default:
		// Mastered: the full expert cumulative plus the flat mastery bonus.
		return float64(beginnerCap)*beginnerRate +
			float64(intermediateCap-beginnerCap)*intermediateRate +
			float64(advancedCap-intermediateCap)*advancedRate +
			float64(expertCap-advancedCap)*expertRate +
			masteryBonus
	}
}

// ScaledBonusPercent re-maps the 0-28% curve onto an arbitrary ceiling,
// preserving the increasing-returns shape. ScaledBonusPercent(20, m) == m
// for any ceiling m.
func ScaledBonusPercent(level int, maxBonusPercent float64) float64 {
	return RawBonusPercent(level) / MaxTieredBonus * maxBonusPercent
}

// Multiplier converts the raw bonus percent into a multiplicative factor.
func Multiplier(level int) float64 {
	return 1 + RawBonusPercent(level)/100
}

// ScaledMultiplier converts a scaled bonus percent into a multiplicative factor.
func ScaledMultiplier(level int, maxBonusPercent float64) float64 {
	return 1 + ScaledBonusPercent(level, maxBonusPercent)/100
}

// TierName names the proficiency band a level falls in.
func TierName(level int) string {
	switch l := clamp(level); {
	case l == 0:
		return "Untrained"
	case l <= beginnerCap:
		return "Beginner"
	case l <= intermediateCap:
		return "Intermediate"
	case l <= advancedCap:
		return "Advanced"
	case l <= expertCap:
		return "Expert"
	default:
		return "Mastered"
	}
}

// Round is the shared nearest-integer rounding used by curve consumers when
// collapsing blended levels and scores.
func Round(x float64) int {
	return int(math.Round(x))
}
