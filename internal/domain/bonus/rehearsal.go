package bonus

import (
	"github.com/veloria/encore/internal/domain/roles"
)

// Rehearsal efficiency bounds.
const (
	maxInstrumentBonus = 0.5
	instrumentDivisor  = 40.0

	maxTheoryBonus = 0.1
	theoryDivisor  = 20.0
)

// RehearsalResult is the rehearsal efficiency multiplier for one profile.
type RehearsalResult struct {
	Multiplier      float64 `json:"multiplier"`
	InstrumentBonus float64 `json:"instrumentBonus"`
	TheoryBonus     float64 `json:"theoryBonus"`
}

// RehearsalEfficiency combines an instrument bonus over the roles being
// rehearsed with a music-theory bonus. The multiplier ranges 1.0-1.6.
//
// The instrument bonus is a direct level/40 ratio rather than the tiered
// curve used everywhere else. The inconsistency is deliberate game balance;
// switching it to the curve would silently change rehearsal pacing.
func RehearsalEfficiency(progress map[string]int, rehearsalRoles []string) RehearsalResult {
	instrument := 0.0
	if len(rehearsalRoles) > 0 {
		sum := 0.0
		for _, role := range rehearsalRoles {
			sum += float64(maxLevel(progress, roles.SkillsFor(role)))
		}
		avg := sum / float64(len(rehearsalRoles))
		instrument = avg / instrumentDivisor
		if instrument > maxInstrumentBonus {
			instrument = maxInstrumentBonus
		}
	}

	theoryLevel := maxLevel(progress, craftSlugs("Music Theory"))
	theory := float64(theoryLevel) / theoryDivisor * maxTheoryBonus
	if theory > maxTheoryBonus {
		theory = maxTheoryBonus
	}

	return RehearsalResult{
		Multiplier:      1.0 + instrument + theory,
		InstrumentBonus: instrument,
		TheoryBonus:     theory,
	}
}
