// Package roles maps band-member roles to their relevant skill slugs and
// blends per-skill progress into a single 0-100 ability score.
package roles

import (
	"strings"

	"github.com/veloria/encore/internal/domain/curve"
)

// Blend weighting between the best relevant skill and the average across
// matched skills. Inconsistent with the tiered-curve philosophy used
// elsewhere, but changing it would shift game balance; keep as-is.
const (
	maxWeight = 0.6
	avgWeight = 0.4
)

// maxScore caps the resolved ability figure.
const maxScore = 100

// skillTable maps canonical role names to the skill slugs relevant to that
// role: 2-5 slugs spanning tiers and closely related instrument variants.
var skillTable = map[string][]string{
	"Lead Guitar": {
		"instruments_basic_electric_guitar",
		"instruments_professional_electric_guitar",
		"instruments_mastery_electric_guitar",
		"instruments_professional_acoustic_guitar",
	},
	"Rhythm Guitar": {
		"instruments_basic_acoustic_guitar",
		"instruments_professional_acoustic_guitar",
		"instruments_mastery_acoustic_guitar",
		"instruments_basic_electric_guitar",
	},
	"Bass": {
		"instruments_basic_bass_guitar",
		"instruments_professional_bass_guitar",
		"instruments_mastery_bass_guitar",
	},
	"Drums": {
		"instruments_basic_drums",
		"instruments_professional_drums",
		"instruments_mastery_drums",
	},
	"Vocals": {
		"instruments_basic_vocals",
		"instruments_professional_vocals",
		"instruments_mastery_vocals",
		"songwriting_professional_vocal_production",
	},
	"Keyboard": {
		"instruments_basic_piano",
		"instruments_professional_piano",
		"instruments_basic_synthesizer",
		"instruments_professional_synthesizer",
	},
	"Piano": {
		"instruments_basic_piano",
		"instruments_professional_piano",
		"instruments_mastery_piano",
	},
	"Synth": {
		"instruments_basic_synthesizer",
		"instruments_professional_synthesizer",
		"instruments_mastery_synthesizer",
	},
	"DJ": {
		"instruments_basic_turntablism",
		"instruments_professional_turntablism",
		"instruments_mastery_turntablism",
		"songwriting_professional_daw",
	},
	"Violin": {
		"instruments_basic_violin",
		"instruments_professional_violin",
		"instruments_mastery_violin",
	},
	"Saxophone": {
		"instruments_basic_saxophone",
		"instruments_professional_saxophone",
		"instruments_mastery_saxophone",
	},
}

// SkillsFor returns the skill slugs relevant to a role. Exact (case-sensitive)
// table hits win; otherwise a case-insensitive substring match against the
// table keys is tried in both directions. Unknown roles return nil.
func SkillsFor(role string) []string {
	if slugs, ok := skillTable[role]; ok {
		return slugs
	}

	lower := strings.ToLower(strings.TrimSpace(role))
	if lower == "" {
		return nil
	}
	for key, slugs := range skillTable {
		k := strings.ToLower(key)
		if strings.Contains(lower, k) || strings.Contains(k, lower) {
			return slugs
		}
	}
	return nil
}

// Roles returns the canonical role names known to the table.
func Roles() []string {
	out := make([]string, 0, len(skillTable))
	for role := range skillTable {
		out = append(out, role)
	}
	return out
}

// ResolveSkillLevel blends per-skill progress over the relevant slugs into a
// 0-100 score. The blend takes the best matched level at maxWeight and the
// mean across matched entries at avgWeight, then rescales the tiered curve so
// a fully mastered skill set yields 100. Absent entries count toward the max
// as zero but are excluded from the average.
func ResolveSkillLevel(progress map[string]int, relevantSlugs []string) int {
	if len(relevantSlugs) == 0 {
		return 0
	}

	maxLevel := 0
	sum := 0
	matched := 0
	for _, slug := range relevantSlugs {
		level, ok := progress[slug]
		if !ok {
			continue
		}
		matched++
		sum += level
		if level > maxLevel {
			maxLevel = level
		}
	}
	if matched == 0 {
		return 0
	}

	avgLevel := float64(sum) / float64(matched)
	blended := curve.Round(float64(maxLevel)*maxWeight + avgLevel*avgWeight)

	score := curve.RawBonusPercent(blended) / curve.MaxTieredBonus * maxScore
	if score > maxScore {
		score = maxScore
	}
	return curve.Round(score)
}

// ResolveRole is the common composition: look up the role's slugs and blend
// the profile's progress over them. Unknown roles resolve to zero.
func ResolveRole(progress map[string]int, role string) int {
	return ResolveSkillLevel(progress, SkillsFor(role))
}
