package bonus

import (
	"fmt"

	"github.com/veloria/encore/internal/domain/curve"
	"github.com/veloria/encore/internal/domain/skilltree"
)

// recordingCategory is one of the five independent skill categories feeding
// recording quality, each with its own bonus ceiling.
type recordingCategory struct {
	name    string
	track   string
	ceiling float64
}

// recordingCategories sum to a 30% theoretical maximum.
var recordingCategories = []recordingCategory{
	{name: "mixing", track: "Mixing", ceiling: 8},
	{name: "daw", track: "DAW", ceiling: 5},
	{name: "production", track: "Production", ceiling: 7},
	{name: "vocalProduction", track: "Vocal Production", ceiling: 5},
	{name: "theory", track: "Music Theory", ceiling: 5},
}

// RecordingResult is the recording quality bonus for one profile.
type RecordingResult struct {
	TotalBonusPercent float64            `json:"totalBonusPercent"`
	Multiplier        float64            `json:"multiplier"`
	Breakdown         map[string]float64 `json:"breakdown"`
}

// craftSlugs derives the three tier slugs of a production craft track.
func craftSlugs(track string) []string {
	s := skilltree.Sanitize(track)
	return []string{
		fmt.Sprintf("%s_%s_%s", skilltree.PrefixSongwriting, skilltree.TierBasic, s),
		fmt.Sprintf("%s_%s_%s", skilltree.PrefixSongwriting, skilltree.TierProfessional, s),
		fmt.Sprintf("%s_%s_%s", skilltree.PrefixSongwriting, skilltree.TierMastery, s),
	}
}

// RecordingBonus scores each category at its own ceiling using the scaled
// curve over the category's best trained level, then sums the five.
func RecordingBonus(progress map[string]int) RecordingResult {
	breakdown := make(map[string]float64, len(recordingCategories))
	total := 0.0
	for _, cat := range recordingCategories {
		level := maxLevel(progress, craftSlugs(cat.track))
		b := curve.ScaledBonusPercent(level, cat.ceiling)
		breakdown[cat.name] = b
		total += b
	}
	return RecordingResult{
		TotalBonusPercent: total,
		Multiplier:        1 + total/100,
		Breakdown:         breakdown,
	}
}
