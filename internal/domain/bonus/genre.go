// Package bonus hosts the three independent consumers of the tiered curve:
// genre affinity, recording quality, and rehearsal efficiency. They read
// skill-progress maps directly and do not go through the modifier pipeline.
package bonus

import (
	"fmt"

	"github.com/veloria/encore/internal/domain/curve"
	"github.com/veloria/encore/internal/domain/skilltree"
)

// GenreResult is the genre affinity bonus for one profile.
type GenreResult struct {
	Genre           string  `json:"genre"`
	GenreSkillLevel int     `json:"genreSkillLevel"`
	BonusPercent    float64 `json:"bonusPercent"`
	Multiplier      float64 `json:"multiplier"`
}

// genreSlugs derives the three tier slugs of a genre track from its name.
func genreSlugs(genre string) []string {
	s := skilltree.Sanitize(genre)
	return []string{
		fmt.Sprintf("%s_%s_%s", skilltree.PrefixGenres, skilltree.TierBasic, s),
		fmt.Sprintf("%s_%s_%s", skilltree.PrefixGenres, skilltree.TierProfessional, s),
		fmt.Sprintf("%s_%s_%s", skilltree.PrefixGenres, skilltree.TierMastery, s),
	}
}

// maxLevel returns the highest trained level among the given slugs.
func maxLevel(progress map[string]int, slugs []string) int {
	best := 0
	for _, slug := range slugs {
		if level := progress[slug]; level > best {
			best = level
		}
	}
	return best
}

// GenreBonus finds the highest trained level across all tiers of the genre's
// track and applies the raw (unscaled, 28% ceiling) curve directly.
func GenreBonus(progress map[string]int, genre string) GenreResult {
	level := maxLevel(progress, genreSlugs(genre))
	percent := curve.RawBonusPercent(level)
	return GenreResult{
		Genre:           genre,
		GenreSkillLevel: level,
		BonusPercent:    percent,
		Multiplier:      1 + percent/100,
	}
}

// BandGenreBonus averages each eligible member's bonus percent and reports
// the highest level seen across members for display. Only player-backed
// (non-touring) members with fetched progress are eligible; with none, the
// result is the zero bonus.
func BandGenreBonus(memberProgress []map[string]int, genre string) GenreResult {
	slugs := genreSlugs(genre)

	bestLevel := 0
	totalPercent := 0.0
	for _, progress := range memberProgress {
		level := maxLevel(progress, slugs)
		if level > bestLevel {
			bestLevel = level
		}
		totalPercent += curve.RawBonusPercent(level)
	}

	percent := 0.0
	if len(memberProgress) > 0 {
		percent = totalPercent / float64(len(memberProgress))
	}
	return GenreResult{
		Genre:           genre,
		GenreSkillLevel: bestLevel,
		BonusPercent:    percent,
		Multiplier:      1 + percent/100,
	}
}
