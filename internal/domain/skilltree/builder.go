package skilltree

import (
	"fmt"
	"strings"
)

// Build expands track configurations into the flat catalog. It walks each
// config's tiers in fixed Basic -> Professional -> Mastery order, synthesizes
// slugs, applies per-tier defaults, and emits tier-chain and cross-track
// prerequisite edges.
//
// Duplicate relationship edges (by slug__requiredSlug key) are silently
// dropped, first writer wins. Two distinct definitions generating the same
// slug is a configuration authoring bug and fails the build.
func Build(configs []TrackConfig) (*Catalog, error) {
	cat := &Catalog{
		bySlug:    make(map[string]SkillDefinition),
		requires:  make(map[string][]SkillRelationship),
		trackSlug: make(map[string][]string),
	}
	edgeKeys := make(map[string]struct{})

	for _, cfg := range configs {
		if err := buildTrack(cat, edgeKeys, cfg); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func buildTrack(cat *Catalog, edgeKeys map[string]struct{}, cfg TrackConfig) error {
	prevSlug := ""
	for _, tier := range tierOrder {
		entry, ok := cfg.Tiers[tier]
		if !ok {
			continue
		}

		slug := entry.Slug
		if slug == "" {
			slug = fmt.Sprintf("%s_%s_%s", cfg.Prefix, tier, Sanitize(cfg.Track))
		}

		def := SkillDefinition{
			Slug:            slug,
			DisplayName:     entry.Name,
			Description:     entry.Description,
			Icon:            cfg.Icon,
			BaseXPGain:      defaultXP(tier, entry.XP),
			TrainingMinutes: defaultDuration(tier, entry.Duration),
			Category:        cfg.Category,
			Tier:            tier,
			Track:           cfg.Track,
		}
		if _, exists := cat.bySlug[slug]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, slug)
		}
		cat.bySlug[slug] = def
		cat.Definitions = append(cat.Definitions, def)
		cat.trackSlug[cfg.Track] = append(cat.trackSlug[cfg.Track], slug)

		if cfg.chained() && prevSlug != "" {
			addEdge(cat, edgeKeys, SkillRelationship{
				Slug:          slug,
				RequiredSlug:  prevSlug,
				RequiredValue: chainThreshold(tier, entry.RequiredValue),
				Type:          RelationTierPrerequisite,
				Track:         cfg.Track,
				Tier:          tier,
			})
		}

		for _, pre := range entry.Prerequisites {
			addEdge(cat, edgeKeys, SkillRelationship{
				Slug:          slug,
				RequiredSlug:  pre.Slug,
				RequiredValue: chainThreshold(tier, pre.RequiredValue),
				Type:          RelationCrossPrerequisite,
				Track:         cfg.Track,
				Tier:          tier,
			})
		}

		prevSlug = slug
	}
	return nil
}

// addEdge appends the relationship unless its composite key already exists.
func addEdge(cat *Catalog, edgeKeys map[string]struct{}, rel SkillRelationship) {
	key := rel.Slug + "__" + rel.RequiredSlug
	if _, seen := edgeKeys[key]; seen {
		return
	}
	edgeKeys[key] = struct{}{}
	cat.Relationships = append(cat.Relationships, rel)
	cat.requires[rel.Slug] = append(cat.requires[rel.Slug], rel)
}

func defaultXP(tier Tier, override int) int {
	if override > 0 {
		return override
	}
	switch tier {
	case TierBasic:
		return basicXP
	case TierProfessional:
		return profXP
	default:
		return masteryXP
	}
}

func defaultDuration(tier Tier, override int) int {
	if override > 0 {
		return override
	}
	switch tier {
	case TierBasic:
		return basicMins
	case TierProfessional:
		return profMins
	default:
		return masterMins
	}
}

// chainThreshold resolves the required-value for an edge landing on tier.
func chainThreshold(tier Tier, override int) int {
	if override > 0 {
		return override
	}
	if tier == TierMastery {
		return masteryThreshold
	}
	return professionalThreshold
}

// Sanitize normalizes a track name into its slug fragment: lower-case,
// "&" becomes "and", runs of non-alphanumerics collapse to single
// underscores, leading/trailing underscores are trimmed.
func Sanitize(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
