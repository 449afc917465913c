// Package skilltree expands declarative track templates into the static skill
// catalog: flat skill definitions plus a directed prerequisite graph.
//
// The catalog is built once at process start and treated as read-only
// reference data for the process lifetime.
package skilltree

// Tier is one of the three sequential proficiency bands within a track.
type Tier string

// Tier values, in fixed progression order.
const (
	TierBasic        Tier = "basic"
	TierProfessional Tier = "professional"
	TierMastery      Tier = "mastery"
)

// tierOrder fixes the walk order Basic -> Professional -> Mastery.
var tierOrder = []Tier{TierBasic, TierProfessional, TierMastery}

// Track prefixes used by the built-in catalog. Role tables and bonus modules
// derive slugs from these.
const (
	PrefixInstruments = "instruments"
	PrefixGenres      = "genres"
	PrefixSongwriting = "songwriting"
)

// Per-tier defaults for XP gain and training duration.
const (
	basicXP    = 6
	basicMins  = 30
	profXP     = 10
	profMins   = 45
	masteryXP  = 14
	masterMins = 60

	// Thresholds on the required skill's accumulated value for unlocking the
	// next tier, unless overridden per entry.
	professionalThreshold = 250
	masteryThreshold      = 650
)

// SkillDefinition is an immutable reference record for one skill at one tier
// within one track.
type SkillDefinition struct {
	Slug            string `json:"slug" yaml:"slug"`
	DisplayName     string `json:"display_name" yaml:"display_name"`
	Description     string `json:"description" yaml:"description"`
	Icon            string `json:"icon" yaml:"icon"`
	BaseXPGain      int    `json:"base_xp_gain" yaml:"base_xp_gain"`
	TrainingMinutes int    `json:"training_duration_minutes" yaml:"training_duration_minutes"`
	Category        string `json:"category" yaml:"category"`
	Tier            Tier   `json:"tier" yaml:"tier"`
	Track           string `json:"track" yaml:"track"`
}

// RelationType distinguishes tier-chain edges from cross-track edges.
type RelationType string

// Relationship types.
const (
	RelationTierPrerequisite  RelationType = "tier_prerequisite"
	RelationCrossPrerequisite RelationType = "cross_prerequisite"
)

// SkillRelationship is a directed prerequisite edge: Slug requires
// RequiredSlug at RequiredValue. Edges always point from a higher tier to an
// equal-or-lower tier skill, so the graph is acyclic by construction.
type SkillRelationship struct {
	Slug          string       `json:"skill_slug" yaml:"skill_slug"`
	RequiredSlug  string       `json:"required_skill_slug" yaml:"required_skill_slug"`
	RequiredValue int          `json:"required_value" yaml:"required_value"`
	Type          RelationType `json:"type" yaml:"type"`
	Track         string       `json:"track" yaml:"track"`
	Tier          Tier         `json:"tier" yaml:"tier"`
}

// Prereq declares an explicit cross-track prerequisite on a tier entry.
type Prereq struct {
	Slug          string `yaml:"slug"`
	RequiredValue int    `yaml:"required_value"`
}

// TierEntry describes one tier of a track template.
type TierEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Slug overrides the synthesized {prefix}_{tier}_{track} slug.
	Slug string `yaml:"slug"`

	// XP and Duration override the per-tier defaults when positive.
	XP       int `yaml:"xp"`
	Duration int `yaml:"duration"`

	// RequiredValue overrides the tier-chain threshold when positive.
	RequiredValue int `yaml:"required_value"`

	// Prerequisites adds explicit cross-track edges.
	Prerequisites []Prereq `yaml:"prerequisites"`
}

// TrackConfig is one declarative track template: an instrument, genre, or
// production craft with up to three tiered skills.
type TrackConfig struct {
	Prefix   string `yaml:"prefix"`
	Category string `yaml:"category"`
	Track    string `yaml:"track"`
	Icon     string `yaml:"icon"`

	// ChainPrerequisites controls tier-chain edge emission. Nil means
	// enabled; tracks modelling multi-parent capstones disable it.
	ChainPrerequisites *bool `yaml:"chain_prerequisites"`

	Tiers map[Tier]TierEntry `yaml:"tiers"`
}

// chained reports whether tier-chain edges are emitted for this track.
func (c TrackConfig) chained() bool {
	return c.ChainPrerequisites == nil || *c.ChainPrerequisites
}

// Catalog is the build output: two flat read-only collections plus lookup
// indexes. Represent the graph as an adjacency list keyed by slug, not as
// object references.
type Catalog struct {
	Definitions   []SkillDefinition
	Relationships []SkillRelationship

	bySlug    map[string]SkillDefinition
	requires  map[string][]SkillRelationship
	trackSlug map[string][]string // track name -> slugs in tier order
}

// Definition returns the definition for slug, if present.
func (c *Catalog) Definition(slug string) (SkillDefinition, bool) {
	d, ok := c.bySlug[slug]
	return d, ok
}

// PrerequisitesOf returns the outgoing prerequisite edges for slug.
func (c *Catalog) PrerequisitesOf(slug string) []SkillRelationship {
	return c.requires[slug]
}

// TrackSlugs returns the slugs of a track in tier order.
func (c *Catalog) TrackSlugs(track string) []string {
	return c.trackSlug[track]
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.Definitions)
}
