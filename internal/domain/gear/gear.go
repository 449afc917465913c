// Package gear matches equipped inventory to band-member roles and combines
// rarity-tier bonuses with item-specific stat boosts into a multiplier.
package gear

import "strings"

// Rarity grades an item.
type Rarity string

// Rarity tiers, worst to best.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityBonus is the base contribution of a matched item by rarity.
var rarityBonus = map[Rarity]float64{
	RarityCommon:    0.05,
	RarityUncommon:  0.10,
	RarityRare:      0.18,
	RarityEpic:      0.25,
	RarityLegendary: 0.35,
}

// maxTotalBonus caps the summed gear bonus; the multiplier never exceeds 1.5.
const maxTotalBonus = 0.5

// performanceStat is the stat-boost key that contributes to the multiplier.
const performanceStat = "performance"

// Item is one piece of equipped gear.
type Item struct {
	Category    string         `json:"category"`
	Subcategory string         `json:"subcategory"`
	Rarity      Rarity         `json:"rarity"`
	StatBoosts  map[string]int `json:"stat_boosts,omitempty"`
}

// roleKeywords maps roles to the category keywords their gear matches.
var roleKeywords = map[string][]string{
	"Lead Guitar":   {"guitar", "electric_guitar", "amplifier", "pedal"},
	"Rhythm Guitar": {"guitar", "acoustic_guitar", "amplifier"},
	"Bass":          {"bass", "amplifier"},
	"Drums":         {"drum", "percussion", "cymbal"},
	"Vocals":        {"microphone", "vocal"},
	"Keyboard":      {"keyboard", "piano", "synth"},
	"Piano":         {"piano", "keyboard"},
	"Synth":         {"synth", "keyboard", "controller"},
	"DJ":            {"turntable", "controller", "dj", "mixer"},
	"Violin":        {"violin", "string", "bow"},
	"Saxophone":     {"saxophone", "reed", "brass"},
}

// keywordsFor mirrors the role resolver's fallback: exact key first, then a
// case-insensitive substring match in either direction.
func keywordsFor(role string) []string {
	if kws, ok := roleKeywords[role]; ok {
		return kws
	}
	lower := strings.ToLower(strings.TrimSpace(role))
	if lower == "" {
		return nil
	}
	for key, kws := range roleKeywords {
		k := strings.ToLower(key)
		if strings.Contains(lower, k) || strings.Contains(k, lower) {
			return kws
		}
	}
	return nil
}

// matches reports whether the item's category or subcategory keyword-matches
// the role's table entry; inclusion is checked in both directions,
// case-insensitively.
func matches(item Item, keywords []string) bool {
	cat := strings.ToLower(item.Category)
	sub := strings.ToLower(item.Subcategory)
	for _, kw := range keywords {
		for _, field := range []string{cat, sub} {
			if field == "" {
				continue
			}
			if strings.Contains(field, kw) || strings.Contains(kw, field) {
				return true
			}
		}
	}
	return false
}

// Multiplier sums rarity base bonuses and performance stat boosts across the
// equipped items that match the role, caps the total bonus at maxTotalBonus,
// and returns 1 plus the capped bonus. Non-matching items contribute nothing.
func Multiplier(equipped []Item, role string) float64 {
	keywords := keywordsFor(role)
	if len(keywords) == 0 || len(equipped) == 0 {
		return 1.0
	}

	total := 0.0
	for _, item := range equipped {
		if !matches(item, keywords) {
			continue
		}
		total += rarityBonus[item.Rarity]
		if perf, ok := item.StatBoosts[performanceStat]; ok {
			total += float64(perf) / 100
		}
	}
	if total > maxTotalBonus {
		total = maxTotalBonus
	}
	return 1.0 + total
}
