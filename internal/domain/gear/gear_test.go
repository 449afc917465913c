package gear_test

import (
	"testing"

	gear "github.com/veloria/encore/internal/domain/gear"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMultiplier(t *testing.T) {
	Convey("Given equipped gear for a role", t, func() {
		Convey("When nothing is equipped", func() {
			So(gear.Multiplier(nil, "Drums"), ShouldEqual, 1.0)
		})

		Convey("When the role is unknown", func() {
			items := []gear.Item{{Category: "guitar", Rarity: gear.RarityLegendary}}
			So(gear.Multiplier(items, "Theremin"), ShouldEqual, 1.0)
		})

		Convey("When one matching item carries only its rarity bonus", func() {
			So(gear.Multiplier([]gear.Item{
				{Category: "electric_guitar", Rarity: gear.RarityCommon},
			}, "Lead Guitar"), ShouldAlmostEqual, 1.05, 1e-9)

			So(gear.Multiplier([]gear.Item{
				{Category: "drum_kit", Rarity: gear.RarityRare},
			}, "Drums"), ShouldAlmostEqual, 1.18, 1e-9)
		})

		Convey("When an item adds a performance stat boost", func() {
			items := []gear.Item{{
				Category:   "microphone",
				Rarity:     gear.RarityEpic,
				StatBoosts: map[string]int{"performance": 8, "charisma": 50},
			}}
			// 0.25 rarity + 0.08 performance; charisma is ignored
			So(gear.Multiplier(items, "Vocals"), ShouldAlmostEqual, 1.33, 1e-9)
		})

		Convey("When non-matching items are mixed in", func() {
			items := []gear.Item{
				{Category: "amplifier", Rarity: gear.RarityUncommon},
				{Category: "drum_kit", Rarity: gear.RarityLegendary},
			}
			So(gear.Multiplier(items, "Bass"), ShouldAlmostEqual, 1.10, 1e-9)
		})

		Convey("When the subcategory matches instead of the category", func() {
			items := []gear.Item{{
				Category:    "accessory",
				Subcategory: "pedal",
				Rarity:      gear.RarityRare,
			}}
			So(gear.Multiplier(items, "Lead Guitar"), ShouldAlmostEqual, 1.18, 1e-9)
		})

		Convey("When many legendary items stack", func() {
			items := make([]gear.Item, 0, 6)
			for i := 0; i < 6; i++ {
				items = append(items, gear.Item{
					Category:   "turntable",
					Rarity:     gear.RarityLegendary,
					StatBoosts: map[string]int{"performance": 10},
				})
			}

			Convey("Then the total bonus caps and the multiplier never exceeds 1.5", func() {
				So(gear.Multiplier(items, "DJ"), ShouldAlmostEqual, 1.5, 1e-9)
			})
		})

		Convey("When matching is case-insensitive in both directions", func() {
			So(gear.Multiplier([]gear.Item{
				{Category: "Electric_Guitar", Rarity: gear.RarityCommon},
			}, "Lead Guitar"), ShouldAlmostEqual, 1.05, 1e-9)

			// Item category is a substring of the keyword.
			So(gear.Multiplier([]gear.Item{
				{Category: "drum", Rarity: gear.RarityCommon},
			}, "Drums"), ShouldAlmostEqual, 1.05, 1e-9)
		})
	})
}
