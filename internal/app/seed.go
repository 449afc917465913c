package service

import (
	"context"

	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/gear"
	"github.com/veloria/encore/pkg/logger"
)

// demoBandID is the fixture band created by SeedDemoData.
const demoBandID = "demo-band"

// SeedDemoData loads a small roster and progress fixture so the read
// endpoints return data out of the box. Safe to call more than once only on
// an empty store; intended for local runs behind the seed_demo config flag.
func (s *Service) SeedDemoData(ctx context.Context) error {
	type seedProfile struct {
		user   string
		role   string
		levels map[string]int
		items  []gear.Item
	}

	fixtures := []seedProfile{
		{
			user: "demo-lead",
			role: "Lead Guitar",
			levels: map[string]int{
				"instruments_basic_electric_guitar":        20,
				"instruments_professional_electric_guitar": 12,
				"genres_basic_rock_and_metal":              8,
			},
			items: []gear.Item{
				{Category: "electric_guitar", Subcategory: "solid_body", Rarity: gear.RarityRare},
				{Category: "amplifier", Subcategory: "tube", Rarity: gear.RarityUncommon,
					StatBoosts: map[string]int{"performance": 3}},
			},
		},
		{
			user: "demo-drummer",
			role: "Drums",
			levels: map[string]int{
				"instruments_basic_drums":        15,
				"instruments_professional_drums": 6,
			},
			items: []gear.Item{
				{Category: "drum_kit", Subcategory: "acoustic", Rarity: gear.RarityCommon},
			},
		},
		{
			user: "demo-vocalist",
			role: "Vocals",
			levels: map[string]int{
				"instruments_basic_vocals":                  18,
				"songwriting_professional_vocal_production": 5,
				"songwriting_basic_mixing":                  10,
			},
			items: []gear.Item{
				{Category: "microphone", Subcategory: "condenser", Rarity: gear.RarityEpic},
			},
		},
	}

	for _, f := range fixtures {
		profileID, err := s.profiles.Create(ctx, f.user)
		if err != nil {
			return err
		}
		for slug, level := range f.levels {
			if err := s.progress.SetLevel(ctx, profileID, slug, level); err != nil {
				return err
			}
		}
		for _, item := range f.items {
			if err := s.inventory.AddItem(ctx, profileID, item, true); err != nil {
				return err
			}
		}
		if _, err := s.roster.AddMember(ctx, demoBandID, band.Member{
			ProfileID: profileID,
			Role:      f.role,
		}); err != nil {
			return err
		}
	}

	// One hired touring bassist rounds out the demo roster.
	if _, err := s.roster.AddMember(ctx, demoBandID, band.Member{
		Role:        "Bass",
		Touring:     true,
		TouringTier: 3,
	}); err != nil {
		return err
	}

	s.logger.Info(ctx, "seeded demo data",
		logger.String("band", demoBandID),
		logger.Int("profiles", len(fixtures)),
	)
	return nil
}
