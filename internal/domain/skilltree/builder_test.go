package skilltree_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tree "github.com/veloria/encore/internal/domain/skilltree"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitize(t *testing.T) {
	Convey("Given track names", t, func() {
		Convey("Then slug fragments are lower-cased and underscored", func() {
			So(tree.Sanitize("Electric Guitar"), ShouldEqual, "electric_guitar")
			So(tree.Sanitize("Rock & Metal"), ShouldEqual, "rock_and_metal")
			So(tree.Sanitize("Hip Hop"), ShouldEqual, "hip_hop")
			So(tree.Sanitize("DAW"), ShouldEqual, "daw")
		})

		Convey("Then punctuation runs collapse to a single underscore", func() {
			So(tree.Sanitize("R&B / Soul"), ShouldEqual, "randb_soul")
			So(tree.Sanitize("  Lo-Fi!! "), ShouldEqual, "lo_fi")
			So(tree.Sanitize("--edge--"), ShouldEqual, "edge")
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a single three-tier track", t, func() {
		cfg := tree.TrackConfig{
			Prefix:   tree.PrefixInstruments,
			Category: "instrument",
			Track:    "Electric Guitar",
			Icon:     "guitar-electric",
			Tiers: map[tree.Tier]tree.TierEntry{
				tree.TierBasic:        {Name: "Electric Guitar Basics"},
				tree.TierProfessional: {Name: "Professional Electric Guitar"},
				tree.TierMastery:      {Name: "Electric Guitar Mastery"},
			},
		}

		Convey("When the catalog is built", func() {
			cat, err := tree.Build([]tree.TrackConfig{cfg})
			So(err, ShouldBeNil)

			Convey("Then three definitions are emitted in tier order", func() {
				So(cat.Len(), ShouldEqual, 3)
				So(cat.TrackSlugs("Electric Guitar"), ShouldResemble, []string{
					"instruments_basic_electric_guitar",
					"instruments_professional_electric_guitar",
					"instruments_mastery_electric_guitar",
				})
			})

			Convey("Then exactly two tier-chain edges exist with the default thresholds", func() {
				So(len(cat.Relationships), ShouldEqual, 2)

				prof := cat.PrerequisitesOf("instruments_professional_electric_guitar")
				So(len(prof), ShouldEqual, 1)
				So(prof[0].RequiredSlug, ShouldEqual, "instruments_basic_electric_guitar")
				So(prof[0].RequiredValue, ShouldEqual, 250)
				So(prof[0].Type, ShouldEqual, tree.RelationTierPrerequisite)

				mastery := cat.PrerequisitesOf("instruments_mastery_electric_guitar")
				So(len(mastery), ShouldEqual, 1)
				So(mastery[0].RequiredSlug, ShouldEqual, "instruments_professional_electric_guitar")
				So(mastery[0].RequiredValue, ShouldEqual, 650)
			})

			Convey("Then per-tier XP and duration defaults apply", func() {
				basic, ok := cat.Definition("instruments_basic_electric_guitar")
				So(ok, ShouldBeTrue)
				So(basic.BaseXPGain, ShouldEqual, 6)
				So(basic.TrainingMinutes, ShouldEqual, 30)

				prof, _ := cat.Definition("instruments_professional_electric_guitar")
				So(prof.BaseXPGain, ShouldEqual, 10)
				So(prof.TrainingMinutes, ShouldEqual, 45)

				mastery, _ := cat.Definition("instruments_mastery_electric_guitar")
				So(mastery.BaseXPGain, ShouldEqual, 14)
				So(mastery.TrainingMinutes, ShouldEqual, 60)
			})
		})

		Convey("When a tier overrides XP, duration, and threshold", func() {
			entry := cfg.Tiers[tree.TierProfessional]
			entry.XP = 25
			entry.Duration = 90
			entry.RequiredValue = 400
			cfg.Tiers[tree.TierProfessional] = entry

			cat, err := tree.Build([]tree.TrackConfig{cfg})
			So(err, ShouldBeNil)

			def, _ := cat.Definition("instruments_professional_electric_guitar")
			So(def.BaseXPGain, ShouldEqual, 25)
			So(def.TrainingMinutes, ShouldEqual, 90)

			edges := cat.PrerequisitesOf("instruments_professional_electric_guitar")
			So(edges[0].RequiredValue, ShouldEqual, 400)
		})
	})

	Convey("Given a capstone track with chaining disabled", t, func() {
		noChain := false
		capstone := tree.TrackConfig{
			Prefix:             tree.PrefixSongwriting,
			Category:           "production",
			Track:              "Studio Engineering",
			ChainPrerequisites: &noChain,
			Tiers: map[tree.Tier]tree.TierEntry{
				tree.TierMastery: {
					Name: "Studio Engineering Mastery",
					Prerequisites: []tree.Prereq{
						{Slug: "songwriting_professional_mixing"},
						{Slug: "songwriting_professional_daw"},
						{Slug: "songwriting_professional_production"},
					},
				},
			},
		}

		Convey("When built", func() {
			cat, err := tree.Build([]tree.TrackConfig{capstone})
			So(err, ShouldBeNil)

			Convey("Then one definition and three cross edges come out, none tier-chained", func() {
				So(cat.Len(), ShouldEqual, 1)
				So(len(cat.Relationships), ShouldEqual, 3)
				for _, rel := range cat.Relationships {
					So(rel.Type, ShouldEqual, tree.RelationCrossPrerequisite)
					So(rel.Slug, ShouldEqual, "songwriting_mastery_studio_engineering")
					So(rel.RequiredValue, ShouldEqual, 650)
				}
			})
		})
	})

	Convey("Given two tracks generating the same slug", t, func() {
		dup := tree.TrackConfig{
			Prefix: tree.PrefixInstruments,
			Track:  "Drums",
			Tiers: map[tree.Tier]tree.TierEntry{
				tree.TierBasic: {Name: "Drums Basics"},
			},
		}

		Convey("Then Build fails fast with ErrDuplicateSlug", func() {
			_, err := tree.Build([]tree.TrackConfig{dup, dup})
			So(err, ShouldNotBeNil)
			So(errors.Is(err, tree.ErrDuplicateSlug), ShouldBeTrue)
		})
	})

	Convey("Given duplicate prerequisite declarations on one tier", t, func() {
		cfg := tree.TrackConfig{
			Prefix: tree.PrefixGenres,
			Track:  "Jazz",
			Tiers: map[tree.Tier]tree.TierEntry{
				tree.TierBasic: {
					Name: "Jazz Basics",
					Prerequisites: []tree.Prereq{
						{Slug: "instruments_basic_saxophone", RequiredValue: 100},
						{Slug: "instruments_basic_saxophone", RequiredValue: 900},
					},
				},
			},
		}

		Convey("Then the edge is deduplicated, first writer wins", func() {
			cat, err := tree.Build([]tree.TrackConfig{cfg})
			So(err, ShouldBeNil)
			edges := cat.PrerequisitesOf("genres_basic_jazz")
			So(len(edges), ShouldEqual, 1)
			So(edges[0].RequiredValue, ShouldEqual, 100)
		})
	})
}

func TestDefaultTracks(t *testing.T) {
	Convey("Given the built-in track catalog", t, func() {
		cat, err := tree.Build(tree.DefaultTracks())
		So(err, ShouldBeNil)

		Convey("Then every role table slug resolves to a definition", func() {
			for _, slug := range []string{
				"instruments_basic_acoustic_guitar",
				"instruments_professional_electric_guitar",
				"instruments_mastery_vocals",
				"instruments_basic_turntablism",
				"genres_mastery_rock_and_metal",
				"songwriting_professional_mixing",
				"songwriting_basic_music_theory",
				"songwriting_mastery_vocal_production",
			} {
				_, ok := cat.Definition(slug)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Then genre masteries carry their instrument prerequisites", func() {
			edges := cat.PrerequisitesOf("genres_mastery_rock_and_metal")
			required := make(map[string]tree.RelationType, len(edges))
			for _, e := range edges {
				required[e.RequiredSlug] = e.Type
			}
			So(required["genres_professional_rock_and_metal"], ShouldEqual, tree.RelationTierPrerequisite)
			So(required["instruments_professional_electric_guitar"], ShouldEqual, tree.RelationCrossPrerequisite)
		})

		Convey("Then the studio engineering capstone joins three craft tracks", func() {
			edges := cat.PrerequisitesOf("songwriting_mastery_studio_engineering")
			So(len(edges), ShouldEqual, 3)
			for _, e := range edges {
				So(e.Type, ShouldEqual, tree.RelationCrossPrerequisite)
			}
		})

		Convey("Then no edge points from a lower tier to a higher one", func() {
			rank := map[tree.Tier]int{tree.TierBasic: 0, tree.TierProfessional: 1, tree.TierMastery: 2}
			for _, rel := range cat.Relationships {
				dep, ok := cat.Definition(rel.Slug)
				So(ok, ShouldBeTrue)
				req, ok := cat.Definition(rel.RequiredSlug)
				So(ok, ShouldBeTrue)
				So(rank[dep.Tier], ShouldBeGreaterThanOrEqualTo, rank[req.Tier])
			}
		})
	})
}

func TestLoadTracks(t *testing.T) {
	Convey("Given a YAML tracks file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "tracks.yaml")
		content := `tracks:
  - prefix: instruments
    category: instrument
    track: Harmonica
    icon: harmonica
    tiers:
      basic:
        name: Harmonica Basics
        description: First blows and bends.
      professional:
        name: Professional Harmonica
        xp: 12
`
		So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

		Convey("When loaded and built", func() {
			extra, err := tree.LoadTracks(path)
			So(err, ShouldBeNil)
			So(len(extra), ShouldEqual, 1)

			cat, err := tree.Build(extra)
			So(err, ShouldBeNil)
			So(cat.Len(), ShouldEqual, 2)

			prof, ok := cat.Definition("instruments_professional_harmonica")
			So(ok, ShouldBeTrue)
			So(prof.BaseXPGain, ShouldEqual, 12)
		})
	})

	Convey("Given an invalid tracks file", t, func() {
		dir := t.TempDir()

		Convey("When a track is missing its prefix", func() {
			path := filepath.Join(dir, "bad.yaml")
			So(os.WriteFile(path, []byte("tracks:\n  - track: Kazoo\n    tiers:\n      basic:\n        name: Kazoo Basics\n"), 0o600), ShouldBeNil)

			_, err := tree.LoadTracks(path)
			So(errors.Is(err, tree.ErrLoadTracks), ShouldBeTrue)
		})

		Convey("When the file does not exist", func() {
			_, err := tree.LoadTracks(filepath.Join(dir, "missing.yaml"))
			So(errors.Is(err, tree.ErrLoadTracks), ShouldBeTrue)
		})
	})
}
