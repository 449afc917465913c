package skilltree

import "fmt"

// standardTrack builds a full three-tier track with templated names and
// descriptions. Tracks needing overrides mutate the returned config.
func standardTrack(prefix, category, name, icon string) TrackConfig {
	return TrackConfig{
		Prefix:   prefix,
		Category: category,
		Track:    name,
		Icon:     icon,
		Tiers: map[Tier]TierEntry{
			TierBasic: {
				Name:        fmt.Sprintf("%s Basics", name),
				Description: fmt.Sprintf("Fundamental techniques and first steps on %s.", name),
			},
			TierProfessional: {
				Name:        fmt.Sprintf("Professional %s", name),
				Description: fmt.Sprintf("Stage-ready %s technique for working musicians.", name),
			},
			TierMastery: {
				Name:        fmt.Sprintf("%s Mastery", name),
				Description: fmt.Sprintf("Virtuoso-level command of %s.", name),
			},
		},
	}
}

// withMasteryPrereqs adds explicit cross-track prerequisites to the mastery
// tier of a standard track.
func withMasteryPrereqs(cfg TrackConfig, prereqs ...Prereq) TrackConfig {
	entry := cfg.Tiers[TierMastery]
	entry.Prerequisites = append(entry.Prerequisites, prereqs...)
	cfg.Tiers[TierMastery] = entry
	return cfg
}

// DefaultTracks returns the built-in track catalog: instrument disciplines,
// genre affinities, and production crafts. Role tables and the bonus modules
// resolve against the slugs this catalog generates.
func DefaultTracks() []TrackConfig {
	noChain := false

	tracks := []TrackConfig{
		// Instrument tracks.
		standardTrack(PrefixInstruments, "instrument", "Acoustic Guitar", "guitar-acoustic"),
		standardTrack(PrefixInstruments, "instrument", "Electric Guitar", "guitar-electric"),
		standardTrack(PrefixInstruments, "instrument", "Bass Guitar", "bass"),
		standardTrack(PrefixInstruments, "instrument", "Drums", "drums"),
		standardTrack(PrefixInstruments, "instrument", "Piano", "piano"),
		standardTrack(PrefixInstruments, "instrument", "Synthesizer", "synth"),
		standardTrack(PrefixInstruments, "instrument", "Violin", "violin"),
		standardTrack(PrefixInstruments, "instrument", "Saxophone", "saxophone"),
		standardTrack(PrefixInstruments, "instrument", "Vocals", "microphone"),
		standardTrack(PrefixInstruments, "instrument", "Turntablism", "turntable"),

		// Genre tracks. Mastering a genre leans on professional command of a
		// representative instrument.
		withMasteryPrereqs(
			standardTrack(PrefixGenres, "genre", "Rock & Metal", "genre-rock"),
			Prereq{Slug: "instruments_professional_electric_guitar"},
		),
		standardTrack(PrefixGenres, "genre", "Pop", "genre-pop"),
		withMasteryPrereqs(
			standardTrack(PrefixGenres, "genre", "Jazz", "genre-jazz"),
			Prereq{Slug: "instruments_professional_saxophone"},
		),
		withMasteryPrereqs(
			standardTrack(PrefixGenres, "genre", "Electronic", "genre-electronic"),
			Prereq{Slug: "instruments_professional_synthesizer"},
		),
		standardTrack(PrefixGenres, "genre", "Hip Hop", "genre-hiphop"),
		withMasteryPrereqs(
			standardTrack(PrefixGenres, "genre", "Classical", "genre-classical"),
			Prereq{Slug: "instruments_professional_violin"},
		),

		// Production craft tracks.
		standardTrack(PrefixSongwriting, "production", "Composition", "composition"),
		standardTrack(PrefixSongwriting, "production", "Lyrics", "lyrics"),
		standardTrack(PrefixSongwriting, "production", "Music Theory", "theory"),
		standardTrack(PrefixSongwriting, "production", "Mixing", "mixing"),
		standardTrack(PrefixSongwriting, "production", "DAW", "daw"),
		standardTrack(PrefixSongwriting, "production", "Production", "production"),
		standardTrack(PrefixSongwriting, "production", "Vocal Production", "vocal-production"),

		// Capstone: a single mastery-tier skill unlocked by several
		// professional-tier crafts at once. Chaining is disabled so the only
		// edges are the explicit multi-parent joins.
		{
			Prefix:             PrefixSongwriting,
			Category:           "production",
			Track:              "Studio Engineering",
			Icon:               "studio",
			ChainPrerequisites: &noChain,
			Tiers: map[Tier]TierEntry{
				TierMastery: {
					Name:        "Studio Engineering Mastery",
					Description: "Running a full production from tracking to final master.",
					Prerequisites: []Prereq{
						{Slug: "songwriting_professional_mixing"},
						{Slug: "songwriting_professional_daw"},
						{Slug: "songwriting_professional_production"},
					},
				},
			},
		},
	}

	return tracks
}
