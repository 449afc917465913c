package skilltree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// trackFile mirrors the YAML layout of an extra-tracks file:
//
//	tracks:
//	  - prefix: instruments
//	    category: instrument
//	    track: Harmonica
//	    icon: harmonica
//	    tiers:
//	      basic:
//	        name: Harmonica Basics
//	        description: ...
type trackFile struct {
	Tracks []TrackConfig `yaml:"tracks"`
}

// LoadTracks parses a YAML file of track configurations. The result is
// appended to the built-in catalog before Build runs, so file-defined tracks
// may declare cross prerequisites against built-in slugs.
func LoadTracks(path string) ([]TrackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTracks, err)
	}

	var f trackFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTracks, err)
	}

	for i, cfg := range f.Tracks {
		if cfg.Prefix == "" || cfg.Track == "" {
			return nil, fmt.Errorf("%w: track %d missing prefix or track name", ErrLoadTracks, i)
		}
		if len(cfg.Tiers) == 0 {
			return nil, fmt.Errorf("%w: track %q has no tiers", ErrLoadTracks, cfg.Track)
		}
	}
	return f.Tracks, nil
}
