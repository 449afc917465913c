// Package repository defines the collaborator store interfaces and their
// in-memory implementations. The engine only reads progress, inventory, and
// roster data; the single write-back is the skill_contribution cache.
package repository

import (
	"context"

	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/gear"
)

// ProgressStore exposes per-profile skill progress keyed by skill slug.
type ProgressStore interface {
	// Levels returns the profile's current level per skill slug. Unknown
	// profiles return an empty map: absent progress means untrained, not an
	// error.
	Levels(ctx context.Context, profileID string) (map[string]int, error)

	// SetLevel records a profile's current level for a skill slug.
	SetLevel(ctx context.Context, profileID, slug string, level int) error

	// ProfileCount returns the number of profiles with any recorded progress.
	ProfileCount(ctx context.Context) int
}

// InventoryStore exposes a profile's equipped gear.
type InventoryStore interface {
	// Equipped returns the items currently equipped by the profile.
	Equipped(ctx context.Context, profileID string) ([]gear.Item, error)

	// AddItem adds an item to the profile's inventory, optionally equipped.
	AddItem(ctx context.Context, profileID string, item gear.Item, equipped bool) error
}

// RosterStore exposes band membership.
type RosterStore interface {
	// Members returns the roster for a band. Unknown bands return ErrNotFound.
	Members(ctx context.Context, bandID string) ([]band.Member, error)

	// AddMember appends a member to the band's roster, creating the band if
	// needed, and returns the member id.
	AddMember(ctx context.Context, bandID string, m band.Member) (string, error)

	// SetContribution writes back the skill_contribution cache for a member.
	// Last writer wins; the field is advisory.
	SetContribution(ctx context.Context, bandID, memberID string, value int) error

	// BandCount returns the number of bands tracked.
	BandCount(ctx context.Context) int
}

// ProfileStore resolves user identities to profile ids.
type ProfileStore interface {
	// ProfileByUser resolves a user id to a profile id, or ErrNotFound.
	ProfileByUser(ctx context.Context, userID string) (string, error)

	// Create registers a profile for a user and returns the new profile id.
	Create(ctx context.Context, userID string) (string, error)
}
