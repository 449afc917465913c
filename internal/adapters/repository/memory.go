package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/curve"
	"github.com/veloria/encore/internal/domain/gear"
	"github.com/veloria/encore/pkg/metrics"
)

// observe records a store operation latency.
func observe(store, op string, start time.Time) {
	metrics.RecordStoreOpLatency(store, op, float64(time.Since(start).Microseconds())/1000)
}

// MemoryProgressStore is a map-backed ProgressStore.
type MemoryProgressStore struct {
	mu     sync.RWMutex
	levels map[string]map[string]int // profileID -> slug -> level
}

// NewMemoryProgressStore creates an empty progress store.
func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{levels: make(map[string]map[string]int)}
}

// Levels returns a copy of the profile's progress map.
func (s *MemoryProgressStore) Levels(ctx context.Context, profileID string) (map[string]int, error) {
	defer observe("progress", "levels", time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.levels[profileID]))
	for slug, level := range s.levels[profileID] {
		out[slug] = level
	}
	return out, nil
}

// SetLevel records a level, clamped into the valid 0-20 domain.
func (s *MemoryProgressStore) SetLevel(ctx context.Context, profileID, slug string, level int) error {
	defer observe("progress", "set_level", time.Now())

	if profileID == "" || slug == "" {
		return ErrNotFound
	}
	if level < 0 {
		level = 0
	}
	if level > curve.MaxLevel {
		level = curve.MaxLevel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.levels[profileID] == nil {
		s.levels[profileID] = make(map[string]int)
	}
	s.levels[profileID][slug] = level
	metrics.UpdateProfilesTotal(len(s.levels))
	return nil
}

// ProfileCount returns the number of profiles with recorded progress.
func (s *MemoryProgressStore) ProfileCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.levels)
}

// inventoryRecord pairs an item with its equipped flag.
type inventoryRecord struct {
	item     gear.Item
	equipped bool
}

// MemoryInventoryStore is a map-backed InventoryStore.
type MemoryInventoryStore struct {
	mu    sync.RWMutex
	items map[string][]inventoryRecord // profileID -> inventory
}

// NewMemoryInventoryStore creates an empty inventory store.
func NewMemoryInventoryStore() *MemoryInventoryStore {
	return &MemoryInventoryStore{items: make(map[string][]inventoryRecord)}
}

// Equipped returns the equipped subset of the profile's inventory.
func (s *MemoryInventoryStore) Equipped(ctx context.Context, profileID string) ([]gear.Item, error) {
	defer observe("inventory", "equipped", time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []gear.Item
	for _, rec := range s.items[profileID] {
		if rec.equipped {
			out = append(out, rec.item)
		}
	}
	return out, nil
}

// AddItem adds an item to the profile's inventory.
func (s *MemoryInventoryStore) AddItem(ctx context.Context, profileID string, item gear.Item, equipped bool) error {
	defer observe("inventory", "add_item", time.Now())

	if profileID == "" {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[profileID] = append(s.items[profileID], inventoryRecord{item: item, equipped: equipped})
	return nil
}

// MemoryRosterStore is a map-backed RosterStore.
type MemoryRosterStore struct {
	mu    sync.RWMutex
	bands map[string][]band.Member // bandID -> roster
}

// NewMemoryRosterStore creates an empty roster store.
func NewMemoryRosterStore() *MemoryRosterStore {
	return &MemoryRosterStore{bands: make(map[string][]band.Member)}
}

// Members returns a copy of the band's roster.
func (s *MemoryRosterStore) Members(ctx context.Context, bandID string) ([]band.Member, error) {
	defer observe("roster", "members", time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, ok := s.bands[bandID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]band.Member, len(roster))
	copy(out, roster)
	return out, nil
}

// AddMember appends a member to the band, assigning an id when absent.
func (s *MemoryRosterStore) AddMember(ctx context.Context, bandID string, m band.Member) (string, error) {
	defer observe("roster", "add_member", time.Now())

	if bandID == "" {
		return "", ErrNotFound
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bands[bandID] = append(s.bands[bandID], m)
	metrics.UpdateBandsTotal(len(s.bands))
	return m.ID, nil
}

// SetContribution overwrites the member's cached contribution figure.
func (s *MemoryRosterStore) SetContribution(ctx context.Context, bandID, memberID string, value int) error {
	defer observe("roster", "set_contribution", time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	roster, ok := s.bands[bandID]
	if !ok {
		return ErrNotFound
	}
	for i := range roster {
		if roster[i].ID == memberID {
			roster[i].SkillContribution = value
			return nil
		}
	}
	return ErrNotFound
}

// BandCount returns the number of bands tracked.
func (s *MemoryRosterStore) BandCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bands)
}

// MemoryProfileStore is a map-backed ProfileStore.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]string // userID -> profileID
}

// NewMemoryProfileStore creates an empty profile store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]string)}
}

// ProfileByUser resolves a user id to its profile id.
func (s *MemoryProfileStore) ProfileByUser(ctx context.Context, userID string) (string, error) {
	defer observe("profile", "by_user", time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.profiles[userID]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

// Create registers a profile for a user, reusing an existing mapping.
func (s *MemoryProfileStore) Create(ctx context.Context, userID string) (string, error) {
	defer observe("profile", "create", time.Now())

	if userID == "" {
		return "", ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.profiles[userID]; ok {
		return id, nil
	}
	id := uuid.NewString()
	s.profiles[userID] = id
	return id, nil
}
