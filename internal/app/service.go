// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/veloria/encore/internal/adapters/repository"
	"github.com/veloria/encore/internal/domain/band"
	"github.com/veloria/encore/internal/domain/bonus"
	"github.com/veloria/encore/internal/domain/gear"
	"github.com/veloria/encore/internal/domain/modifiers"
	"github.com/veloria/encore/internal/domain/roles"
	"github.com/veloria/encore/internal/domain/skilltree"
	"github.com/veloria/encore/pkg/logger"
	"github.com/veloria/encore/pkg/metrics"
)

// Service wires the collaborator stores and the scoring engine together and
// exposes the engine's public operations.
type Service struct {
	mu sync.RWMutex

	// Static reference data
	catalog     *skilltree.Catalog
	extraTracks []skilltree.TrackConfig
	tracksFile  string

	// Collaborator stores
	progress  repository.ProgressStore
	inventory repository.InventoryStore
	roster    repository.RosterStore
	profiles  repository.ProfileStore

	// Aggregation
	aggregator  *band.Aggregator
	workerCount int
	touringSeed int64

	// State
	started  bool
	seedDemo bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkerCount bounds the band aggregation fan-out.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithTouringSeed seeds the touring-member rolls; zero keeps them time-seeded.
func WithTouringSeed(seed int64) Option {
	return func(s *Service) {
		s.touringSeed = seed
	}
}

// WithTracksFile points at a YAML file of extra track configurations.
func WithTracksFile(path string) Option {
	return func(s *Service) {
		s.tracksFile = path
	}
}

// WithExtraTracks appends track configurations to the built-in catalog.
func WithExtraTracks(tracks []skilltree.TrackConfig) Option {
	return func(s *Service) {
		s.extraTracks = append(s.extraTracks, tracks...)
	}
}

// WithSeedDemo loads the demo fixture at startup.
func WithSeedDemo(enabled bool) Option {
	return func(s *Service) {
		s.seedDemo = enabled
	}
}

// WithProgressStore replaces the default in-memory progress store.
func WithProgressStore(st repository.ProgressStore) Option {
	return func(s *Service) {
		if st != nil {
			s.progress = st
		}
	}
}

// WithInventoryStore replaces the default in-memory inventory store.
func WithInventoryStore(st repository.InventoryStore) Option {
	return func(s *Service) {
		if st != nil {
			s.inventory = st
		}
	}
}

// WithRosterStore replaces the default in-memory roster store.
func WithRosterStore(st repository.RosterStore) Option {
	return func(s *Service) {
		if st != nil {
			s.roster = st
		}
	}
}

// WithProfileStore replaces the default in-memory profile store.
func WithProfileStore(st repository.ProfileStore) Option {
	return func(s *Service) {
		if st != nil {
			s.profiles = st
		}
	}
}

const defaultWorkerCount = 4

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: defaultWorkerCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the static skill catalog and initializes the stores and
// aggregator. Catalog construction fails fast on configuration authoring
// bugs (duplicate definition slugs).
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting progression engine...")

	tracks := skilltree.DefaultTracks()
	if s.tracksFile != "" {
		extra, err := skilltree.LoadTracks(s.tracksFile)
		if err != nil {
			return err
		}
		s.logger.Info(ctx, "loaded extra tracks",
			logger.String("file", s.tracksFile),
			logger.Int("tracks", len(extra)),
		)
		tracks = append(tracks, extra...)
	}
	tracks = append(tracks, s.extraTracks...)

	catalog, err := skilltree.Build(tracks)
	if err != nil {
		return err
	}
	s.catalog = catalog
	metrics.UpdateSkillDefinitions(len(catalog.Definitions))
	metrics.UpdateSkillRelationships(len(catalog.Relationships))

	if s.progress == nil {
		s.progress = repository.NewMemoryProgressStore()
	}
	if s.inventory == nil {
		s.inventory = repository.NewMemoryInventoryStore()
	}
	if s.roster == nil {
		s.roster = repository.NewMemoryRosterStore()
	}
	if s.profiles == nil {
		s.profiles = repository.NewMemoryProfileStore()
	}

	aggOpts := []band.Option{
		band.WithScorer(s.memberScore),
		band.WithWorkerCount(s.workerCount),
	}
	if s.touringSeed != 0 {
		aggOpts = append(aggOpts, band.WithRandSource(rand.NewSource(s.touringSeed)))
	}
	s.aggregator = band.NewAggregator(aggOpts...)
	metrics.UpdateWorkerCount(s.workerCount)

	s.started = true
	s.logger.Info(ctx, "progression engine started",
		logger.Int("definitions", len(catalog.Definitions)),
		logger.Int("relationships", len(catalog.Relationships)),
		logger.Int("workers", s.workerCount),
	)

	if s.seedDemo {
		if err := s.SeedDemoData(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop shuts the service down. The engine holds no background goroutines;
// this exists for symmetry with callers that defer it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "progression engine stopped")
}

// SkillTree returns the static skill catalog.
func (s *Service) SkillTree() *skilltree.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// CalculatePerformanceModifiers resolves a profile's blended skill score and
// gear multiplier for a role. On any upstream fetch failure it degrades to
// the documented neutral baseline instead of propagating the error: unknown
// means average, never a crash.
func (s *Service) CalculatePerformanceModifiers(ctx context.Context, profileID, role string) modifiers.Modifiers {
	start := time.Now()
	defer func() {
		metrics.RecordModifierComputation()
		metrics.RecordModifierLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	progress, err := s.progress.Levels(ctx, profileID)
	if err != nil {
		s.logger.Warn(ctx, "progress fetch failed; using neutral modifiers",
			logger.String("profileID", profileID),
			logger.String("role", role),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("modifiers")
		return modifiers.Neutral()
	}

	equipped, err := s.inventory.Equipped(ctx, profileID)
	if err != nil {
		s.logger.Warn(ctx, "inventory fetch failed; using neutral modifiers",
			logger.String("profileID", profileID),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("modifiers")
		return modifiers.Neutral()
	}

	skillLevel := roles.ResolveRole(progress, role)
	gearMultiplier := gear.Multiplier(equipped, role)
	return modifiers.Compute(skillLevel, gearMultiplier)
}

// memberScore resolves one player-backed member for the band aggregator.
// Unlike the public modifier path, fetch failures surface as errors so the
// aggregator can skip the member.
func (s *Service) memberScore(ctx context.Context, profileID, role string) (int, error) {
	progress, err := s.progress.Levels(ctx, profileID)
	if err != nil {
		return 0, err
	}
	equipped, err := s.inventory.Equipped(ctx, profileID)
	if err != nil {
		return 0, err
	}
	m := modifiers.Compute(roles.ResolveRole(progress, role), gear.Multiplier(equipped, role))
	return m.EffectiveLevel, nil
}

// CalculateBandSkillRating aggregates every member of a band into one rating
// and applies the chemistry multiplier. Each member's figure is written back
// to the roster's skill_contribution cache as a side effect. A band that
// cannot be fetched degrades to the neutral rating.
func (s *Service) CalculateBandSkillRating(ctx context.Context, bandID string, chemistryLevel int) int {
	start := time.Now()
	defer func() {
		metrics.RecordBandAggregation()
		metrics.RecordBandAggregationTime(float64(time.Since(start).Microseconds()) / 1000)
	}()

	members, err := s.roster.Members(ctx, bandID)
	if err != nil {
		s.logger.Warn(ctx, "roster fetch failed; using neutral band rating",
			logger.String("bandID", bandID),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("band")
		return modifiers.NeutralLevel()
	}

	for _, m := range members {
		if m.Touring {
			metrics.RecordTouringMemberRoll()
		}
	}

	rating, contributions := s.aggregator.Aggregate(ctx, members, chemistryLevel)

	for _, c := range contributions {
		if !c.Resolved {
			continue
		}
		if err := s.roster.SetContribution(ctx, bandID, c.MemberID, c.Value); err != nil {
			s.logger.Debug(ctx, "skill contribution write-back failed",
				logger.String("bandID", bandID),
				logger.String("memberID", c.MemberID),
				logger.Error(err),
			)
		}
	}
	return rating
}

// CalculateGenreSkillBonus computes a profile's genre affinity bonus. Fetch
// failures degrade to the zero bonus.
func (s *Service) CalculateGenreSkillBonus(ctx context.Context, profileID, genre string) bonus.GenreResult {
	metrics.RecordBonusCalculation("genre")

	progress, err := s.progress.Levels(ctx, profileID)
	if err != nil {
		s.logger.Warn(ctx, "progress fetch failed; using zero genre bonus",
			logger.String("profileID", profileID),
			logger.String("genre", genre),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("genre")
		return bonus.GenreBonus(nil, genre)
	}
	return bonus.GenreBonus(progress, genre)
}

// CalculateBandGenreSkillBonus averages the genre bonus across a band's
// player-backed members. Touring members are excluded; their ability is
// synthetic and carries no genre training.
func (s *Service) CalculateBandGenreSkillBonus(ctx context.Context, bandID, genre string) bonus.GenreResult {
	metrics.RecordBonusCalculation("genre_band")

	members, err := s.roster.Members(ctx, bandID)
	if err != nil {
		s.logger.Warn(ctx, "roster fetch failed; using zero genre bonus",
			logger.String("bandID", bandID),
			logger.String("genre", genre),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("genre_band")
		return bonus.BandGenreBonus(nil, genre)
	}

	var memberProgress []map[string]int
	for _, m := range members {
		if m.Touring {
			continue
		}
		progress, err := s.progress.Levels(ctx, m.ProfileID)
		if err != nil {
			continue
		}
		memberProgress = append(memberProgress, progress)
	}
	return bonus.BandGenreBonus(memberProgress, genre)
}

// CalculateRecordingSkillBonus computes a profile's recording quality bonus
// across the five production categories.
func (s *Service) CalculateRecordingSkillBonus(ctx context.Context, profileID string) bonus.RecordingResult {
	metrics.RecordBonusCalculation("recording")

	progress, err := s.progress.Levels(ctx, profileID)
	if err != nil {
		s.logger.Warn(ctx, "progress fetch failed; using zero recording bonus",
			logger.String("profileID", profileID),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("recording")
		return bonus.RecordingBonus(nil)
	}
	return bonus.RecordingBonus(progress)
}

// CalculateRehearsalEfficiency computes a profile's rehearsal efficiency over
// the roles being rehearsed.
func (s *Service) CalculateRehearsalEfficiency(ctx context.Context, profileID string, rehearsalRoles []string) bonus.RehearsalResult {
	metrics.RecordBonusCalculation("rehearsal")

	progress, err := s.progress.Levels(ctx, profileID)
	if err != nil {
		s.logger.Warn(ctx, "progress fetch failed; using base rehearsal efficiency",
			logger.String("profileID", profileID),
			logger.Error(err),
		)
		metrics.RecordNeutralFallback("rehearsal")
		return bonus.RehearsalEfficiency(nil, rehearsalRoles)
	}
	return bonus.RehearsalEfficiency(progress, rehearsalRoles)
}

// ProfileForUser resolves a user identity to a profile id.
func (s *Service) ProfileForUser(ctx context.Context, userID string) (string, error) {
	return s.profiles.ProfileByUser(ctx, userID)
}

// CreateProfile registers a profile for a user.
func (s *Service) CreateProfile(ctx context.Context, userID string) (string, error) {
	return s.profiles.Create(ctx, userID)
}

// SetSkillLevel records progress for a profile.
func (s *Service) SetSkillLevel(ctx context.Context, profileID, slug string, level int) error {
	return s.progress.SetLevel(ctx, profileID, slug, level)
}

// AddGearItem adds an inventory item for a profile.
func (s *Service) AddGearItem(ctx context.Context, profileID string, item gear.Item, equipped bool) error {
	return s.inventory.AddItem(ctx, profileID, item, equipped)
}

// AddBandMember appends a member to a band's roster.
func (s *Service) AddBandMember(ctx context.Context, bandID string, m band.Member) (string, error) {
	return s.roster.AddMember(ctx, bandID, m)
}

// BandMembers returns a band's roster, including cached contributions.
func (s *Service) BandMembers(ctx context.Context, bandID string) ([]band.Member, error) {
	return s.roster.Members(ctx, bandID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
	}
	if s.started {
		stats["skillDefinitions"] = len(s.catalog.Definitions)
		stats["skillRelationships"] = len(s.catalog.Relationships)
		stats["profiles"] = s.progress.ProfileCount(ctx)
		stats["bands"] = s.roster.BandCount(ctx)

		metrics.UpdateProfilesTotal(s.progress.ProfileCount(ctx))
		metrics.UpdateBandsTotal(s.roster.BandCount(ctx))
		metrics.UpdateWorkerCount(s.workerCount)
	}
	return stats
}
