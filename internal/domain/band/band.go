// Package band aggregates per-member effective ability into a single band
// skill rating, substituting randomized tier-based figures for non-player
// touring members and applying the chemistry multiplier.
package band

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Member is one band roster entry. SkillContribution is a denormalized cache
// overwritten on every aggregation pass; it is advisory, never authoritative.
type Member struct {
	ID                string `json:"id"`
	ProfileID         string `json:"profile_id"`
	Role              string `json:"instrument_role"`
	Touring           bool   `json:"is_touring_member"`
	TouringTier       int    `json:"touring_member_tier"`
	SkillContribution int    `json:"skill_contribution"`
}

// tierRange bounds the uniform ability roll for one touring tier.
type tierRange struct {
	min, max int
}

// touringRanges maps touring tiers to ability ranges. Tiers 4-5 intentionally
// exceed the normal 0-100 member scale to represent elite hired talent.
var touringRanges = map[int]tierRange{
	1: {20, 40},
	2: {41, 60},
	3: {61, 80},
	4: {81, 100},
	5: {101, 150},
}

const (
	minTouringTier = 1
	maxTouringTier = 5

	// chemistryDivisor converts a chemistry level into the bonus fraction:
	// 1 + level/200.
	chemistryDivisor = 200

	// fallbackRating is returned when no member produces a figure.
	fallbackRating = 50

	defaultWorkers = 4
)

// Scorer resolves a player-backed member's effective ability for a role.
// Implementations fetch profile data and run the modifier pipeline; an error
// means the member could not be resolved and is skipped.
type Scorer func(ctx context.Context, profileID, role string) (int, error)

// Contribution records a member's figure from one aggregation pass, for the
// write-back onto the roster's skill_contribution cache.
type Contribution struct {
	MemberID string
	Value    int
	Resolved bool
}

// Aggregator computes band skill ratings.
type Aggregator struct {
	rng     *rand.Rand
	rngMu   sync.Mutex
	scorer  Scorer
	workers int
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithRandSource seeds the touring-member rolls deterministically; tests use
// this to pin per-tier bounds.
func WithRandSource(src rand.Source) Option {
	return func(a *Aggregator) {
		if src != nil {
			a.rng = rand.New(src) //nolint:gosec // game ability rolls, not crypto
		}
	}
}

// WithScorer sets the member ability resolver.
func WithScorer(s Scorer) Option {
	return func(a *Aggregator) {
		if s != nil {
			a.scorer = s
		}
	}
}

// WithWorkerCount bounds the fan-out across members.
func WithWorkerCount(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// NewAggregator creates an Aggregator. Without options it time-seeds the
// touring rolls and scores every non-touring member as unresolved.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // game ability rolls, not crypto
		workers: defaultWorkers,
		scorer: func(context.Context, string, string) (int, error) {
			return 0, ErrNoScorer
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// rollTouring draws a uniform ability figure for a touring member's tier.
// Out-of-range tiers clamp to the nearest valid tier.
func (a *Aggregator) rollTouring(tier int) int {
	if tier < minTouringTier {
		tier = minTouringTier
	}
	if tier > maxTouringTier {
		tier = maxTouringTier
	}
	r := touringRanges[tier]

	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return r.min + a.rng.Intn(r.max-r.min+1)
}

// Aggregate computes the band's average effective ability and applies the
// chemistry multiplier. Touring members roll a tier-based figure; player
// members resolve through the scorer; unresolvable members are skipped and do
// not reduce the denominator below 1. Zero members yields the fallback.
//
// Member scoring fans out concurrently, bounded by the configured worker
// count. Contributions come back per member for the skill_contribution
// write-back; ordering between members carries no dependency.
func (a *Aggregator) Aggregate(ctx context.Context, members []Member, chemistryLevel int) (int, []Contribution) {
	if len(members) == 0 {
		return fallbackRating, nil
	}

	contributions := make([]Contribution, len(members))
	sem := make(chan struct{}, a.workers)
	var wg sync.WaitGroup

	for i, m := range members {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, m Member) {
			defer wg.Done()
			defer func() { <-sem }()
			contributions[i] = a.scoreMember(ctx, m)
		}(i, m)
	}
	wg.Wait()

	sum := 0
	resolved := 0
	for _, c := range contributions {
		if !c.Resolved {
			continue
		}
		sum += c.Value
		resolved++
	}
	if resolved == 0 {
		return fallbackRating, contributions
	}

	avg := float64(sum) / float64(resolved)
	chemistry := 1 + float64(chemistryLevel)/chemistryDivisor
	return int(math.Round(avg * chemistry)), contributions
}

func (a *Aggregator) scoreMember(ctx context.Context, m Member) Contribution {
	if m.Touring {
		return Contribution{MemberID: m.ID, Value: a.rollTouring(m.TouringTier), Resolved: true}
	}
	value, err := a.scorer(ctx, m.ProfileID, m.Role)
	if err != nil {
		return Contribution{MemberID: m.ID}
	}
	return Contribution{MemberID: m.ID, Value: value, Resolved: true}
}
