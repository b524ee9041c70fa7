package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/Vivek13121/TripWeave/app/observability/metrics"
	"github.com/Vivek13121/TripWeave/internal/planner"
	"github.com/Vivek13121/TripWeave/internal/types"
)

// sharedFetchTimeout bounds an upstream fetch that no longer follows the
// context of the caller that started it.
const sharedFetchTimeout = 30 * time.Second

var _ planner.ActivitySource = (*CachedSource)(nil)

// CachedSource keeps resolved activity pools per destination for ttl.
// Concurrent misses for the same destination share one upstream fetch; a
// caller that gives up does not cancel it for the others.
type CachedSource struct {
	next    planner.ActivitySource
	cache   *cache.Cache
	group   singleflight.Group
	logger  *slog.Logger
	metrics *metrics.AppMetrics

	// mu orders cache writes against Invalidate. generation is bumped on
	// every invalidation so a fetch started earlier cannot store its pool.
	mu         sync.Mutex
	generation map[string]uint64
}

func NewCachedSource(next planner.ActivitySource, ttl time.Duration, logger *slog.Logger, m *metrics.AppMetrics) *CachedSource {
	return &CachedSource{
		next:       next,
		cache:      cache.New(ttl, 2*ttl),
		logger:     logger,
		metrics:    m,
		generation: make(map[string]uint64),
	}
}

func (s *CachedSource) Fetch(ctx context.Context, destination string) ([]types.Activity, error) {
	key := types.DestinationKey(destination)

	if cached, found := s.cache.Get(key); found {
		s.metrics.RecordCacheLookup(ctx, true)
		s.logger.DebugContext(ctx, "Activity pool cache hit", slog.String("destination", key))
		return cloneActivities(cached.([]types.Activity)), nil
	}
	s.metrics.RecordCacheLookup(ctx, false)

	ch := s.group.DoChan(key, func() (interface{}, error) {
		gen := s.currentGeneration(key)

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()

		activities, err := s.next.Fetch(fetchCtx, destination)
		if err != nil {
			return nil, err
		}
		s.storeIfCurrent(key, gen, activities)
		return activities, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.DebugContext(ctx, "Activity pool fetch shared with concurrent request", slog.String("destination", key))
		}
		return cloneActivities(res.Val.([]types.Activity)), nil
	}
}

// Invalidate drops the cached pool of destination. A fetch already in
// flight still answers its callers but is not cached.
func (s *CachedSource) Invalidate(destination string) {
	key := types.DestinationKey(destination)

	s.mu.Lock()
	s.generation[key]++
	s.cache.Delete(key)
	s.mu.Unlock()

	s.group.Forget(key)
}

func (s *CachedSource) currentGeneration(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation[key]
}

func (s *CachedSource) storeIfCurrent(key string, gen uint64, activities []types.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation[key] != gen {
		s.logger.Debug("Catalog changed during fetch, not caching pool", slog.String("destination", key))
		return
	}
	s.cache.Set(key, cloneActivities(activities), cache.DefaultExpiration)
}

func cloneActivities(in []types.Activity) []types.Activity {
	out := make([]types.Activity, len(in))
	copy(out, in)
	return out
}
