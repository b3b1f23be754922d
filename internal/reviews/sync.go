package reviews

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/rushnrelax/storefront-api/internal/jobs"
)

// CacheRepository abstracts the document store holding cached reviews.
type CacheRepository interface {
	// Upsert overwrites the whole document keyed by cached.PlaceID.
	Upsert(ctx context.Context, cached CachedReviews) error
	// FindByPlaceID returns the cached document, or ErrNotFound.
	FindByPlaceID(ctx context.Context, placeID string) (*CachedReviews, error)
}

// DetailsFetcher is the lookup port; *PlacesClient satisfies it.
type DetailsFetcher interface {
	FetchDetails(ctx context.Context, placeID, apiKey string) (*PlaceDetails, error)
}

// Syncer refreshes the review cache for the known retail locations. It runs
// once per scheduled invocation; the external scheduler is trusted not to
// overlap runs.
type Syncer struct {
	fetcher DetailsFetcher
	repo    CacheRepository
	logger  *log.Logger
	metrics *jobs.Metrics
	apiKey  string
	now     func() time.Time
}

// SyncerConfig lists Syncer dependencies. Metrics may be nil.
type SyncerConfig struct {
	Fetcher DetailsFetcher
	Repo    CacheRepository
	Logger  *log.Logger
	Metrics *jobs.Metrics
	APIKey  string
	Now     func() time.Time
}

// NewSyncer builds a Syncer from cfg.
func NewSyncer(cfg SyncerConfig) *Syncer {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Syncer{
		fetcher: cfg.Fetcher,
		repo:    cfg.Repo,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		apiKey:  cfg.APIKey,
		now:     now,
	}
}

// FetchAndStore refreshes the cache document for a single place: fetch,
// truncate the review list to MaxCachedReviews, stamp the refresh time and
// overwrite the stored document. There are no retries; the caller decides
// what a failure means.
func (s *Syncer) FetchAndStore(ctx context.Context, placeID string) error {
	details, err := s.fetcher.FetchDetails(ctx, placeID, s.apiKey)
	if err != nil {
		return err
	}

	snippets := details.Reviews
	if len(snippets) > MaxCachedReviews {
		snippets = snippets[:MaxCachedReviews]
	}

	return s.repo.Upsert(ctx, CachedReviews{
		PlaceID:      placeID,
		Rating:       details.Rating,
		TotalRatings: details.TotalRatings,
		Reviews:      snippets,
		CachedAt:     s.now(),
	})
}

// RefreshAll attempts a refresh for every place in placeIDs. An unset API
// key skips the whole run with a single error log and zero fetches. A
// failure on one place is logged and does not stop the remaining places;
// iteration order over the set is not significant.
func (s *Syncer) RefreshAll(ctx context.Context, placeIDs map[string]struct{}) {
	if strings.TrimSpace(s.apiKey) == "" {
		s.logger.Printf("places API key is not configured, skipping review refresh")
		s.metrics.RecordOutcome(jobs.JobTypeReviewRefresh, jobs.StatusSkipped)
		return
	}

	for placeID := range placeIDs {
		start := s.now()
		err := s.FetchAndStore(ctx, placeID)
		s.metrics.ObserveDuration(jobs.JobTypeReviewRefresh, s.now().Sub(start))
		if err != nil {
			s.logger.Printf("review refresh failed for place %s: %v", placeID, err)
			s.metrics.RecordOutcome(jobs.JobTypeReviewRefresh, jobs.StatusFailure)
			continue
		}
		s.logger.Printf("reviews refreshed for place %s", placeID)
		s.metrics.RecordOutcome(jobs.JobTypeReviewRefresh, jobs.StatusSuccess)
	}
}
