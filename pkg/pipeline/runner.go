package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/statscard/statscard/pkg/cache"
	"github.com/statscard/statscard/pkg/card"
	"github.com/statscard/statscard/pkg/integrations/github"
	"github.com/statscard/statscard/pkg/observability"
	"github.com/statscard/statscard/pkg/rank"
)

// Fetcher collects a user's contribution statistics. The GitHub client
// satisfies this; tests substitute a stub.
type Fetcher interface {
	FetchUserStats(ctx context.Context, username string, opts github.FetchOptions, refresh bool) (*github.UserStats, error)
}

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Fetcher Fetcher
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
}

// NewRunner creates a runner with the given fetcher, cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(fetcher Fetcher, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Fetcher: fetcher,
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
	}
}

// Execute runs the complete fetch → rank → compose pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1+2: Fetch and rank
	fetchStart := time.Now()
	stats, statsHit, err := r.FetchWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Stats = stats
	result.Timing.FetchTime = time.Since(fetchStart)
	result.CacheInfo.StatsHit = statsHit

	statsData, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("serialize stats: %w", err)
	}
	result.StatsHash = cache.Hash(statsData)

	r.Logger.Info("fetched statistics",
		"username", opts.Username,
		"cache_hit", statsHit,
		"duration", result.Timing.FetchTime)

	// Stage 3: Compose
	composeStart := time.Now()
	svg, cardHit, err := r.ComposeWithCacheInfo(ctx, stats, result.StatsHash, opts)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	result.SVG = svg
	result.Timing.ComposeTime = time.Since(composeStart)
	result.CacheInfo.CardHit = cardHit

	r.Logger.Info("composed card",
		"bytes", len(svg),
		"cache_hit", cardHit,
		"duration", result.Timing.ComposeTime)

	return result, nil
}

// FetchWithCacheInfo retrieves statistics with caching and returns cache
// hit info. The computed rank is baked into the returned snapshot so a
// cache hit skips the rank stage too.
func (r *Runner) FetchWithCacheInfo(ctx context.Context, opts Options) (card.Stats, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return card.Stats{}, false, err
	}

	cacheKey := r.Keyer.StatsKey(opts.Username, cache.StatsKeyOpts{
		AllCommits: opts.Card.AllCommits,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var stats card.Stats
			if err := json.Unmarshal(data, &stats); err == nil {
				observability.Cache().OnCacheHit(ctx, observability.CacheKeyStats)
				return stats, true, nil
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, observability.CacheKeyStats)

	fetchStart := time.Now()
	observability.Pipeline().OnFetchStart(ctx, opts.Username)
	raw, err := r.Fetcher.FetchUserStats(ctx, opts.Username, github.FetchOptions{
		AllCommits: opts.Card.AllCommits,
	}, opts.Refresh)
	observability.Pipeline().OnFetchComplete(ctx, opts.Username, time.Since(fetchStart), err)
	if err != nil {
		return card.Stats{}, false, err
	}

	stats := buildStats(raw, opts.Card.AllCommits)

	if data, err := json.Marshal(stats); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.StatsTTL)
		observability.Cache().OnCacheSet(ctx, observability.CacheKeyStats, len(data))
	}
	return stats, false, nil
}

// Fetch is a convenience wrapper that calls FetchWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Fetch(ctx context.Context, opts Options) (card.Stats, error) {
	stats, _, err := r.FetchWithCacheInfo(ctx, opts)
	return stats, err
}

// ComposeWithCacheInfo renders the card with caching and returns cache
// hit info. The cache key covers the statistics snapshot and every
// option that affects the output.
func (r *Runner) ComposeWithCacheInfo(ctx context.Context, stats card.Stats, statsHash string, opts Options) ([]byte, bool, error) {
	optsData, err := json.Marshal(opts.Card)
	if err != nil {
		return nil, false, fmt.Errorf("serialize options for cache key: %w", err)
	}
	cacheKey := r.Keyer.CardKey(opts.Username, cache.CardKeyOpts{
		StatsHash:   statsHash,
		OptionsHash: cache.Hash(optsData),
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, observability.CacheKeyCard)
			return data, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, observability.CacheKeyCard)

	composeStart := time.Now()
	observability.Pipeline().OnComposeStart(ctx, opts.Username)
	svg, err := card.Render(stats, opts.Card)
	observability.Pipeline().OnComposeComplete(ctx, opts.Username, len(svg), time.Since(composeStart), err)
	if err != nil {
		return nil, false, err
	}

	data := []byte(svg)
	_ = r.Cache.Set(ctx, cacheKey, data, cache.CardTTL)
	observability.Cache().OnCacheSet(ctx, observability.CacheKeyCard, len(data))
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// buildStats reduces the raw API totals into the card's snapshot,
// including the computed rank.
func buildStats(raw *github.UserStats, allCommits bool) card.Stats {
	rk := rank.Compute(rank.Inputs{
		AllCommits: allCommits,
		Commits:    raw.TotalCommits,
		PRs:        raw.TotalPRs,
		Issues:     raw.TotalIssues,
		Reviews:    raw.TotalReviews,
		Stars:      raw.TotalStars,
		Followers:  raw.Followers,
	})

	return card.Stats{
		Name:                     raw.Name,
		TotalStars:               raw.TotalStars,
		TotalCommits:             raw.TotalCommits,
		TotalPRs:                 raw.TotalPRs,
		TotalPRsMerged:           raw.TotalPRsMerged,
		MergedPRsPercentage:      raw.MergedPRsPercentage,
		TotalReviews:             raw.TotalReviews,
		TotalIssues:              raw.TotalIssues,
		TotalDiscussionsStarted:  raw.DiscussionsStarted,
		TotalDiscussionsAnswered: raw.DiscussionsAnswered,
		ContributedTo:            raw.ContributedTo,
		Rank: card.RankInfo{
			Level:      rk.Level,
			Percentile: rk.Percentile,
		},
	}
}
