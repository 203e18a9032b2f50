// Package pipeline provides the core badge pipeline for statscard.
//
// This package implements the complete fetch → rank → compose pipeline
// that can be used by CLI and server components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Collect user contribution statistics from the GitHub API
//  2. Rank: Compute the percentile and letter grade from the raw totals
//  3. Compose: Lay out and serialize the SVG card
//
// Fetch results and rendered cards are cached independently, so option
// tweaks reuse fetched statistics and repeat requests reuse whole cards.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(fetcher, cache, nil, logger)
//	opts := pipeline.Options{
//	    Username: "octocat",
//	    Card:     card.DefaultOptions(),
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.SVG
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/statscard/statscard/pkg/card"
	"github.com/statscard/statscard/pkg/integrations/github"
)

// Options contains all configuration for the badge pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Username is the GitHub login to build a card for.
	Username string `json:"username"`

	// Card carries every display option. Use card.DefaultOptions as the base.
	Card card.Options `json:"card"`

	// Refresh bypasses both cache layers and refetches from the API.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Stats is the statistics snapshot the card was rendered from,
	// including the computed rank.
	Stats card.Stats

	// StatsHash is the content hash of the statistics snapshot.
	StatsHash string

	// SVG is the rendered card.
	SVG []byte

	// Timing contains per-stage durations.
	Timing Timing

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Timing contains pipeline execution statistics.
type Timing struct {
	FetchTime   time.Duration
	ComposeTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	StatsHit bool // Whether the statistics snapshot came from cache
	CardHit  bool // Whether the rendered card came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := github.ValidateUsername(o.Username); err != nil {
		return fmt.Errorf("username: %w", err)
	}
	if o.Card.Theme == "" {
		o.Card.Theme = "default"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
