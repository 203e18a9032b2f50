package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/statscard/statscard/pkg/card"
	"github.com/statscard/statscard/pkg/integrations/github"
	"github.com/statscard/statscard/pkg/pipeline"
)

type stubFetcher struct {
	stats *github.UserStats
	err   error
}

func (f *stubFetcher) FetchUserStats(ctx context.Context, username string, opts github.FetchOptions, refresh bool) (*github.UserStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func testServer(t *testing.T, fetcher pipeline.Fetcher) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(fetcher, nil, nil, logger)
	return New(runner, logger)
}

func okFetcher() *stubFetcher {
	return &stubFetcher{stats: &github.UserStats{
		Login:        "octocat",
		Name:         "The Octocat",
		TotalStars:   500,
		TotalCommits: 1000,
		TotalPRs:     200,
		TotalIssues:  100,
	}}
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleCard(t *testing.T) {
	rec := get(t, testServer(t, okFetcher()), "/api?username=octocat")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Errorf("content type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "s-maxage=14400") {
		t.Errorf("cache control = %q, want default s-maxage", cc)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "The Octocat") {
		t.Error("body missing user name")
	}
	if !strings.Contains(body, `data-testid="stars"`) {
		t.Error("body missing stats rows")
	}
}

func TestHandleCardQueryOptions(t *testing.T) {
	target := "/api?username=octocat&hide=stars,issues&show_icons=true&theme=dark&hide_rank=true"
	rec := get(t, testServer(t, okFetcher()), target)

	body := rec.Body.String()
	if strings.Contains(body, `data-testid="stars"`) {
		t.Error("hidden metric rendered")
	}
	if !strings.Contains(body, `data-testid="icon"`) {
		t.Error("icons not enabled")
	}
	if strings.Contains(body, `data-testid="rank-circle"`) {
		t.Error("rank rendered despite hide_rank")
	}
}

func TestHandleCardCacheSecondsClamped(t *testing.T) {
	s := testServer(t, okFetcher())

	rec := get(t, s, "/api?username=octocat&cache_seconds=1")
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "s-maxage=7200") {
		t.Errorf("cache control = %q, want clamped floor", cc)
	}

	rec = get(t, s, "/api?username=octocat&cache_seconds=9999999")
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "s-maxage=86400") {
		t.Errorf("cache control = %q, want clamped ceiling", cc)
	}
}

func TestHandleCardMissingUsername(t *testing.T) {
	rec := get(t, testServer(t, okFetcher()), "/api")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want error card with 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong!") {
		t.Error("body is not an error card")
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("cache control = %q, want no-store", cc)
	}
}

func TestHandleCardUserNotFound(t *testing.T) {
	rec := get(t, testServer(t, &stubFetcher{err: github.ErrUserNotFound}), "/api?username=ghost")

	body := rec.Body.String()
	if !strings.Contains(body, "Could not find a user") {
		t.Errorf("body = %.200s", body)
	}
	if !strings.Contains(body, "USER_NOT_FOUND") {
		t.Error("body missing error code")
	}
}

func TestHandleCardRequestID(t *testing.T) {
	s := testServer(t, okFetcher())

	rec := get(t, s, "/healthz")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("request id not assigned")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("request id = %q, want upstream value honored", got)
	}
}

func TestParseOptions(t *testing.T) {
	q := url.Values{}
	q.Set("username", " octocat ")
	q.Set("hide", "stars, commits")
	q.Set("show", "reviews")
	q.Set("text_bold", "false")
	q.Set("line_height", "30")
	q.Set("card_width", "600")
	q.Set("number_format", "long")
	q.Set("rank_icon", "percentile")

	opts := parseOptions(q)

	if opts.Username != "octocat" {
		t.Errorf("Username = %q", opts.Username)
	}
	if len(opts.Card.Hide) != 2 || opts.Card.Hide[0] != card.MetricStars || opts.Card.Hide[1] != card.MetricCommits {
		t.Errorf("Hide = %v", opts.Card.Hide)
	}
	if len(opts.Card.Show) != 1 || opts.Card.Show[0] != card.MetricReviews {
		t.Errorf("Show = %v", opts.Card.Show)
	}
	if opts.Card.TextBold {
		t.Error("text_bold=false not applied")
	}
	if opts.Card.LineHeight != 30 {
		t.Errorf("LineHeight = %v", opts.Card.LineHeight)
	}
	if opts.Card.CardWidth != "600" {
		t.Errorf("CardWidth = %q", opts.Card.CardWidth)
	}
	if opts.Card.NumberFormat != card.NumberFormatLong {
		t.Errorf("NumberFormat = %q", opts.Card.NumberFormat)
	}
	if opts.Card.RankIcon != card.RankIconPercentile {
		t.Errorf("RankIcon = %q", opts.Card.RankIcon)
	}
}

func TestParseOptionsDefaults(t *testing.T) {
	q := url.Values{}
	q.Set("username", "octocat")
	q.Set("number_format", "bogus")
	q.Set("rank_icon", "bogus")
	q.Set("line_height", "not-a-number")

	opts := parseOptions(q)

	if !opts.Card.TextBold {
		t.Error("TextBold default lost")
	}
	if opts.Card.Theme != "default" {
		t.Errorf("Theme = %q", opts.Card.Theme)
	}
	if opts.Card.NumberFormat != card.NumberFormatShort {
		t.Errorf("NumberFormat = %q, want short fallback", opts.Card.NumberFormat)
	}
	if opts.Card.RankIcon != card.RankIconDefault {
		t.Errorf("RankIcon = %q, want default fallback", opts.Card.RankIcon)
	}
	if opts.Card.LineHeight != card.DefaultLineHeight {
		t.Errorf("LineHeight = %v, want default on parse failure", opts.Card.LineHeight)
	}
}
