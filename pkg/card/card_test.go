package card

import (
	"strings"
	"testing"

	"github.com/statscard/statscard/pkg/errors"
)

func TestRenderAtFullCard(t *testing.T) {
	out, err := RenderAt(sampleStats(), DefaultOptions(), frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}

	for _, want := range []string{
		`width="450" height="195"`,
		`foo&#39;s GitHub Stats`,
		`data-testid="stars"`,
		`data-testid="contribs"`,
		`data-testid="rank-circle"`,
		`Total Commits (2026)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderAtRankOnly(t *testing.T) {
	opts := DefaultOptions()
	opts.Hide = allBaseIDs()

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}

	if !strings.Contains(out, `width="290" height="180"`) {
		t.Error("output missing rank-only geometry 290x180")
	}
	if !strings.Contains(out, "foo&#39;s GitHub Rank") {
		t.Error("output missing rank-only default title")
	}
	if strings.Contains(out, `data-testid="stars"`) {
		t.Error("hidden metric rendered")
	}
}

func TestRenderAtEmptyCardFails(t *testing.T) {
	opts := DefaultOptions()
	opts.Hide = allBaseIDs()
	opts.HideRank = true

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err == nil {
		t.Fatal("RenderAt() error = nil, want configuration error")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("error = %v, want CARD_EMPTY", err)
	}
	// No partial output on failure.
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestRenderAtNeverFailsWhileRankVisible(t *testing.T) {
	// Any hide set is fine as long as the rank indicator stays.
	for _, hide := range [][]MetricID{
		nil,
		{MetricStars},
		allBaseIDs(),
	} {
		opts := DefaultOptions()
		opts.Hide = hide
		if _, err := RenderAt(sampleStats(), opts, frozenNow); err != nil {
			t.Errorf("hide=%v: RenderAt() error = %v", hide, err)
		}
	}
}

func TestRenderAtIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowIcons = true
	opts.Show = []MetricID{MetricReviews}

	a, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	b, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if a != b {
		t.Error("two renders with identical inputs differ")
	}
}

func TestRenderAtLongLocaleShiftsValueColumn(t *testing.T) {
	opts := DefaultOptions()
	short, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}

	opts.Locale = "ru"
	long, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}

	// Value columns sit at 120 without icons; the long-label set adds
	// exactly 50.
	if !strings.Contains(short, `x="120"`) {
		t.Error("short locale output missing value column at 120")
	}
	if !strings.Contains(long, `x="170"`) {
		t.Error("long locale output missing value column at 170")
	}
	if strings.Contains(long, `x="120"`) {
		t.Error("long locale output still has unshifted value column")
	}
}

func TestRenderAtIconsShiftValueColumn(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowIcons = true
	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if !strings.Contains(out, `x="140"`) {
		t.Error("icon mode output missing value column at 140")
	}
	if !strings.Contains(out, `data-testid="icon"`) {
		t.Error("icon mode output missing icon glyphs")
	}
}

func TestRenderAtCustomTitleAndA11y(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomTitle = "My Numbers"

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if !strings.Contains(out, `<title id="titleId">My Numbers</title>`) {
		t.Error("accessibility title does not use the custom title")
	}
	if !strings.Contains(out, "Total Stars Earned: 100") {
		t.Error("accessibility description missing label: value pair")
	}
}

func TestRenderAtHideTitleTrimsHeight(t *testing.T) {
	opts := DefaultOptions()
	opts.HideTitle = true

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	// 195 - 30 title trim.
	if !strings.Contains(out, `height="165"`) {
		t.Error("output missing trimmed height 165")
	}
	if strings.Contains(out, `data-testid="card-title"`) {
		t.Error("hidden title still rendered")
	}
}

func TestRenderAtDisableAnimations(t *testing.T) {
	opts := DefaultOptions()
	opts.DisableAnimations = true

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if !strings.Contains(out, "animation-duration: 0s !important") {
		t.Error("output missing animation kill switch")
	}
}

func TestRenderAtTextBoldToggle(t *testing.T) {
	opts := DefaultOptions()
	opts.TextBold = false

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if !strings.Contains(out, `class="stat not_bold"`) {
		t.Error("output missing not_bold class")
	}
}

func TestRenderAtThemeColors(t *testing.T) {
	opts := DefaultOptions()
	opts.Theme = "dracula"

	out, err := RenderAt(sampleStats(), opts, frozenNow)
	if err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if !strings.Contains(out, "#ff6e96") {
		t.Error("output missing dracula title color")
	}
	if !strings.Contains(out, `fill="#282a36"`) {
		t.Error("output missing dracula background")
	}
}

func TestRenderAtRankIconVariants(t *testing.T) {
	base := DefaultOptions()

	opts := base
	opts.RankIcon = RankIconPercentile
	out, _ := RenderAt(sampleStats(), opts, frozenNow)
	if !strings.Contains(out, "rank-percentile-text") {
		t.Error("percentile variant missing percentile text")
	}

	opts = base
	opts.RankIcon = RankIconGithub
	out, _ = RenderAt(sampleStats(), opts, frozenNow)
	if !strings.Contains(out, "rank-icon") {
		t.Error("github variant missing logo group")
	}

	opts = base
	out, _ = RenderAt(sampleStats(), opts, frozenNow)
	if !strings.Contains(out, `class="rank-text"`) {
		t.Error("default variant missing level text")
	}
}
