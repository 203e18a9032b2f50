package card

import (
	"fmt"
	"strings"
	"time"

	"github.com/statscard/statscard/pkg/i18n"
	"github.com/statscard/statscard/pkg/svg"
	"github.com/statscard/statscard/pkg/themes"
)

// Row geometry constants. The value column starts at a fixed offset from
// the label so value columns stay aligned across rows regardless of label
// length; long-label locales get a flat extra shift.
const (
	rowIndentX       = 25.0
	labelOffsetX     = 25.0 // label shift when a row icon is present
	valueColumnX     = 120.0
	valueColumnIconX = 140.0
	longLocaleShift  = 50.0
	rowBaselineY     = 12.5

	// staggerDelayStep is the per-row animation delay increment.
	staggerDelayStep = 150
)

// Render produces the complete stats card SVG. It is the orchestration
// entry point: catalog selection, geometry, rank placement, row flow, and
// chrome are wired together here. The only failure mode is the empty-card
// configuration error from BuildCatalog.
func Render(stats Stats, opts Options) (string, error) {
	return RenderAt(stats, opts, time.Now())
}

// RenderAt is Render with a pinned clock. The commits label carries the
// current calendar year; pinning now makes output byte-for-byte
// reproducible.
func RenderAt(stats Stats, opts Options, now time.Time) (string, error) {
	entries, err := BuildCatalog(stats, opts, now)
	if err != nil {
		return "", err
	}

	title := resolveTitle(stats, opts, len(entries))
	geom := ComputeGeometry(len(entries), opts, title)
	colors := resolveColors(opts)
	longLocale := i18n.IsLongLocale(opts.Locale)

	var body strings.Builder
	body.WriteString(`    <svg x="0" y="0">` + "\n")

	rows := make([]string, len(entries))
	for i, e := range entries {
		rows[i] = statRow(e, i, opts, longLocale)
	}
	for _, positioned := range Flex(rows, FlexOptions{Gap: opts.lineHeight(), Direction: DirectionColumn}) {
		body.WriteString("      " + positioned + "\n")
	}
	body.WriteString("    </svg>")

	if placement, ok := PlaceRankBadge(geom); ok {
		badge := svg.RankBadge(stats.Rank.Level, stats.Rank.Percentile, opts.RankIcon)
		body.WriteString(fmt.Sprintf("\n    <g data-testid=\"rank-badge\" transform=\"translate(%g, %g)\">\n%s\n    </g>",
			placement.X, placement.Y, badge))
	}

	cardOpts := []svg.CardOption{
		svg.WithTitle(title),
		svg.WithColors(colors),
		svg.WithCSS(cardCSS(colors, opts, stats.Rank.Progress())),
		svg.WithBorderRadius(opts.BorderRadius),
		svg.WithAccessibility(accessibilityTitle(stats, opts, len(entries)), accessibilityDesc(entries)),
		svg.WithBody(body.String()),
	}
	if opts.HideBorder {
		cardOpts = append(cardOpts, svg.WithHideBorder())
	}
	if opts.HideTitle {
		cardOpts = append(cardOpts, svg.WithHideTitle())
	}
	if opts.DisableAnimations {
		cardOpts = append(cardOpts, svg.WithoutAnimations())
	}

	return svg.NewCard(geom.Width, geom.Height, cardOpts...).Render(), nil
}

// resolveTitle prefers a custom title, then the localized default, which
// differs for rank-only cards.
func resolveTitle(stats Stats, opts Options, entryCount int) string {
	if opts.CustomTitle != "" {
		return opts.CustomTitle
	}
	if entryCount == 0 && !opts.HideRank {
		return i18n.RankTitle(opts.Locale, stats.Name)
	}
	return i18n.StatsTitle(opts.Locale, stats.Name)
}

func resolveColors(opts Options) svg.CardColors {
	c := themes.ResolveColors(themes.Overrides{
		Title:      opts.TitleColor,
		Icon:       opts.IconColor,
		Text:       opts.TextColor,
		Background: opts.BgColor,
		Border:     opts.BorderColor,
		Ring:       opts.RingColor,
	}, opts.Theme)
	return svg.CardColors{
		Title:      c.Title,
		Icon:       c.Icon,
		Text:       c.Text,
		Background: c.Background,
		Border:     c.Border,
		Ring:       c.Ring,
	}
}

// statRow renders one metric row: optional icon, label, then the value in
// its aligned column.
func statRow(e Entry, index int, opts Options, longLocale bool) string {
	bold := "bold"
	if !opts.TextBold {
		bold = "not_bold"
	}

	var icon, labelX string
	if opts.ShowIcons && e.Icon != "" {
		icon = fmt.Sprintf(
			`<svg data-testid="icon" class="icon" viewBox="0 0 16 16" version="1.1" width="16" height="16">%s</svg>`,
			e.Icon)
		labelX = fmt.Sprintf(` x="%g"`, labelOffsetX)
	}

	valueX := valueColumnX
	if opts.ShowIcons {
		valueX = valueColumnIconX
	}
	if longLocale {
		valueX += longLocaleShift
	}

	value := e.Value
	if e.Unit != "" {
		value += e.Unit
	}

	delay := (index + 1) * staggerDelayStep
	return fmt.Sprintf(
		`<g class="stagger" style="animation-delay: %dms" transform="translate(%g, 0)">%s<text class="stat %s"%s y="%g">%s:</text><text class="stat %s" x="%g" y="%g" data-testid="%s">%s</text></g>`,
		delay, rowIndentX, icon, bold, labelX, rowBaselineY, svg.EscapeXML(e.Label), bold, valueX, rowBaselineY, e.ID, svg.EscapeXML(value))
}

// accessibilityTitle mirrors the visible title for screen readers.
func accessibilityTitle(stats Stats, opts Options, entryCount int) string {
	if opts.CustomTitle != "" {
		return opts.CustomTitle
	}
	if entryCount == 0 && !opts.HideRank {
		return fmt.Sprintf("%s's GitHub Rank", stats.Name)
	}
	return fmt.Sprintf("%s's GitHub Stats", stats.Name)
}

// accessibilityDesc joins every visible entry as "label: value" pairs.
func accessibilityDesc(entries []Entry) string {
	pairs := make([]string, len(entries))
	for i, e := range entries {
		pairs[i] = fmt.Sprintf("%s: %s%s", e.Label, e.Value, e.Unit)
	}
	return strings.Join(pairs, ", ")
}

// cardCSS builds the renderer-specific stylesheet handed to the chrome.
func cardCSS(c svg.CardColors, opts Options, progress float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "    .stat { font: 600 14px 'Segoe UI', Ubuntu, \"Helvetica Neue\", Sans-Serif; fill: #%s; }\n", c.Text)
	b.WriteString("    @supports(-moz-appearance: auto) { .stat { font-size: 12px; } }\n")
	b.WriteString("    .stagger { opacity: 0; animation: fadeInAnimation 0.3s ease-in-out forwards; }\n")
	fmt.Fprintf(&b, "    .icon { fill: #%s; display: block; }\n", c.Icon)
	b.WriteString("    .not_bold { font-weight: 400; }\n")
	b.WriteString("    .bold { font-weight: 700; }\n")

	if opts.HideRank {
		return b.String()
	}

	fmt.Fprintf(&b, "    .rank-text { font: 800 24px 'Segoe UI', Ubuntu, Sans-Serif; fill: #%s; animation: scaleInAnimation 0.3s ease-in-out forwards; }\n", c.Text)
	fmt.Fprintf(&b, "    .rank-percentile-text { font: 800 18px 'Segoe UI', Ubuntu, Sans-Serif; fill: #%s; animation: scaleInAnimation 0.3s ease-in-out forwards; }\n", c.Text)
	b.WriteString("    .rank-percentile-sign { font-size: 16px; }\n")
	fmt.Fprintf(&b, "    .rank-icon { fill: #%s; }\n", c.Ring)
	fmt.Fprintf(&b, "    .rank-circle-rim { stroke: #%s; fill: none; stroke-width: 6; opacity: 0.2; }\n", c.Ring)
	fmt.Fprintf(&b,
		"    .rank-circle { stroke: #%s; stroke-dasharray: %.2f; fill: none; stroke-width: 6; stroke-linecap: round; opacity: 0.8; transform-origin: -10px 8px; transform: rotate(-90deg); stroke-dashoffset: %.2f; animation: rankAnimation 1s forwards ease-in-out; }\n",
		c.Ring, svg.CircleProgress(0), svg.CircleProgress(progress))
	fmt.Fprintf(&b, "    @keyframes rankAnimation { from { stroke-dashoffset: %.2f; } to { stroke-dashoffset: %.2f; } }\n",
		svg.CircleProgress(0), svg.CircleProgress(progress))
	b.WriteString("    @keyframes scaleInAnimation { from { transform: translate(-5px, 5px) scale(0); } to { transform: translate(-5px, 5px) scale(1); } }\n")

	return b.String()
}
