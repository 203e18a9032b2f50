package svg

import (
	"fmt"
	"math"
)

// Metric icons are 16x16 octicon-style glyphs, stored as ready-to-embed
// path markup. The catalog is keyed by metric id; unknown ids resolve to
// an empty string and the renderer simply omits the glyph.
var metricIcons = map[string]string{
	"stars": `<path fill-rule="evenodd" d="M8 .25a.75.75 0 01.673.418l1.882 3.815 4.21.612a.75.75 0 01.416 1.279l-3.046 2.97.719 4.192a.75.75 0 01-1.088.791L8 12.347l-3.766 1.98a.75.75 0 01-1.088-.79l.72-4.194L.818 6.374a.75.75 0 01.416-1.28l4.21-.611L7.327.668A.75.75 0 018 .25z"/>`,
	"commits": `<path fill-rule="evenodd" d="M1.643 3.143L.427 1.927A.25.25 0 000 2.104V5.75c0 .138.112.25.25.25h3.646a.25.25 0 00.177-.427L2.715 4.215a6.5 6.5 0 11-1.18 4.458.75.75 0 10-1.493.154 8.001 8.001 0 101.6-5.684zM7.75 4a.75.75 0 01.75.75v2.992l2.028.812a.75.75 0 01-.557 1.392l-2.5-1A.75.75 0 017 8.25v-3.5A.75.75 0 017.75 4z"/>`,
	"prs": `<path fill-rule="evenodd" d="M7.177 3.073L9.573.677A.25.25 0 0110 .854v4.792a.25.25 0 01-.427.177L7.177 3.427a.25.25 0 010-.354zM3.75 2.5a.75.75 0 100 1.5.75.75 0 000-1.5zm-2.25.75a2.25 2.25 0 113 2.122v5.256a2.251 2.251 0 11-1.5 0V5.372A2.25 2.25 0 011.5 3.25zM11 2.5h-1V4h1a1 1 0 011 1v5.628a2.251 2.251 0 101.5 0V5A2.5 2.5 0 0011 2.5zm1 10.25a.75.75 0 111.5 0 .75.75 0 01-1.5 0zM3.75 12a.75.75 0 100 1.5.75.75 0 000-1.5z"/>`,
	"issues": `<path fill-rule="evenodd" d="M8 9.5a1.5 1.5 0 100-3 1.5 1.5 0 000 3z"/><path fill-rule="evenodd" d="M8 0a8 8 0 100 16A8 8 0 008 0zM1.5 8a6.5 6.5 0 1113 0 6.5 6.5 0 01-13 0z"/>`,
	"contribs": `<path fill-rule="evenodd" d="M5 3.25a.75.75 0 11-1.5 0 .75.75 0 011.5 0zm0 2.122a2.25 2.25 0 10-1.5 0v.878A2.25 2.25 0 005.75 8.5h1.5v2.128a2.251 2.251 0 101.5 0V8.5h1.5a2.25 2.25 0 002.25-2.25v-.878a2.25 2.25 0 10-1.5 0v.878a.75.75 0 01-.75.75h-4.5A.75.75 0 015 6.25v-.878zm3.75 7.378a.75.75 0 11-1.5 0 .75.75 0 011.5 0zm3-8.75a.75.75 0 100-1.5.75.75 0 000 1.5z"/>`,
	"prs_merged": `<path fill-rule="evenodd" d="M5.45 5.154A4.25 4.25 0 009.25 7.5h1.378a2.251 2.251 0 110 1.5H9.25A5.734 5.734 0 015 7.123v3.505a2.25 2.25 0 11-1.5 0V5.372a2.25 2.25 0 111.95-.218zM4.25 13.5a.75.75 0 100-1.5.75.75 0 000 1.5zm8.5-4.5a.75.75 0 100-1.5.75.75 0 000 1.5zM5 3.25a.75.75 0 10.005.005A.75.75 0 005 3.25z"/>`,
	"prs_merged_percentage": `<path fill-rule="evenodd" d="M5.45 5.154A4.25 4.25 0 009.25 7.5h1.378a2.251 2.251 0 110 1.5H9.25A5.734 5.734 0 015 7.123v3.505a2.25 2.25 0 11-1.5 0V5.372a2.25 2.25 0 111.95-.218zM4.25 13.5a.75.75 0 100-1.5.75.75 0 000 1.5zm8.5-4.5a.75.75 0 100-1.5.75.75 0 000 1.5zM5 3.25a.75.75 0 10.005.005A.75.75 0 005 3.25z"/>`,
	"reviews": `<path fill-rule="evenodd" d="M1.75 1A1.75 1.75 0 000 2.75v8.5C0 12.216.784 13 1.75 13H3v1.543a1.457 1.457 0 002.487 1.03L8.061 13h6.189A1.75 1.75 0 0016 11.25v-8.5A1.75 1.75 0 0014.25 1H1.75zm5.03 3.47a.75.75 0 010 1.06L5.31 7l1.47 1.47a.75.75 0 01-1.06 1.06l-2-2a.75.75 0 010-1.06l2-2a.75.75 0 011.06 0zm2.44 0a.75.75 0 000 1.06L10.69 7 9.22 8.47a.75.75 0 101.06 1.06l2-2a.75.75 0 000-1.06l-2-2a.75.75 0 00-1.06 0z"/>`,
	"discussions_started": `<path fill-rule="evenodd" d="M1.75 1A1.75 1.75 0 000 2.75v5.5C0 9.216.784 10 1.75 10H3v2.25a.25.25 0 00.427.177L5.854 10h4.396A1.75 1.75 0 0012 8.25v-5.5A1.75 1.75 0 0010.25 1H1.75zM14.5 4.75a.25.25 0 00-.25-.25h-.5a.75.75 0 110-1.5h.5c.966 0 1.75.784 1.75 1.75v5.5A1.75 1.75 0 0114.25 12H14v2.25a.25.25 0 01-.427.177L11.146 12H9.75a1.75 1.75 0 01-1.75-1.75v-.5a.75.75 0 111.5 0v.5c0 .138.112.25.25.25h1.396a.75.75 0 01.53.22l1.324 1.323V11.25a.75.75 0 01.75-.75h.5a.25.25 0 00.25-.25v-5.5z"/>`,
	"discussions_answered": `<path fill-rule="evenodd" d="M0 8a8 8 0 1116 0A8 8 0 010 8zm11.78-1.72a.75.75 0 00-1.06-1.06L6.75 9.19 5.28 7.72a.75.75 0 00-1.06 1.06l2 2a.75.75 0 001.06 0l4.5-4.5z"/>`,
}

// githubLogoPath is the GitHub mark used by the "github" rank icon variant.
const githubLogoPath = `<path fill-rule="evenodd" d="M8 0C3.58 0 0 3.58 0 8c0 3.54 2.29 6.53 5.47 7.59.4.07.55-.17.55-.38 0-.19-.01-.82-.01-1.49-2.01.37-2.53-.49-2.69-.94-.09-.23-.48-.94-.82-1.13-.28-.15-.68-.52-.01-.53.63-.01 1.08.58 1.23.82.72 1.21 1.87.87 2.33.66.07-.52.28-.87.51-1.07-1.78-.2-3.64-.89-3.64-3.95 0-.87.31-1.59.82-2.15-.08-.2-.36-1.02.08-2.12 0 0 .67-.21 2.2.82.64-.18 1.32-.27 2-.27.68 0 1.36.09 2 .27 1.53-1.04 2.2-.82 2.2-.82.44 1.1.16 1.92.08 2.12.51.56.82 1.27.82 2.15 0 3.07-1.87 3.75-3.65 3.95.29.25.54.73.54 1.48 0 1.07-.01 1.93-.01 2.2 0 .21.15.46.55.38A8.012 8.012 0 0016 8c0-4.42-3.58-8-8-8z"/>`

// MetricIcon returns the glyph markup for a metric id, or "" if the
// catalog has no icon for it.
func MetricIcon(id string) string {
	return metricIcons[id]
}

// RankCircleRadius is the radius of the rank progress ring.
const RankCircleRadius = 40.0

// CircleProgress converts an arc progress value in [0, 100] into the
// stroke-dashoffset that leaves that fraction of the ring filled.
func CircleProgress(progress float64) float64 {
	c := 2 * math.Pi * RankCircleRadius
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return c - (progress/100)*c
}

// RankBadge renders the inner markup of the rank indicator group: the ring
// rim, the progress circle, and the level display. The caller positions the
// group; progress animation comes from the card CSS.
//
// Supported variants: "default" (letter grade), "percentile" (numeric
// percentile), "github" (GitHub mark instead of text).
func RankBadge(level string, percentile float64, variant string) string {
	var display string
	switch variant {
	case "github":
		display = fmt.Sprintf(`<g class="rank-icon" transform="translate(-25, -9) scale(2.2)">%s</g>`, githubLogoPath)
	case "percentile":
		display = fmt.Sprintf(
			`<text x="-5" y="3" alignment-baseline="central" dominant-baseline="central" text-anchor="middle" class="rank-percentile-text">%.0f<tspan class="rank-percentile-sign">%%</tspan></text>`,
			math.Floor(percentile))
	default:
		display = fmt.Sprintf(
			`<text x="-5" y="3" alignment-baseline="central" dominant-baseline="central" text-anchor="middle" class="rank-text">%s</text>`,
			EscapeXML(level))
	}

	return fmt.Sprintf(`<g data-testid="rank-circle">
  <circle class="rank-circle-rim" cx="-10" cy="8" r="%.0f"/>
  <circle class="rank-circle" cx="-10" cy="8" r="%.0f"/>
  %s
</g>`, RankCircleRadius, RankCircleRadius, display)
}
