package card

import (
	"strconv"
	"strings"

	"github.com/statscard/statscard/pkg/svg"
)

// Mode is the card's display regime, keyed by whether metric rows and the
// rank indicator are visible. Geometry and rank placement both branch on
// the same Mode value so the two rule sets cannot drift apart.
type Mode int

const (
	// ModeStatsOnly shows metric rows with the rank indicator hidden.
	ModeStatsOnly Mode = iota
	// ModeCombined shows metric rows next to the rank indicator.
	ModeCombined
	// ModeRankOnly shows only the rank indicator.
	ModeRankOnly
)

// String implements fmt.Stringer for log output.
func (m Mode) String() string {
	switch m {
	case ModeStatsOnly:
		return "stats-only"
	case ModeCombined:
		return "combined"
	case ModeRankOnly:
		return "rank-only"
	}
	return "unknown"
}

// ResolveMode maps the two visibility inputs onto the display regime.
// Zero entries with rank hidden never reaches geometry: BuildCatalog
// rejects that combination first.
func ResolveMode(entryCount int, rankVisible bool) Mode {
	switch {
	case !rankVisible:
		return ModeStatsOnly
	case entryCount > 0:
		return ModeCombined
	default:
		return ModeRankOnly
	}
}

// Width and height constants per regime. Each regime carries a (minimum,
// default) pair so the card never becomes degenerately narrow for long
// titles or localized text while still honoring explicit widening.
const (
	statsOnlyMinWidth     = 287.0
	statsOnlyDefaultWidth = 287.0
	combinedMinWidth      = 420.0
	combinedDefaultWidth  = 450.0
	rankOnlyMinWidth      = 290.0
	rankOnlyDefaultWidth  = 290.0

	// iconWidthBonus widens the card when row icons are enabled.
	iconWidthBonus = 17.0

	// heightPadding is the vertical space around the row stack.
	heightPadding = 45.0

	// Height floors guarantee vertical room for the rank circle.
	combinedHeightFloor = 150.0
	rankOnlyHeightFloor = 180.0

	// titleWidthPadding surrounds the estimated title width when it
	// drives the stats-only minimum.
	titleWidthPadding = 50.0
)

// Geometry is the computed card frame. Width is never below MinWidth and
// Height never below the regime floor; both are fixed once derived.
type Geometry struct {
	Width  float64
	Height float64
	Mode   Mode

	// MinWidth and DefaultWidth are the regime pair after the icon
	// bonus, kept for rank badge placement.
	MinWidth     float64
	DefaultWidth float64
	IconBonus    float64
}

// ComputeGeometry derives the card frame from content volume and options.
// The title is measured to keep long or localized titles inside the
// stats-only minimum. A non-numeric CardWidth is ignored and the regime
// default applies; an explicit numeric width is honored but clamped to
// the regime minimum.
func ComputeGeometry(entryCount int, opts Options, title string) Geometry {
	mode := ResolveMode(entryCount, !opts.HideRank)

	var minWidth, defaultWidth float64
	switch mode {
	case ModeCombined:
		minWidth, defaultWidth = combinedMinWidth, combinedDefaultWidth
	case ModeRankOnly:
		minWidth, defaultWidth = rankOnlyMinWidth, rankOnlyDefaultWidth
	default:
		titleWidth := svg.MeasureText(title, svg.DefaultMeasureFontSize)
		minWidth = max(statsOnlyMinWidth, titleWidthPadding+2*titleWidth)
		defaultWidth = statsOnlyDefaultWidth
	}

	iconBonus := 0.0
	if opts.ShowIcons && entryCount > 0 {
		iconBonus = iconWidthBonus
	}
	minWidth += iconBonus
	defaultWidth += iconBonus

	width := defaultWidth
	if o := strings.TrimSpace(opts.CardWidth); o != "" {
		if v, err := strconv.ParseFloat(o, 64); err == nil {
			width = v
		}
	}
	width = max(width, minWidth)

	height := heightPadding + float64(entryCount+1)*opts.lineHeight()
	switch mode {
	case ModeCombined:
		height = max(height, combinedHeightFloor)
	case ModeRankOnly:
		height = max(height, rankOnlyHeightFloor)
	}

	return Geometry{
		Width:        width,
		Height:       height,
		Mode:         mode,
		MinWidth:     minWidth,
		DefaultWidth: defaultWidth,
		IconBonus:    iconBonus,
	}
}
