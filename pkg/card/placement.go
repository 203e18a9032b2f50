package card

// rankAnchorInset is how far the combined-mode rank badge sits left of
// the regime minimum width.
const rankAnchorInset = 70.0

// RankPlacement is the translation applied to the rank badge group.
type RankPlacement struct {
	X float64
	Y float64
}

// PlaceRankBadge positions the rank badge for the given geometry. The
// second return is false when the regime shows no rank badge at all.
//
// In combined mode the badge centers within the slack between the regime
// minimum and the actual width; once the width exceeds the regime default
// the badge tracks the right edge, moving by exactly the surplus. The
// vertical translation always centers the circle with a fixed upward bias.
func PlaceRankBadge(g Geometry) (RankPlacement, bool) {
	if g.Mode == ModeStatsOnly {
		return RankPlacement{}, false
	}

	p := RankPlacement{Y: g.Height/2 - 50}

	if g.Mode == ModeRankOnly {
		// The circle's glyph content is left-weighted, hence the small
		// rightward bias on top of the geometric center.
		p.X = g.Width/2 + 10
		return p, true
	}

	anchor := combinedMinWidth + g.IconBonus - rankAnchorInset
	if g.Width > g.DefaultWidth {
		p.X = anchor + (g.DefaultWidth-g.MinWidth)/2 + (g.Width - g.DefaultWidth)
	} else {
		p.X = anchor + (g.Width-g.MinWidth)/2
	}
	return p, true
}
