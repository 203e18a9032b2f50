package card

import "fmt"

// Direction selects the flow axis of a flex layout.
type Direction int

const (
	// DirectionRow flows items left to right.
	DirectionRow Direction = iota
	// DirectionColumn flows items top to bottom.
	DirectionColumn
)

// FlexOptions configure one Flex call. Gap is the fixed spacing inserted
// between consecutive items. Sizes optionally gives each item an own
// extent added to the running offset; when omitted (or shorter than the
// item list) missing sizes count as zero, so item i sits at exactly
// i × Gap.
type FlexOptions struct {
	Gap       float64
	Direction Direction
	Sizes     []float64
}

// Flex positions items along one axis with deterministic spacing. Each
// item is wrapped in a translated group; output order always equals input
// order. Empty items are dropped without consuming a slot.
func Flex(items []string, opts FlexOptions) []string {
	out := make([]string, 0, len(items))
	offset := 0.0

	for i, item := range items {
		if item == "" {
			continue
		}

		var transform string
		if opts.Direction == DirectionColumn {
			transform = fmt.Sprintf("translate(0, %g)", offset)
		} else {
			transform = fmt.Sprintf("translate(%g, 0)", offset)
		}
		out = append(out, fmt.Sprintf(`<g transform="%s">%s</g>`, transform, item))

		size := 0.0
		if i < len(opts.Sizes) {
			size = opts.Sizes[i]
		}
		offset += opts.Gap + size
	}
	return out
}
