// Package card implements the stats card layout engine.
//
// # Overview
//
// A stats card is a compact SVG badge showing labeled numeric metrics, an
// optional circular rank indicator, and a title. Every output dimension is
// derived from interacting, partially-optional inputs: hidden metrics, the
// icons toggle, locale-dependent label width, explicit width overrides, and
// whether the card shows stats, rank, or both. This package owns that
// derivation end to end:
//
//  1. Catalog ([BuildCatalog]): Select visible metric entries from the fixed
//     catalog plus requested extensions, in a stable order.
//  2. Geometry ([ComputeGeometry]): Compute card width and height from entry
//     count, icon usage, locale, rank visibility, and overrides.
//  3. Placement ([PlaceRankBadge]): Position the rank ring relative to the
//     computed card bounds.
//  4. Flow ([Flex]): Stack metric rows with deterministic gap spacing.
//  5. Compose ([Render]): Wire the stages together and delegate chrome and
//     serialization to the svg package.
//
// # Modes
//
// The card operates in one of three regimes, modeled by [Mode] and keyed by
// (has entries, rank visible): stats-only, combined, and rank-only. Both the
// geometry and the rank placement consume the same Mode value, so the two
// can never disagree about which rule set applies.
//
// # Determinism
//
// Rendering is pure: identical inputs produce byte-identical output. The
// only time dependency is the current-year stamp in the commits label, which
// callers can pin via [RenderAt].
package card
