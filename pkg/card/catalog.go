package card

import (
	goerrors "errors"
	"fmt"
	"time"

	"github.com/statscard/statscard/pkg/errors"
	"github.com/statscard/statscard/pkg/i18n"
	"github.com/statscard/statscard/pkg/svg"
)

// Entry is one visible metric: an icon glyph, a localized label, and a
// formatted value. Entries are immutable once built and identified by ID.
type Entry struct {
	ID    MetricID
	Label string
	Value string
	Unit  string // appended after the value, e.g. "%"
	Icon  string // opaque glyph markup, may be empty
}

// catalogRow is one row of the declarative metric table: an id, a
// predicate deciding inclusion, and a value formatter. Labels come from
// the i18n tables; label suffixes (the commits year stamp) are produced
// by the optional labelSuffix hook.
type catalogRow struct {
	id          MetricID
	include     func(o Options) bool
	value       func(s Stats, o Options) string
	unit        string
	labelSuffix func(o Options, now time.Time) string
}

// inBase marks rows that are always part of the catalog unless hidden.
func inBase(Options) bool { return true }

// counter builds a value formatter for a plain integer field.
func counter(get func(Stats) int) func(Stats, Options) string {
	return func(s Stats, o Options) string {
		return FormatValue(get(s), o.NumberFormat)
	}
}

// catalog is the full ordered metric table: the fixed base catalog first,
// then the extension catalog in its fixed relative order. Display order is
// table order; hiding and extension selection never reorder entries.
var catalog = []catalogRow{
	{id: MetricStars, include: inBase, value: counter(func(s Stats) int { return s.TotalStars })},
	{
		id:      MetricCommits,
		include: inBase,
		value:   counter(func(s Stats) int { return s.TotalCommits }),
		labelSuffix: func(o Options, now time.Time) string {
			if o.AllCommits {
				return ""
			}
			return fmt.Sprintf(" (%d)", now.Year())
		},
	},
	{id: MetricPRs, include: inBase, value: counter(func(s Stats) int { return s.TotalPRs })},
	{id: MetricIssues, include: inBase, value: counter(func(s Stats) int { return s.TotalIssues })},
	{id: MetricContribs, include: inBase, value: counter(func(s Stats) int { return s.ContributedTo })},

	{
		id:      MetricPRsMerged,
		include: func(o Options) bool { return o.requested(MetricPRsMerged) },
		value:   counter(func(s Stats) int { return s.TotalPRsMerged }),
	},
	{
		id:      MetricPRsMergedPercentage,
		include: func(o Options) bool { return o.requested(MetricPRsMergedPercentage) },
		value:   func(s Stats, o Options) string { return formatPercentage(s.MergedPRsPercentage) },
		unit:    "%",
	},
	{
		id:      MetricReviews,
		include: func(o Options) bool { return o.requested(MetricReviews) },
		value:   counter(func(s Stats) int { return s.TotalReviews }),
	},
	{
		id:      MetricDiscussionsStarted,
		include: func(o Options) bool { return o.requested(MetricDiscussionsStarted) },
		value:   counter(func(s Stats) int { return s.TotalDiscussionsStarted }),
	},
	{
		id:      MetricDiscussionsAnswered,
		include: func(o Options) bool { return o.requested(MetricDiscussionsAnswered) },
		value:   counter(func(s Stats) int { return s.TotalDiscussionsAnswered }),
	},
}

// BuildCatalog selects and formats the visible metric entries for one
// render. The result preserves catalog order. It fails only when nothing
// would be displayed at all: no visible entries and the rank indicator
// hidden too.
func BuildCatalog(stats Stats, opts Options, now time.Time) ([]Entry, error) {
	entries := make([]Entry, 0, len(catalog))

	for _, row := range catalog {
		if !row.include(opts) || opts.hidden(row.id) {
			continue
		}

		label := i18n.MetricLabel(opts.Locale, string(row.id))
		if row.labelSuffix != nil {
			label += row.labelSuffix(opts, now)
		}

		entries = append(entries, Entry{
			ID:    row.id,
			Label: label,
			Value: row.value(stats, opts),
			Unit:  row.unit,
			Icon:  svg.MetricIcon(string(row.id)),
		})
	}

	if len(entries) == 0 && opts.HideRank {
		return nil, errors.Wrap(errors.ErrCodeCardEmpty,
			goerrors.New("either stats or rank must be visible"),
			"could not render stats card")
	}
	return entries, nil
}
