package card

// MetricID identifies one displayable metric in the catalog.
type MetricID string

// Base catalog metric ids, in display order.
const (
	MetricStars    MetricID = "stars"
	MetricCommits  MetricID = "commits"
	MetricPRs      MetricID = "prs"
	MetricIssues   MetricID = "issues"
	MetricContribs MetricID = "contribs"
)

// Extension catalog metric ids, included only when requested via
// Options.Show, in display order.
const (
	MetricPRsMerged           MetricID = "prs_merged"
	MetricPRsMergedPercentage MetricID = "prs_merged_percentage"
	MetricReviews             MetricID = "reviews"
	MetricDiscussionsStarted  MetricID = "discussions_started"
	MetricDiscussionsAnswered MetricID = "discussions_answered"
)

// Number format names for Options.NumberFormat.
const (
	NumberFormatShort = "short"
	NumberFormatLong  = "long"
)

// Rank icon variant names for Options.RankIcon.
const (
	RankIconDefault    = "default"
	RankIconGithub     = "github"
	RankIconPercentile = "percentile"
)

// DefaultLineHeight is the vertical gap between metric rows.
const DefaultLineHeight = 25.0

// Stats carries the raw values the card renders. Extension fields are only
// consulted when the corresponding extension metric is requested.
type Stats struct {
	Name                     string   `json:"name"`
	TotalStars               int      `json:"total_stars"`
	TotalCommits             int      `json:"total_commits"`
	TotalPRs                 int      `json:"total_prs"`
	TotalPRsMerged           int      `json:"total_prs_merged"`
	MergedPRsPercentage      float64  `json:"merged_prs_percentage"`
	TotalReviews             int      `json:"total_reviews"`
	TotalIssues              int      `json:"total_issues"`
	TotalDiscussionsStarted  int      `json:"total_discussions_started"`
	TotalDiscussionsAnswered int      `json:"total_discussions_answered"`
	ContributedTo            int      `json:"contributed_to"`
	Rank                     RankInfo `json:"rank"`
}

// RankInfo holds the user's rank grade and percentile. The ring's arc
// progress is 100 − percentile: a lower percentile means a better rank and
// a fuller arc.
type RankInfo struct {
	Level      string  `json:"level"`
	Percentile float64 `json:"percentile"`
}

// Progress returns the arc fill value in [0, 100].
func (r RankInfo) Progress() float64 {
	p := 100 - r.Percentile
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Options control which metrics are shown and how the card is drawn.
// All fields are optional; start from DefaultOptions to get the documented
// defaults. Options are treated as immutable for the duration of a render.
type Options struct {
	Hide []MetricID `json:"hide,omitempty"` // metric ids to drop
	Show []MetricID `json:"show,omitempty"` // extension metric ids to add

	ShowIcons  bool   `json:"show_icons,omitempty"`
	HideTitle  bool   `json:"hide_title,omitempty"`
	HideBorder bool   `json:"hide_border,omitempty"`
	HideRank   bool   `json:"hide_rank,omitempty"`
	CardWidth  string `json:"card_width,omitempty"` // permissive: non-numeric values are ignored
	AllCommits bool   `json:"include_all_commits,omitempty"`

	LineHeight float64 `json:"line_height,omitempty"` // 0 means DefaultLineHeight

	TitleColor  string `json:"title_color,omitempty"`
	IconColor   string `json:"icon_color,omitempty"`
	TextColor   string `json:"text_color,omitempty"`
	BgColor     string `json:"bg_color,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	RingColor   string `json:"ring_color,omitempty"`

	TextBold          bool    `json:"text_bold"`
	Theme             string  `json:"theme,omitempty"`
	CustomTitle       string  `json:"custom_title,omitempty"`
	BorderRadius      float64 `json:"border_radius,omitempty"`
	NumberFormat      string  `json:"number_format,omitempty"`
	Locale            string  `json:"locale,omitempty"`
	DisableAnimations bool    `json:"disable_animations,omitempty"`
	RankIcon          string  `json:"rank_icon,omitempty"`
}

// DefaultOptions returns the documented option defaults.
func DefaultOptions() Options {
	return Options{
		LineHeight:   DefaultLineHeight,
		TextBold:     true,
		Theme:        "default",
		BorderRadius: 4.5,
		NumberFormat: NumberFormatShort,
		RankIcon:     RankIconDefault,
	}
}

// lineHeight returns the effective row gap, defaulting when unset.
func (o Options) lineHeight() float64 {
	if o.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return o.LineHeight
}

// hidden reports whether id was requested hidden.
func (o Options) hidden(id MetricID) bool {
	for _, h := range o.Hide {
		if h == id {
			return true
		}
	}
	return false
}

// requested reports whether an extension metric was requested.
func (o Options) requested(id MetricID) bool {
	for _, s := range o.Show {
		if s == id {
			return true
		}
	}
	return false
}
