package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/statscard/statscard/pkg/card"
	"github.com/statscard/statscard/pkg/pipeline"
)

// Cache-Control bounds in seconds. Badge proxies cache aggressively, so
// the floor keeps the API from being hammered and the ceiling keeps cards
// from fossilizing.
const (
	minCacheSeconds     = 7200
	defaultCacheSeconds = 14400
	maxCacheSeconds     = 86400
)

// parseOptions maps the query string onto pipeline options. Malformed
// values degrade to defaults instead of failing; the only hard
// requirement is the username.
func parseOptions(q url.Values) pipeline.Options {
	opts := card.DefaultOptions()

	opts.Hide = metricList(q.Get("hide"))
	opts.Show = metricList(q.Get("show"))
	opts.ShowIcons = boolParam(q, "show_icons")
	opts.HideTitle = boolParam(q, "hide_title")
	opts.HideBorder = boolParam(q, "hide_border")
	opts.HideRank = boolParam(q, "hide_rank")
	opts.CardWidth = q.Get("card_width")
	opts.AllCommits = boolParam(q, "include_all_commits")
	opts.DisableAnimations = boolParam(q, "disable_animations")

	if v, err := strconv.ParseFloat(q.Get("line_height"), 64); err == nil {
		opts.LineHeight = v
	}
	if v, err := strconv.ParseFloat(q.Get("border_radius"), 64); err == nil {
		opts.BorderRadius = v
	}
	if q.Has("text_bold") {
		opts.TextBold = boolParam(q, "text_bold")
	}

	opts.TitleColor = q.Get("title_color")
	opts.IconColor = q.Get("icon_color")
	opts.TextColor = q.Get("text_color")
	opts.BgColor = q.Get("bg_color")
	opts.BorderColor = q.Get("border_color")
	opts.RingColor = q.Get("ring_color")

	if theme := q.Get("theme"); theme != "" {
		opts.Theme = theme
	}
	opts.CustomTitle = q.Get("custom_title")
	if format := q.Get("number_format"); format == card.NumberFormatLong {
		opts.NumberFormat = card.NumberFormatLong
	}
	opts.Locale = q.Get("locale")
	switch q.Get("rank_icon") {
	case card.RankIconGithub:
		opts.RankIcon = card.RankIconGithub
	case card.RankIconPercentile:
		opts.RankIcon = card.RankIconPercentile
	}

	return pipeline.Options{
		Username: strings.TrimSpace(q.Get("username")),
		Card:     opts,
		Refresh:  boolParam(q, "refresh"),
	}
}

// cacheSeconds clamps the requested Cache-Control age into the allowed
// window.
func cacheSeconds(q url.Values) int {
	secs := defaultCacheSeconds
	if v, err := strconv.Atoi(q.Get("cache_seconds")); err == nil {
		secs = v
	}
	if secs < minCacheSeconds {
		secs = minCacheSeconds
	}
	if secs > maxCacheSeconds {
		secs = maxCacheSeconds
	}
	return secs
}

func boolParam(q url.Values, name string) bool {
	return q.Get(name) == "true"
}

// metricList splits a comma-separated id list, dropping empty segments.
// Unknown ids are harmless: hiding one is a no-op and showing one never
// matches an extension row.
func metricList(raw string) []card.MetricID {
	if raw == "" {
		return nil
	}
	var ids []card.MetricID
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, card.MetricID(part))
		}
	}
	return ids
}
