// Package i18n provides localized strings for card titles and the
// locale width table used by the layout engine.
//
// Lookups never fail: unknown or empty locales fall back to the base
// language ("en"). The long-locale set is a plain data table so new
// locales can be added without touching layout code.
package i18n

import (
	"fmt"
	"strings"
)

// DefaultLocale is the base language used when no locale is given or the
// requested locale has no translation.
const DefaultLocale = "en"

// statsTitles maps locale → format string for the default stats card title.
// The single %s verb receives the user's display name.
var statsTitles = map[string]string{
	"en":    "%s's GitHub Stats",
	"cn":    "%s 的 GitHub 统计数据",
	"zh-tw": "%s 的 GitHub 統計數據",
	"de":    "%ss GitHub-Statistiken",
	"es":    "Estadísticas de GitHub de %s",
	"fr":    "Statistiques GitHub de %s",
	"it":    "Statistiche GitHub di %s",
	"ja":    "%sの GitHub 統計",
	"ko":    "%s의 GitHub 통계",
	"nl":    "%s's GitHub-statistieken",
	"pt-br": "Estatísticas do GitHub de %s",
	"ru":    "Статистика GitHub %s",
	"uk-ua": "Статистика GitHub %s",
	"id":    "Statistik GitHub %s",
	"tr":    "%s'in GitHub İstatistikleri",
	"pl":    "Statystyki GitHuba %s",
}

// rankTitles maps locale → format string for the rank-only card title,
// shown when every metric row is hidden but the rank circle is visible.
var rankTitles = map[string]string{
	"en":    "%s's GitHub Rank",
	"cn":    "%s 的 GitHub 等级",
	"de":    "%ss GitHub-Rang",
	"es":    "Rango de GitHub de %s",
	"fr":    "Rang GitHub de %s",
	"it":    "Rango GitHub di %s",
	"ja":    "%sの GitHub ランク",
	"ko":    "%s의 GitHub 랭크",
	"pt-br": "Classificação do GitHub de %s",
	"ru":    "Ранг GitHub %s",
}

// longLocales lists locales whose translated metric labels are wide enough
// to need extra horizontal offset for value-column alignment. The shift is
// a flat amount regardless of which long locale is active; no per-locale
// width data exists to justify anything finer.
var longLocales = map[string]bool{
	"cn":    true,
	"es":    true,
	"fr":    true,
	"pt-br": true,
	"ru":    true,
	"uk-ua": true,
	"id":    true,
	"ml":    true,
	"my":    true,
	"ne":    true,
	"zh-tw": true,
}

// Normalize lowercases a locale tag and maps unknown locales to the default.
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if l == "" {
		return DefaultLocale
	}
	if _, ok := statsTitles[l]; !ok {
		return DefaultLocale
	}
	return l
}

// StatsTitle returns the localized default title for a card with metric rows.
func StatsTitle(locale, name string) string {
	return fmt.Sprintf(statsTitles[Normalize(locale)], name)
}

// RankTitle returns the localized default title for a rank-only card.
// Locales without a rank translation fall back to the base language.
func RankTitle(locale, name string) string {
	format, ok := rankTitles[Normalize(locale)]
	if !ok {
		format = rankTitles[DefaultLocale]
	}
	return fmt.Sprintf(format, name)
}

// IsLongLocale reports whether the locale needs the wide label column.
func IsLongLocale(locale string) bool {
	return longLocales[strings.ToLower(strings.TrimSpace(locale))]
}

// metricLabels maps locale → metric id → row label. Locales missing a
// label fall back to the base language entry.
var metricLabels = map[string]map[string]string{
	"en": {
		"stars":                 "Total Stars Earned",
		"commits":               "Total Commits",
		"prs":                   "Total PRs",
		"issues":                "Total Issues",
		"contribs":              "Contributed to (last year)",
		"prs_merged":            "Total PRs Merged",
		"prs_merged_percentage": "Merged PRs Percentage",
		"reviews":               "Total PRs Reviewed",
		"discussions_started":   "Total Discussions Started",
		"discussions_answered":  "Total Discussions Answered",
	},
	"cn": {
		"stars":    "获标星数（star）",
		"commits":  "累计提交数（commit）",
		"prs":      "拉取请求数（PR）",
		"issues":   "指出问题数（issue）",
		"contribs": "参与项目数",
	},
	"fr": {
		"stars":    "Total d'étoiles",
		"commits":  "Total de commits",
		"prs":      "Total de PRs",
		"issues":   "Total d'issues",
		"contribs": "Contributions (l'année dernière)",
	},
	"es": {
		"stars":    "Estrellas totales",
		"commits":  "Commits totales",
		"prs":      "PRs totales",
		"issues":   "Issues totales",
		"contribs": "Contribuciones (el año pasado)",
	},
}

// MetricLabel returns the localized row label for a metric id, falling
// back to the base language when the locale has no translation.
func MetricLabel(locale, id string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if labels, ok := metricLabels[l]; ok {
		if label, ok := labels[id]; ok {
			return label
		}
	}
	return metricLabels[DefaultLocale][id]
}
