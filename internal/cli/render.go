package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statscard/statscard/pkg/card"
	"github.com/statscard/statscard/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// These options mirror the card query parameters of the HTTP API.
type renderOpts struct {
	output string // output file path, "-" for stdout
	input  string // stats snapshot JSON to compose from instead of fetching

	hide string // comma-separated metric ids to drop
	show string // comma-separated extension metric ids to add

	showIcons         bool
	hideTitle         bool
	hideBorder        bool
	hideRank          bool
	allCommits        bool // count lifetime commits instead of the current year
	disableAnimations bool
	textBold          bool
	lineHeight        float64
	borderRadius      float64
	cardWidth         string

	theme        string
	customTitle  string
	locale       string
	numberFormat string
	rankIcon     string

	titleColor  string
	iconColor   string
	textColor   string
	bgColor     string
	borderColor string
	ringColor   string

	refresh bool // bypass both cache layers
	runner  runnerOpts
}

// renderCommand creates the render command for generating a stats card SVG.
func (c *CLI) renderCommand() *cobra.Command {
	defaults := card.DefaultOptions()
	opts := renderOpts{
		textBold:     defaults.TextBold,
		lineHeight:   defaults.LineHeight,
		borderRadius: defaults.BorderRadius,
		numberFormat: defaults.NumberFormat,
		rankIcon:     defaults.RankIcon,
	}

	cmd := &cobra.Command{
		Use:   "render [username]",
		Short: "Render a user's stats card to an SVG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("theme") && c.Config.Theme != "" {
				opts.theme = c.Config.Theme
			}
			if opts.input != "" {
				return c.runRenderFromFile(&opts)
			}
			if len(args) != 1 {
				return fmt.Errorf("a username is required unless --input is given")
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <username>.svg, '-' for stdout)")
	cmd.Flags().StringVarP(&opts.input, "input", "f", "", "compose from a stats snapshot JSON (see 'statscard fetch --json') instead of fetching")
	cmd.Flags().StringVar(&opts.hide, "hide", "", "metric ids to hide (comma-separated)")
	cmd.Flags().StringVar(&opts.show, "show", "", "extension metric ids to show (comma-separated)")
	cmd.Flags().BoolVar(&opts.showIcons, "show-icons", false, "show metric icons")
	cmd.Flags().BoolVar(&opts.hideTitle, "hide-title", false, "hide the card title")
	cmd.Flags().BoolVar(&opts.hideBorder, "hide-border", false, "hide the card border")
	cmd.Flags().BoolVar(&opts.hideRank, "hide-rank", false, "hide the rank badge")
	cmd.Flags().BoolVar(&opts.allCommits, "all-commits", false, "count lifetime commits instead of the current year")
	cmd.Flags().BoolVar(&opts.disableAnimations, "disable-animations", false, "render without CSS animations")
	cmd.Flags().BoolVar(&opts.textBold, "text-bold", opts.textBold, "render text in bold")
	cmd.Flags().Float64Var(&opts.lineHeight, "line-height", opts.lineHeight, "vertical gap between metric rows")
	cmd.Flags().Float64Var(&opts.borderRadius, "border-radius", opts.borderRadius, "corner radius of the card frame")
	cmd.Flags().StringVar(&opts.cardWidth, "card-width", "", "minimum card width in pixels")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme name (see 'statscard themes')")
	cmd.Flags().StringVar(&opts.customTitle, "custom-title", "", "override the card title")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "translation locale for labels")
	cmd.Flags().StringVar(&opts.numberFormat, "number-format", opts.numberFormat, "value format: short or long")
	cmd.Flags().StringVar(&opts.rankIcon, "rank-icon", opts.rankIcon, "rank badge variant: default, github, or percentile")
	cmd.Flags().StringVar(&opts.titleColor, "title-color", "", "title color (hex, no '#')")
	cmd.Flags().StringVar(&opts.iconColor, "icon-color", "", "icon color (hex, no '#')")
	cmd.Flags().StringVar(&opts.textColor, "text-color", "", "text color (hex, no '#')")
	cmd.Flags().StringVar(&opts.bgColor, "bg-color", "", "background color (hex, no '#')")
	cmd.Flags().StringVar(&opts.borderColor, "border-color", "", "border color (hex, no '#')")
	cmd.Flags().StringVar(&opts.ringColor, "ring-color", "", "rank ring color (hex, no '#')")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass caches and refetch from the API")
	addRunnerFlags(cmd, &opts.runner, c.Config)

	return cmd
}

// addRunnerFlags registers the flags shared by commands that run the
// pipeline against the live API.
func addRunnerFlags(cmd *cobra.Command, opts *runnerOpts, cfg *Config) {
	backend := cfg.Cache
	if backend == "" {
		backend = cacheBackendFile
	}
	redisAddr := cfg.RedisAddr
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (defaults to $GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.cacheBackend, "cache", backend, "cache backend: file, redis, or none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", redisAddr, "Redis address for the redis cache backend")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
}

// cardOptions maps the render flags onto card options.
func (o *renderOpts) cardOptions() card.Options {
	opts := card.DefaultOptions()

	opts.Hide = splitMetricIDs(o.hide)
	opts.Show = splitMetricIDs(o.show)
	opts.ShowIcons = o.showIcons
	opts.HideTitle = o.hideTitle
	opts.HideBorder = o.hideBorder
	opts.HideRank = o.hideRank
	opts.CardWidth = o.cardWidth
	opts.AllCommits = o.allCommits
	opts.DisableAnimations = o.disableAnimations
	opts.TextBold = o.textBold
	opts.LineHeight = o.lineHeight
	opts.BorderRadius = o.borderRadius

	opts.TitleColor = o.titleColor
	opts.IconColor = o.iconColor
	opts.TextColor = o.textColor
	opts.BgColor = o.bgColor
	opts.BorderColor = o.borderColor
	opts.RingColor = o.ringColor

	if o.theme != "" {
		opts.Theme = o.theme
	}
	opts.CustomTitle = o.customTitle
	opts.Locale = o.locale
	if o.numberFormat == card.NumberFormatLong {
		opts.NumberFormat = card.NumberFormatLong
	}
	switch o.rankIcon {
	case card.RankIconGithub, card.RankIconPercentile:
		opts.RankIcon = o.rankIcon
	}

	return opts
}

// splitMetricIDs parses a comma-separated metric id list, dropping
// empty segments.
func splitMetricIDs(raw string) []card.MetricID {
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

// runRenderFromFile composes a card from a stats snapshot on disk,
// skipping the fetch stage entirely. No token or cache is needed.
func (c *CLI) runRenderFromFile(opts *renderOpts) error {
	data, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.input, err)
	}
	var stats card.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("parse %s: %w", opts.input, err)
	}

	svg, err := card.Render(stats, opts.cardOptions())
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := os.Stdout.WriteString(svg)
		return err
	}

	path := outputPath(opts.output, strings.TrimSuffix(filepath.Base(opts.input), filepath.Ext(opts.input)))
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered stats card for %s", stats.Name)
	printFile(path)
	return nil
}

// outputPath derives the output file from the --output flag, defaulting
// to <username>.svg in the working directory.
func outputPath(output, username string) string {
	if output != "" {
		return output
	}
	return username + ".svg"
}

// runRender executes the pipeline and writes the rendered SVG.
func (c *CLI) runRender(cmd *cobra.Command, username string, opts *renderOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(cmd, opts.runner)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building stats card for @%s...", username))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Username: username,
		Card:     opts.cardOptions(),
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Failed to build card for @%s", username))
		return err
	}
	spinner.Stop()

	if opts.output == "-" {
		_, err := os.Stdout.Write(result.SVG)
		return err
	}

	path := outputPath(opts.output, username)
	if err := os.WriteFile(path, result.SVG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered stats card for %s (rank %s)", result.Stats.Name, result.Stats.Rank.Level)
	printFile(path)
	printStats(len(result.SVG), result.Timing.FetchTime+result.Timing.ComposeTime, result.CacheInfo.CardHit)
	printNextStep("Embed it", fmt.Sprintf("![stats](%s)", path))
	return nil
}
