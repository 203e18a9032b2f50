package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statscard/statscard/pkg/card"
	"github.com/statscard/statscard/pkg/pipeline"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	allCommits bool
	refresh    bool
	asJSON     bool
	runner     runnerOpts
}

// fetchCommand creates the fetch command for inspecting a user's
// statistics without rendering a card.
func (c *CLI) fetchCommand() *cobra.Command {
	var opts fetchOpts

	cmd := &cobra.Command{
		Use:   "fetch <username>",
		Short: "Fetch a user's statistics and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFetch(cmd, args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.allCommits, "all-commits", false, "count lifetime commits instead of the current year")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass caches and refetch from the API")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the statistics snapshot as JSON")
	addRunnerFlags(cmd, &opts.runner, c.Config)

	return cmd
}

func (c *CLI) runFetch(cmd *cobra.Command, username string, opts *fetchOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(cmd, opts.runner)
	if err != nil {
		return err
	}
	defer runner.Close()

	cardOpts := card.DefaultOptions()
	cardOpts.AllCommits = opts.allCommits

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching statistics for @%s...", username))
	spinner.Start()

	stats, cached, err := runner.FetchWithCacheInfo(ctx, pipeline.Options{
		Username: username,
		Card:     cardOpts,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Failed to fetch statistics for @%s", username))
		return err
	}
	spinner.Stop()

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	printSuccess("Statistics for %s", stats.Name)
	printKeyValue("Stars", fmt.Sprintf("%d", stats.TotalStars))
	printKeyValue("Commits", fmt.Sprintf("%d", stats.TotalCommits))
	printKeyValue("PRs", fmt.Sprintf("%d", stats.TotalPRs))
	printKeyValue("Issues", fmt.Sprintf("%d", stats.TotalIssues))
	printKeyValue("Reviews", fmt.Sprintf("%d", stats.TotalReviews))
	printKeyValue("Contrib to", fmt.Sprintf("%d", stats.ContributedTo))
	printKeyValue("Rank", fmt.Sprintf("%s (top %.1f%%)", stats.Rank.Level, stats.Rank.Percentile))
	printStats(0, 0, cached)
	printNextStep("Render the card", fmt.Sprintf("statscard render %s", username))
	return nil
}
