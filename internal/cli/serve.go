package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/statscard/statscard/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string
	runner runnerOpts
}

// serveCommand creates the serve command that runs the HTTP badge
// service. Cards are served from GET /api?username=... and failures
// come back as rendered error cards.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP badge service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	addRunnerFlags(cmd, &opts.runner, c.Config)

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	runner, err := c.newRunner(cmd, opts.runner)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(runner, c.Logger)
	printInfo("Serving stats cards on %s", opts.addr)
	if strings.HasPrefix(opts.addr, ":") {
		printNextStep("Try it", "curl 'http://localhost"+opts.addr+"/api?username=octocat'")
	}
	return srv.ListenAndServe(cmd.Context(), opts.addr)
}
