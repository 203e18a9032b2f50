package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/statscard/statscard/pkg/buildinfo"
	"github.com/statscard/statscard/pkg/cache"
	"github.com/statscard/statscard/pkg/integrations/github"
	"github.com/statscard/statscard/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "statscard"
)

// Cache backend names for the --cache flag.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the config
// file loaded (missing config files are fine).
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = &Config{}
	}
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "statscard",
		Short:        "Statscard renders GitHub contribution stats as SVG cards",
		Long:         `Statscard fetches a GitHub user's contribution statistics, computes their rank, and composes an embeddable SVG stats card, either on the command line or as an HTTP badge service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts selects the cache backend and credentials for a pipeline
// runner built by the CLI.
type runnerOpts struct {
	token         string
	cacheBackend  string
	redisAddr     string
	redisPassword string
	redisDB       int
}

// newRunner creates a pipeline runner for CLI use. The fetcher talks to
// the live GitHub API, so a token is required.
func (c *CLI) newRunner(cmd *cobra.Command, opts runnerOpts) (*pipeline.Runner, error) {
	token := c.resolveToken(opts.token)
	if token == "" {
		return nil, fmt.Errorf("a GitHub token is required: pass --token, set GITHUB_TOKEN, or add token to %s", configPathHint())
	}

	fetcher, err := github.NewClient(token, cache.HTTPTTL)
	if err != nil {
		return nil, err
	}

	store, err := c.newCache(cmd, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(fetcher, store, nil, c.Logger), nil
}

func (c *CLI) newCache(cmd *cobra.Command, opts runnerOpts) (cache.Cache, error) {
	switch opts.cacheBackend {
	case cacheBackendNone:
		return cache.NewNullCache(), nil
	case cacheBackendRedis:
		return cache.NewRedisCache(cmd.Context(), opts.redisAddr, opts.redisPassword, opts.redisDB)
	case cacheBackendFile, "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (must be 'file', 'redis', or 'none')", opts.cacheBackend)
	}
}

// resolveToken picks the GitHub token with flag > environment > config
// file precedence.
func (c *CLI) resolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env
	}
	if c.Config != nil {
		return c.Config.Token
	}
	return ""
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/statscard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
