package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sligocki/gedcom/pkg/config"
	"github.com/sligocki/gedcom/pkg/pipeline"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// configKey is the context key for the loaded configuration.
const configKey ctxKey = 1

// withConfig returns a new context with the given configuration attached.
func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx.
// If none is attached, it returns the built-in defaults so commands
// remain usable even if context setup fails.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// Execute runs the gedcom CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, loads the TOML configuration, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and configuration are attached to the context and accessible
// to all commands via loggerFromContext and configFromContext.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2025-12-20")
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "gedcom",
		Short:         "gedcom analyzes family trees exported as GEDCOM files",
		Long:          `gedcom is a CLI tool for exploring family trees exported from genealogy services as GEDCOM files: listing ancestors, tracing how two people are related, and rendering pedigree charts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gedcom %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./gedcom.toml, then the user config dir)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newAncestorsCmd())
	root.AddCommand(newDescendantsCmd())
	root.AddCommand(newRelateCmd())
	root.AddCommand(newRootsCmd())
	root.AddCommand(newDNACmd())
	root.AddCommand(newAhnentafelCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig loads the configuration from path, or runs the default
// search when no explicit path was given.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// runPipeline parses the GEDCOM file at path using the markers from the
// loaded configuration. Every command that reads a file goes through here.
func runPipeline(ctx context.Context, path string) (*pipeline.Result, error) {
	cfg := configFromContext(ctx)
	runner := pipeline.NewRunner(loggerFromContext(ctx))
	return runner.Run(ctx, pipeline.Options{
		Path:        path,
		HomeMarker:  cfg.Markers.Home,
		MatchMarker: cfg.Markers.Match,
	})
}
