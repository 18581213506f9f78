// Command concepts runs the study topics: bit manipulation, complexity,
// data structures, recursion and the regular-expression tutorials.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/KromDaniel/concepts/internal/config"
	"github.com/KromDaniel/concepts/internal/logging"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// App is the state shared by every command: the resolved configuration and
// the logger built from it. Both are loaded before any command runs.
type App struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logging.Logger

	// flags
	cfgFile  string
	logLevel string
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// newRootCommand builds the command tree around app.
func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "concepts",
		Short: "Runnable study notes on bits, complexity, data structures, recursion and regex",
		Long: TitleStyle.Render("concepts") + SubtitleStyle.Render(" - runnable study notes") + `

Every topic is a small self-contained demo that prints what it does.

` + SubtitleStyle.Render("Examples:") + `
  concepts list                     List topics in order
  concepts run lookarounds          Run one topic
  concepts run --all --parallel 4   Run everything
  concepts notes patternmatcher     Read a topic's notes
  concepts regex analyze '(a+)+b'   Inspect a pattern`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/concepts/config.toml)")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")

	root.AddCommand(
		newListCommand(app),
		newRunCommand(app),
		newNotesCommand(app),
		newRegexCommand(app),
		newConfigCommand(app),
		newVersionCommand(),
	)
	return root
}

// load resolves configuration and builds the logger.
func (a *App) load(ctx context.Context, stderr io.Writer) error {
	cfg, path, err := config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	logger, err := logging.New(stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	a.Config, a.ConfigPath, a.Logger = cfg, path, logger
	logger.Debug("configuration loaded", "file", path)
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "concepts", versionString())
			return err
		},
	}
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(&App{}),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
