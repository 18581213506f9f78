package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/concepts/internal/config"
)

func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage concepts configuration",
		Long: `Manage concepts configuration.

Settings come from built-in defaults, then the config file, then
CONCEPTS_* environment variables (CONCEPTS_SPEED_ROUNDS=10 sets
speed.rounds).

The config file is read from:
  - Linux: $XDG_CONFIG_HOME/concepts/config.toml (~/.config by default)
  - macOS: ~/Library/Application Support/concepts/config.toml
  - Windows: %APPDATA%\concepts\config.toml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			source := SubtitleStyle.Render("(defaults and environment)")
			if app.ConfigPath != "" {
				source = app.ConfigPath
			}
			if _, err := fmt.Fprintf(w, "# %s %s\n", KeyStyle.Render("Config file:"), source); err != nil {
				return err
			}
			data, err := config.Marshal(app.Config)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		},
	})

	var (
		force bool
		path  string
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				var err error
				if path, err = config.DefaultPath(""); err != nil {
					return err
				}
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&path, "path", "", "where to write (default is the standard config file)")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}
