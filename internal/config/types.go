package config

import "time"

// Config is the effective configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
	Regex RegexConfig `mapstructure:"regex"`
	Speed SpeedConfig `mapstructure:"speed"`
	Run   RunConfig   `mapstructure:"run"`
}

// UIConfig controls how topics and notes are rendered.
type UIConfig struct {
	// Notes prints a topic's tutorial notes before its output.
	Notes bool `mapstructure:"notes"`
	// WordWrap is the column notes are wrapped at. 0 disables wrapping.
	WordWrap int `mapstructure:"word_wrap"`
	// Style is the glamour style: auto, dark, light or notty.
	Style string `mapstructure:"style"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// RegexConfig controls the pattern engine.
type RegexConfig struct {
	// MatchTimeout bounds a single match attempt. 0 means no limit.
	MatchTimeout time.Duration `mapstructure:"match_timeout"`
}

// SpeedConfig controls the compile-once benchmark topic.
type SpeedConfig struct {
	Rounds int `mapstructure:"rounds"`
}

// RunConfig controls `run --all`.
type RunConfig struct {
	Parallel int `mapstructure:"parallel"`
}

// Glamour styles accepted by UIConfig.Style.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			WordWrap: 80,
			Style:    StyleAuto,
		},
		Log:   LogConfig{Level: "warn"},
		Regex: RegexConfig{MatchTimeout: 2 * time.Second},
		Speed: SpeedConfig{Rounds: 1000},
		Run:   RunConfig{Parallel: 1},
	}
}

// fileConfig is the on-disk TOML layout. Durations are written as strings
// such as "2s" so the file stays readable.
type fileConfig struct {
	UI struct {
		Notes    bool   `toml:"notes"`
		WordWrap int    `toml:"word_wrap"`
		Style    string `toml:"style"`
	} `toml:"ui"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Regex struct {
		MatchTimeout string `toml:"match_timeout"`
	} `toml:"regex"`
	Speed struct {
		Rounds int `toml:"rounds"`
	} `toml:"speed"`
	Run struct {
		Parallel int `toml:"parallel"`
	} `toml:"run"`
}

func toFile(c *Config) fileConfig {
	var f fileConfig
	f.UI.Notes = c.UI.Notes
	f.UI.WordWrap = c.UI.WordWrap
	f.UI.Style = c.UI.Style
	f.Log.Level = c.Log.Level
	f.Regex.MatchTimeout = c.Regex.MatchTimeout.String()
	f.Speed.Rounds = c.Speed.Rounds
	f.Run.Parallel = c.Run.Parallel
	return f
}
