package demo

import (
	"context"
	"time"
)

// DefaultRounds is how often the speed demo repeats its count.
const DefaultRounds = 1000

// Settings carries the run-time knobs a demo may honour. Demos read them
// from the context; the zero value means defaults.
type Settings struct {
	// Rounds is the number of repetitions for timing demos.
	Rounds int
	// MatchTimeout bounds a single regex match attempt. Zero means none.
	MatchTimeout time.Duration
}

type settingsKey struct{}

// WithSettings returns a copy of ctx carrying s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// SettingsFrom returns the settings stored in ctx with defaults filled in.
func SettingsFrom(ctx context.Context) Settings {
	s, _ := ctx.Value(settingsKey{}).(Settings)
	if s.Rounds <= 0 {
		s.Rounds = DefaultRounds
	}
	return s
}
