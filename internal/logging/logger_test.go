package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	require.NoError(t, err)
	assert.True(t, l.Enabled())

	l.Section("speed")
	l.Debug("compiled", "rounds", 1000)
	out := buf.String()
	assert.Contains(t, out, Prefix)
	assert.Contains(t, out, "=== speed ===")
	assert.Contains(t, out, "rounds=1000")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	require.NoError(t, err)
	assert.False(t, l.Enabled())

	l.Section("hidden")
	l.Info("hidden too")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty")
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	require.NoError(t, err)

	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Debug("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.NotNil(t, FromContext(context.Background()))
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.False(t, l.Enabled())
	l.Error("dropped")
}
