//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package preference

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, schema Schema) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), schema)
	require.NoError(t, err)
	return s
}

func TestFileStore_DefaultsWhenUnknownUser(t *testing.T) {
	s := newTestStore(t, SchemaAssistant)
	ctx := context.Background()

	payload, err := s.Load(ctx, "nobody")
	require.NoError(t, err)
	temp, ok := payload["temperature_preferences"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, temp["dislikes_cold"])
	assert.Equal(t, 0, learnedCount(payload))

	ts, err := s.LastUpdated(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	summary, err := s.Summary(ctx, "nobody")
	require.NoError(t, err)
	assert.Contains(t, summary, "No specific preferences learned yet")
}

func TestFileStore_LearnAssistantSchema(t *testing.T) {
	s := newTestStore(t, SchemaAssistant)
	ctx := context.Background()

	require.NoError(t, s.Learn(ctx, "alice", "I hate rain and it's way too cold for me", "Noted!"))

	payload, err := s.Load(ctx, "alice")
	require.NoError(t, err)

	temp := payload["temperature_preferences"].(map[string]any)
	assert.Equal(t, true, temp["dislikes_cold"])
	wx := payload["weather_preferences"].(map[string]any)
	assert.Equal(t, true, wx["dislikes_rain"])
	assert.Equal(t, 1, learnedCount(payload))

	history := payload["conversation_history"].([]any)
	require.Len(t, history, 1)
	entry := history[0].(map[string]any)
	assert.Equal(t, "I hate rain and it's way too cold for me", entry["user_message"])
	assert.Equal(t, "Noted!", entry["response"])

	ts, err := s.LastUpdated(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
}

func TestFileStore_LearnServiceSchema(t *testing.T) {
	s := newTestStore(t, SchemaService)
	ctx := context.Background()

	require.NoError(t, s.Learn(ctx, "bob", "I prefer sunny days and being outside", ""))

	payload, err := s.Load(ctx, "bob")
	require.NoError(t, err)
	conds := payload["weather_conditions"].(map[string]any)
	assert.Equal(t, true, conds["prefers_sunny"])
	acts := payload["activity_preferences"].(map[string]any)
	assert.Equal(t, true, acts["prefers_outdoor"])
	assert.Equal(t, 1, learnedCount(payload))
}

func TestFileStore_LearnedCounterOnlyOnChange(t *testing.T) {
	s := newTestStore(t, SchemaAssistant)
	ctx := context.Background()

	require.NoError(t, s.Learn(ctx, "alice", "I hate rain", ""))
	require.NoError(t, s.Learn(ctx, "alice", "I really hate rain", ""))
	require.NoError(t, s.Learn(ctx, "alice", "what's the weather?", ""))

	payload, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, learnedCount(payload))
	history := payload["conversation_history"].([]any)
	assert.Len(t, history, 3)
}

func TestFileStore_IndoorClearsOutdoorActivities(t *testing.T) {
	s := newTestStore(t, SchemaAssistant)
	ctx := context.Background()

	require.NoError(t, s.Learn(ctx, "alice", "I prefer indoor activities", ""))

	payload, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	acts := payload["activity_preferences"].(map[string]any)
	assert.Equal(t, false, acts["outdoor_activities"])
	wx := payload["weather_preferences"].(map[string]any)
	assert.Equal(t, true, wx["prefers_indoor"])
}

func TestFileStore_HistoryCapped(t *testing.T) {
	s := newTestStore(t, SchemaAssistant)
	ctx := context.Background()

	for i := 0; i < historyLimit+5; i++ {
		require.NoError(t, s.Learn(ctx, "alice", "what's the weather?", ""))
	}
	payload, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	history := payload["conversation_history"].([]any)
	assert.Len(t, history, historyLimit)
}

func TestFileStore_CorruptFileDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, SchemaAssistant)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_preferences.json"), []byte("{not json"), 0o644))

	payload, err := s.Load(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, learnedCount(payload))
}

func TestFileStore_Summary(t *testing.T) {
	s := newTestStore(t, SchemaAssistant)
	ctx := context.Background()

	require.NoError(t, s.Learn(ctx, "alice", "I hate rain and prefer warm weather", ""))
	summary, err := s.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Contains(t, summary, "User dislikes rainy weather")
	assert.Contains(t, summary, "User prefers warm weather")
}

func TestFileStore_ClockOverride(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s, err := NewFileStore(t.TempDir(), SchemaAssistant, WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Learn(ctx, "alice", "too cold", ""))
	ts, err := s.LastUpdated(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ts.Equal(fixed))
}
