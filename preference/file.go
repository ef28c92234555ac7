//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package preference

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const historyLimit = 50

// FileStore persists one JSON preference file per user in a directory,
// shaped by the store's schema.
type FileStore struct {
	dir    string
	schema Schema
	now    func() time.Time

	mu sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithClock overrides the timestamp source, mainly for tests.
func WithClock(now func() time.Time) FileOption {
	return func(s *FileStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewFileStore creates a file-backed store writing payloads in the given
// schema. The directory is created if missing.
func NewFileStore(dir string, schema Schema, opt ...FileOption) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preference dir: %w", err)
	}
	s := &FileStore{dir: dir, schema: schema, now: time.Now}
	for _, o := range opt {
		o(s)
	}
	return s, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.dir, userID+"_preferences.json")
}

// Load returns the user's raw payload, defaults when nothing is stored yet.
// A corrupt file degrades to defaults rather than failing the turn.
func (s *FileStore) Load(ctx context.Context, userID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(userID), nil
}

func (s *FileStore) load(userID string) map[string]any {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		return s.defaults()
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return s.defaults()
	}
	defaults := s.defaults()
	for key, value := range payload {
		defaults[key] = value
	}
	return defaults
}

// Learn updates the user's preferences from one turn and appends the turn
// to the rolling conversation history.
func (s *FileStore) Learn(ctx context.Context, userID, message, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload := s.load(userID)
	fl := s.parse(payload)
	learned := fl.learn(strings.ToLower(message))

	count := learnedCount(payload)
	if learned {
		count++
	}

	history, _ := payload["conversation_history"].([]any)
	entry := map[string]any{
		"timestamp":    s.now().Format(time.RFC3339),
		"user_message": message,
	}
	if response != "" {
		entry["response"] = response
	}
	history = append(history, entry)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	out := s.emit(fl)
	out["conversation_history"] = history
	out["learned_from_conversations"] = count
	out["last_updated"] = s.now().Format(time.RFC3339)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path(userID), data, 0o644); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Summary renders the digest the bots inject into their prompts.
func (s *FileStore) Summary(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fl := s.parse(s.load(userID))
	var parts []string
	if fl.dislikesCold {
		parts = append(parts, "User dislikes cold weather")
	}
	if fl.dislikesHeat {
		parts = append(parts, "User dislikes hot weather")
	}
	if fl.dislikesRain {
		parts = append(parts, "User dislikes rainy weather")
	}
	if fl.dislikesWind {
		parts = append(parts, "User dislikes windy weather")
	}
	if fl.prefersSunny {
		parts = append(parts, "User prefers sunny weather")
	}
	if fl.prefersWarm {
		parts = append(parts, "User prefers warm weather")
	}
	if fl.prefersCool {
		parts = append(parts, "User prefers cool weather")
	}
	if fl.prefersIndoor {
		parts = append(parts, "User prefers indoor activities")
	}
	if fl.prefersOutdoor {
		parts = append(parts, "User prefers outdoor activities")
	}
	if len(parts) == 0 {
		return "No specific preferences learned yet. User preferences will be learned from conversations.", nil
	}
	return "User preferences: " + strings.Join(parts, "; ") + ".", nil
}

// LastUpdated returns the stored last_updated timestamp, zero when absent.
func (s *FileStore) LastUpdated(ctx context.Context, userID string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, _ := s.load(userID)["last_updated"].(string)
	if raw == "" {
		return time.Time{}, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, nil
	}
	return ts, nil
}

func (s *FileStore) defaults() map[string]any {
	return s.emit(defaultFlags())
}

// parse reduces a payload in either schema to the canonical flags; unknown
// shapes simply read as defaults.
func (s *FileStore) parse(payload map[string]any) flags {
	fl := defaultFlags()
	fl.dislikesCold = section(payload, "temperature_preferences", "dislikes_cold") ||
		section(payload, "weather_conditions", "dislikes_cold")
	fl.dislikesHeat = section(payload, "temperature_preferences", "dislikes_heat")
	fl.prefersWarm = section(payload, "temperature_preferences", "prefers_warm")
	fl.prefersCool = section(payload, "temperature_preferences", "prefers_cool")
	fl.dislikesWind = section(payload, "weather_preferences", "dislikes_wind") ||
		section(payload, "weather_conditions", "dislikes_wind")
	fl.dislikesRain = section(payload, "weather_preferences", "dislikes_rain") ||
		section(payload, "weather_conditions", "dislikes_rain")
	fl.prefersSunny = section(payload, "weather_preferences", "prefers_sunny") ||
		section(payload, "weather_conditions", "prefers_sunny")
	fl.prefersIndoor = section(payload, "weather_preferences", "prefers_indoor") ||
		section(payload, "activity_preferences", "prefers_indoor")
	fl.prefersOutdoor = section(payload, "activity_preferences", "prefers_outdoor")
	if sub, ok := payload["activity_preferences"].(map[string]any); ok {
		if v, ok := sub["outdoor_activities"].(bool); ok {
			fl.outdoorActivities = v
		}
	}
	return fl
}

// emit writes the canonical flags back out in the store's schema.
func (s *FileStore) emit(fl flags) map[string]any {
	if s.schema == SchemaService {
		return map[string]any{
			"temperature_preferences": map[string]any{
				"prefers_warm": fl.prefersWarm,
				"prefers_cool": fl.prefersCool,
			},
			"weather_conditions": map[string]any{
				"dislikes_cold": fl.dislikesCold,
				"dislikes_wind": fl.dislikesWind,
				"dislikes_rain": fl.dislikesRain,
				"prefers_sunny": fl.prefersSunny,
			},
			"activity_preferences": map[string]any{
				"prefers_indoor":  fl.prefersIndoor,
				"prefers_outdoor": fl.prefersOutdoor,
			},
			"conversation_history":       []any{},
			"learned_from_conversations": 0,
		}
	}
	return map[string]any{
		"temperature_preferences": map[string]any{
			"dislikes_cold": fl.dislikesCold,
			"dislikes_heat": fl.dislikesHeat,
			"prefers_warm":  fl.prefersWarm,
			"prefers_cool":  fl.prefersCool,
		},
		"weather_preferences": map[string]any{
			"dislikes_rain":  fl.dislikesRain,
			"dislikes_wind":  fl.dislikesWind,
			"prefers_sunny":  fl.prefersSunny,
			"prefers_indoor": fl.prefersIndoor,
		},
		"activity_preferences": map[string]any{
			"outdoor_activities": fl.outdoorActivities,
			"prefers_outdoor":    fl.prefersOutdoor,
		},
		"conversation_history":       []any{},
		"learned_from_conversations": 0,
	}
}

func section(payload map[string]any, sectionKey, key string) bool {
	sub, ok := payload[sectionKey].(map[string]any)
	if !ok {
		return false
	}
	v, _ := sub[key].(bool)
	return v
}

func learnedCount(payload map[string]any) int {
	switch v := payload["learned_from_conversations"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
