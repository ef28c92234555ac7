//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package preference learns user weather preferences from conversation text
// and persists them per user. Learning is keyword-based: a message that says
// "I hate rain" flips the dislikes-rain flag, and the accumulated flags feed
// both the bots' prompts and the evaluation of their replies.
package preference

import (
	"context"
	"strings"
	"time"
)

// Schema selects the on-disk payload shape. The two bot stacks grew
// different storage layouts and both are kept as external contracts.
type Schema string

const (
	// SchemaAssistant nests flags under temperature_preferences,
	// weather_preferences and activity_preferences.
	SchemaAssistant Schema = "assistant"
	// SchemaService groups condition dislikes under weather_conditions
	// with a flatter activity_preferences block.
	SchemaService Schema = "service"
)

// Store persists learned preferences per user.
type Store interface {
	// Load returns the raw preference payload for a user in the store's
	// schema, with defaults when nothing has been learned.
	Load(ctx context.Context, userID string) (map[string]any, error)
	// Learn updates preferences from one conversation turn.
	Learn(ctx context.Context, userID, message, response string) error
	// Summary renders a human-readable preference digest for prompts.
	Summary(ctx context.Context, userID string) (string, error)
	// LastUpdated returns when the user's preferences last changed, the
	// zero time when they never have.
	LastUpdated(ctx context.Context, userID string) (time.Time, error)
}

// flags is the canonical in-memory form both schemas reduce to.
type flags struct {
	dislikesCold  bool
	dislikesHeat  bool
	prefersWarm   bool
	prefersCool   bool
	dislikesWind  bool
	dislikesRain  bool
	prefersSunny  bool
	prefersIndoor bool
	// outdoorActivities starts true and is cleared when an indoor
	// preference is learned.
	prefersOutdoor    bool
	outdoorActivities bool
}

func defaultFlags() flags {
	return flags{outdoorActivities: true}
}

type keywordRule struct {
	keywords []string
	apply    func(*flags) bool
}

// setFlag flips the target and reports whether it changed.
func setFlag(target *bool, value bool) bool {
	if *target == value {
		return false
	}
	*target = value
	return true
}

var learningRules = []keywordRule{
	{[]string{"cold", "freezing"}, func(f *flags) bool {
		return setFlag(&f.dislikesCold, true)
	}},
	{[]string{"hot", "heat"}, func(f *flags) bool {
		return setFlag(&f.dislikesHeat, true)
	}},
	{[]string{"warm"}, func(f *flags) bool {
		return setFlag(&f.prefersWarm, true)
	}},
	{[]string{"cool"}, func(f *flags) bool {
		return setFlag(&f.prefersCool, true)
	}},
	{[]string{"windy", "hate wind", "dislike wind", "don't like wind"}, func(f *flags) bool {
		return setFlag(&f.dislikesWind, true)
	}},
	{[]string{"hate rain", "dislike rain", "don't like rain", "hate rainy", "dislike rainy"}, func(f *flags) bool {
		return setFlag(&f.dislikesRain, true)
	}},
	{[]string{"indoor", "stay inside", "inside activities"}, func(f *flags) bool {
		changed := setFlag(&f.prefersIndoor, true)
		changed = setFlag(&f.outdoorActivities, false) || changed
		return changed
	}},
	{[]string{"outdoor", "outside"}, func(f *flags) bool {
		changed := setFlag(&f.prefersOutdoor, true)
		changed = setFlag(&f.outdoorActivities, true) || changed
		return changed
	}},
	{[]string{"sunny", "love sun", "prefer sun"}, func(f *flags) bool {
		return setFlag(&f.prefersSunny, true)
	}},
}

// learn applies the keyword rules to one lowercased message and reports
// whether any flag changed.
func (f *flags) learn(lowerMessage string) bool {
	learned := false
	for _, rule := range learningRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowerMessage, kw) {
				if rule.apply(f) {
					learned = true
				}
				break
			}
		}
	}
	return learned
}
