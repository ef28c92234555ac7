//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"fmt"
	"strings"

	"github.com/wxarena/wxarena/evaluation/internal/match"
)

// learnedPrefs is the normalized view of the two preference storage schemas.
type learnedPrefs struct {
	dislikesCold      bool
	dislikesHeat      bool
	dislikesRain      bool
	prefersIndoor     bool
	outdoorActivities bool
}

// normalizePreferences folds both preference schemas into one flag set. The
// gemini schema nests flags under temperature_preferences, weather_preferences
// and activity_preferences; the openai schema uses weather_conditions and a
// flatter activity_preferences. Overlapping keys OR together.
func normalizePreferences(prefs map[string]any) learnedPrefs {
	var lp learnedPrefs
	lp.dislikesCold = nestedBool(prefs, "temperature_preferences", "dislikes_cold") ||
		nestedBool(prefs, "weather_conditions", "dislikes_cold")
	lp.dislikesHeat = nestedBool(prefs, "temperature_preferences", "dislikes_heat")
	lp.dislikesRain = nestedBool(prefs, "weather_preferences", "dislikes_rain") ||
		nestedBool(prefs, "weather_conditions", "dislikes_rain")
	lp.prefersIndoor = nestedBool(prefs, "weather_preferences", "prefers_indoor") ||
		nestedBool(prefs, "activity_preferences", "prefers_indoor")
	lp.outdoorActivities = nestedBool(prefs, "activity_preferences", "outdoor_activities")
	return lp
}

func nestedBool(prefs map[string]any, section, key string) bool {
	sub, ok := prefs[section].(map[string]any)
	if !ok {
		return false
	}
	v, _ := sub[key].(bool)
	return v
}

// learnedCount reads learned_from_conversations, tolerating the numeric types
// JSON decoding produces. Missing counts as zero.
func learnedCount(prefs map[string]any) int {
	switch v := prefs["learned_from_conversations"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

var awarenessKeywords = []string{"prefer", "preference", "remember", "based on", "considering"}

// scoreAdaptationQuality checks whether the reply reflects what has been
// learned about the user: warm-clothing advice for a cold-averse user,
// umbrella or indoor suggestions for a rain-averse one, and so on.
func (e *Evaluator) scoreAdaptationQuality(in *Input) *Result {
	if len(in.Preferences) == 0 {
		return &Result{
			Score:       neutralScore,
			Details:     "No user preferences available for adaptation evaluation",
			Adaptations: []string{},
		}
	}
	if learnedCount(in.Preferences) == 0 {
		return &Result{
			Score:       neutralScore,
			Details:     "No learned preferences available",
			Adaptations: []string{},
		}
	}

	lp := normalizePreferences(in.Preferences)
	text := in.lower()
	score := 0.5
	var adaptations []string

	if lp.dislikesCold {
		if match.ContainsAny(text.response, []string{"warm", "warmer", "jacket", "coat", "layers"}) &&
			(strings.Contains(text.response, "cold") || strings.Contains(text.response, "freezing")) {
			score += 0.15
			adaptations = append(adaptations, "cold_weather_adaptation")
		}
	}
	if lp.dislikesRain {
		if (strings.Contains(text.response, "rain") || strings.Contains(text.response, "rainy")) &&
			(strings.Contains(text.response, "umbrella") || strings.Contains(text.response, "indoor")) {
			score += 0.15
			adaptations = append(adaptations, "rain_adaptation")
		}
	}
	if lp.prefersIndoor {
		if strings.Contains(text.response, "indoor") && !strings.Contains(text.response, "outdoor") {
			score += 0.15
			adaptations = append(adaptations, "indoor_preference_adaptation")
		}
	} else if lp.outdoorActivities {
		if strings.Contains(text.response, "outdoor") {
			score += 0.15
			adaptations = append(adaptations, "outdoor_preference_adaptation")
		}
	}
	if lp.dislikesHeat {
		if match.ContainsAny(text.response, []string{"cool", "shade", "indoor", "air conditioning"}) {
			score += 0.1
			adaptations = append(adaptations, "heat_adaptation")
		}
	}
	if match.ContainsAny(text.response, awarenessKeywords) {
		score += 0.1
		adaptations = append(adaptations, "preference_awareness")
	}

	details := "Limited adaptation to user preferences"
	if len(adaptations) > 0 {
		details = fmt.Sprintf("Detected %d adaptation(s)", len(adaptations))
	}
	return &Result{
		Score:       clampScore(score),
		Details:     details,
		Adaptations: adaptations,
	}
}
