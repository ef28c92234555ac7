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

var preferenceCueKeywords = []string{"prefer", "like", "dislike", "hate", "love", "favorite"}

// scoreContextRetention checks whether entities from earlier turns (cities,
// stated preferences, day references) resurface in the current reply.
func (e *Evaluator) scoreContextRetention(in *Input) *Result {
	if len(in.History) == 0 {
		return &Result{
			Score:         neutralScore,
			Details:       "No conversation history available for context retention evaluation",
			RetainedItems: []string{},
		}
	}

	text := in.lower()
	score := 0.5
	var retained []string

	cities := map[string]bool{}
	preferences := map[string]bool{}
	days := map[string]bool{}
	for _, turn := range in.History {
		msg := strings.ToLower(turn.User)
		for _, city := range match.ExtractCities(msg) {
			cities[city] = true
		}
		if match.ContainsAny(msg, preferenceCueKeywords) {
			if strings.Contains(msg, "cold") || strings.Contains(msg, "warm") {
				preferences["temperature_preference"] = true
			}
			if strings.Contains(msg, "rain") || strings.Contains(msg, "sunny") {
				preferences["weather_preference"] = true
			}
			if strings.Contains(msg, "outdoor") || strings.Contains(msg, "indoor") {
				preferences["activity_preference"] = true
			}
		}
		for _, day := range match.DayTokens {
			if strings.Contains(msg, day) {
				days[day] = true
			}
		}
	}

	if len(cities) > 0 {
		if containsAnyKey(text.response, cities) {
			score += 0.2
			retained = append(retained, "city")
		} else if containsAnyKey(text.query, cities) {
			// The query names a known city the reply ignored.
			score -= 0.1
		}
	}

	if len(preferences) > 0 {
		hasPrefKeywords := strings.Contains(text.response, "prefer") ||
			strings.Contains(text.response, "like") ||
			strings.Contains(text.response, "recommend")
		hasPrefContext := strings.Contains(text.response, "temperature") ||
			strings.Contains(text.response, "weather") ||
			strings.Contains(text.response, "outdoor") ||
			strings.Contains(text.response, "indoor")
		if hasPrefKeywords && hasPrefContext {
			score += 0.15
			retained = append(retained, "preferences")
		}
	}

	if len(days) > 0 && containsAnyKey(text.response, days) {
		score += 0.15
		retained = append(retained, "date/time")
	}

	details := "Limited context retention detected"
	if len(retained) > 0 {
		details = fmt.Sprintf("Retained %d context item(s): %s", len(retained), strings.Join(retained, ", "))
	}
	return &Result{
		Score:         clampScore(score),
		Details:       details,
		RetainedItems: retained,
	}
}

func containsAnyKey(text string, set map[string]bool) bool {
	for k := range set {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
