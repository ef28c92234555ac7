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

// planningQueryKeywords is broader than the completion set: planning also
// cares about activity queries that imply a weather lookup.
var planningQueryKeywords = []string{
	"weather", "temperature", "forecast", "rain", "sunny",
	"wind", "humidity", "umbrella", "jacket", "temp", "degrees",
	"outdoor", "activity", "plan",
}

var missingDataPhrases = []string{
	"unable to get", "could not retrieve", "weather data not available", "no weather data",
}

var weatherInfoKeywords = []string{"°c", "°f", "degrees", "temperature", "humidity", "wind speed", "forecast"}

var planningRecommendationKeywords = []string{"recommend", "suggest", "should", "umbrella", "jacket", "wear", "bring"}

var flowIndicators = []string{"first", "then", "next", "after", "based on", "according to"}

// scoreActionPlanning judges sequencing: did the bot fetch data before
// advising, and does the reply present weather facts before the
// recommendations derived from them.
func (e *Evaluator) scoreActionPlanning(in *Input) *Result {
	if in.empty() {
		return &Result{Score: neutralScore, Details: "No query or response to evaluate"}
	}
	text := in.lower()
	score := 0.0
	var strengths, issues []string

	hasWeather := in.Weather != nil && (in.Weather.HasCurrent() || in.Weather.HasForecast())
	isWeatherQuery := match.ContainsAny(text.query, planningQueryKeywords)

	if isWeatherQuery {
		if hasWeather {
			strengths = append(strengths, "Weather data retrieved appropriately")
			score += 0.3
		} else if match.ContainsAny(text.response, missingDataPhrases) {
			strengths = append(strengths, "Acknowledged missing weather data")
			score += 0.15
		} else {
			issues = append(issues, "Weather query but no weather data used")
		}

		hasInfo := match.ContainsAny(text.response, weatherInfoKeywords)
		hasRecs := match.ContainsAny(text.response, planningRecommendationKeywords)
		switch {
		case hasInfo && hasRecs:
			weatherPos := match.FirstIndex(text.response, "temperature", "degrees", "°")
			recPos := match.FirstIndex(text.response, "recommend", "suggest", "should")
			if weatherPos != -1 && recPos != -1 && recPos > weatherPos {
				strengths = append(strengths, "Logical sequence: weather info before recommendations")
				score += 0.3
			} else if weatherPos != -1 && recPos != -1 {
				strengths = append(strengths, "Both weather info and recommendations present")
				score += 0.2
			}
		case hasInfo:
			strengths = append(strengths, "Weather information provided")
			score += 0.2
		case hasRecs && !hasWeather:
			issues = append(issues, "Recommendations without weather data")
		}
	}

	if in.ToolCalls != nil {
		if isWeatherQuery {
			if *in.ToolCalls > 0 {
				strengths = append(strengths, "Appropriate tool usage for weather query")
				score += 0.2
			} else {
				issues = append(issues, "No tool calls for weather query")
			}
		} else if *in.ToolCalls == 0 {
			strengths = append(strengths, "No unnecessary tool calls")
			score += 0.1
		}
	}

	if match.ContainsAny(text.response, flowIndicators) {
		strengths = append(strengths, "Response shows logical flow")
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	if len(issues) == 0 && len(strengths) > 0 && score < 0.8 {
		score = 0.8
	}

	var details string
	switch {
	case len(strengths) > 0 && len(issues) == 0:
		details = fmt.Sprintf("Good planning: %s", strings.Join(firstN(strengths, 2), ", "))
	case len(issues) > 0:
		details = fmt.Sprintf("Issues: %s", strings.Join(firstN(issues, 2), ", "))
	default:
		details = "Basic planning observed"
	}

	return &Result{
		Score:     clampScore(score),
		Details:   details,
		Strengths: strengths,
		Issues:    issues,
	}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
