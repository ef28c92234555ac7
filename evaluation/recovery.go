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

var gracefulIndicators = []string{
	"however", "but", "alternatively", "you could", "you might",
	"suggest", "recommend", "try", "consider", "instead",
}

var missingDataAckPhrases = []string{
	"unable to get", "could not retrieve", "weather data not available",
	"no weather data", "weather information unavailable", "could not fetch",
}

var genericAdvicePhrases = []string{
	"generally", "typically", "usually", "in general", "you might want",
	"consider", "suggest", "recommend", "could", "may want",
}

var clarificationIndicators = []string{
	"could you clarify", "could you specify", "which city", "which location",
	"please provide", "need more information", "to better assist",
}

var fallbackIndicators = []string{
	"you could try", "alternatively", "another option", "you might",
	"consider", "suggest", "recommend", "option",
}

// scoreErrorRecovery measures graceful degradation: an error admitted with
// alternatives beats a bare apology, and missing weather data should be
// acknowledged rather than papered over.
func (e *Evaluator) scoreErrorRecovery(in *Input) *Result {
	text := in.lower()
	score := 0.5
	var strengths, issues []string

	hasErrorIndicators := match.ContainsAny(text.response, errorIndicators)
	if hasErrorIndicators {
		switch {
		case match.ContainsAny(text.response, gracefulIndicators):
			strengths = append(strengths, "Error handled with alternatives")
			score += 0.3
		case len(in.Response) > 50:
			strengths = append(strengths, "Detailed error explanation")
			score += 0.2
		default:
			issues = append(issues, "Brief error message without alternatives")
			score -= 0.2
		}
	}

	hasWeather := in.Weather != nil && (in.Weather.HasCurrent() || in.Weather.HasForecast())
	if !hasWeather {
		if match.ContainsAny(text.response, missingDataAckPhrases) {
			strengths = append(strengths, "Acknowledged missing data")
			score += 0.2
			if match.ContainsAny(text.response, genericAdvicePhrases) {
				strengths = append(strengths, "Provided alternatives despite missing data")
				score += 0.3
			}
		} else if match.ContainsAny(text.query, []string{"weather", "temperature", "forecast", "rain", "sunny"}) {
			issues = append(issues, "Missing weather data not acknowledged")
			score -= 0.2
		}
	}

	if match.ContainsAny(text.response, clarificationIndicators) {
		strengths = append(strengths, "Asks for clarification when needed")
		score += 0.2
	}

	if hasErrorIndicators && match.ContainsAny(text.response, fallbackIndicators) {
		strengths = append(strengths, "Provides fallback options")
		score += 0.2
	}

	score = clampScore(score)

	var details string
	switch {
	case len(strengths) > 0 && len(issues) == 0:
		details = fmt.Sprintf("Good recovery: %s", strings.Join(firstN(strengths, 2), ", "))
	case len(issues) > 0:
		details = fmt.Sprintf("Recovery issues: %s", strings.Join(firstN(issues, 2), ", "))
	case !hasErrorIndicators && hasWeather:
		details = "No errors encountered"
		score = 1.0
	default:
		details = "Basic error handling"
	}

	return &Result{
		Score:     score,
		Details:   details,
		Strengths: strengths,
		Issues:    issues,
	}
}
