//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"fmt"
	"math"

	"github.com/wxarena/wxarena/evaluation/internal/match"
)

// forecastKeywords mark forecast intent in a query and forecast
// acknowledgement in a response.
var forecastKeywords = []string{"forecast", "tomorrow", "week", "upcoming", "next", "future"}

// scoreAccuracy compares the response against the ground-truth snapshot:
// temperature claims within tolerance, the expected condition category
// mentioned, forecast questions answered with forecast language.
func (e *Evaluator) scoreAccuracy(in *Input) *Result {
	if in.Weather == nil || (!in.Weather.HasCurrent() && !in.Weather.HasForecast()) {
		return &Result{
			Score:         neutralScore,
			Details:       "No weather data available for comparison",
			FactualErrors: []string{},
		}
	}

	text := in.lower()
	score := 1.0
	var factualErrors []string

	if in.Weather.HasCurrent() {
		cur := in.Weather.Current
		if claimed, ok := match.FindTemperature(text.response); ok {
			// ±2°C tolerance before the heavy penalty kicks in.
			diff := math.Abs(claimed - cur.Temperature)
			switch {
			case diff > 2:
				score -= 0.3
				factualErrors = append(factualErrors,
					fmt.Sprintf("Temperature mismatch: said %g°C, actual %g°C", claimed, cur.Temperature))
			case diff > 1:
				score -= 0.1
				factualErrors = append(factualErrors,
					fmt.Sprintf("Temperature slightly off: said %g°C, actual %g°C", claimed, cur.Temperature))
			}
		}

		if synonyms := match.ConditionKeywords[cur.Condition]; len(synonyms) > 0 {
			if !match.ContainsAny(text.response, synonyms) {
				score -= 0.2
				factualErrors = append(factualErrors,
					fmt.Sprintf("Missing weather condition: should mention %s", cur.Condition))
			}
		}
	}

	if in.Weather.HasForecast() {
		if match.ContainsAny(text.query, forecastKeywords) &&
			!match.ContainsAny(text.response, forecastKeywords) {
			score -= 0.2
			factualErrors = append(factualErrors, "Forecast query not addressed")
		}
	}

	details := "No factual errors detected"
	if len(factualErrors) > 0 {
		details = fmt.Sprintf("%d factual issue(s) found", len(factualErrors))
	}
	return &Result{
		Score:         clampScore(score),
		Details:       details,
		FactualErrors: factualErrors,
	}
}
