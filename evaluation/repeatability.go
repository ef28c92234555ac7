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

var randomIndicators = []string{"random", "maybe", "perhaps", "might be", "could be different"}

// scoreRepeatability compares the reply's shape against earlier replies to
// similar queries (two or more shared keywords): the same kinds of content
// showing up again reads as consistency, hedging language and extreme
// lengths as instability.
func (e *Evaluator) scoreRepeatability(in *Input) *Result {
	if in.empty() {
		return &Result{Score: neutralScore, Details: "No query or response to evaluate"}
	}
	text := in.lower()
	score := 0.7
	var strengths, issues []string

	if len(in.History) > 0 {
		currentKeywords := match.QueryKeywords(text.query)

		var similarResponses []string
		for _, turn := range in.History {
			prevKeywords := match.QueryKeywords(strings.ToLower(turn.User))
			shared := 0
			for kw := range prevKeywords {
				if currentKeywords[kw] {
					shared++
				}
			}
			if shared >= 2 {
				similarResponses = append(similarResponses, strings.ToLower(turn.Assistant))
			}
		}

		if len(similarResponses) > 0 {
			var prevTemperature, prevRecommendations, prevItems bool
			for _, prev := range similarResponses {
				if strings.Contains(prev, "temperature") || strings.Contains(prev, "degrees") {
					prevTemperature = true
				}
				if match.ContainsAny(prev, []string{"recommend", "suggest", "should"}) {
					prevRecommendations = true
				}
				if match.ContainsAny(prev, []string{"umbrella", "jacket", "wear"}) {
					prevItems = true
				}
			}

			hasTemperature := strings.Contains(text.response, "temperature") || strings.Contains(text.response, "degrees")
			hasRecommendations := match.ContainsAny(text.response, []string{"recommend", "suggest", "should"})
			hasItems := match.ContainsAny(text.response, []string{"umbrella", "jacket", "wear"})

			consistency := 0.0
			if prevTemperature && hasTemperature {
				consistency += 0.3
				strengths = append(strengths, "Consistent temperature information")
			}
			if prevRecommendations && hasRecommendations {
				consistency += 0.3
				strengths = append(strengths, "Consistent recommendation style")
			}
			if prevItems && hasItems {
				consistency += 0.2
				strengths = append(strengths, "Consistent item suggestions")
			}

			if consistency > 0 {
				score = 0.5 + consistency
			} else {
				issues = append(issues, "Inconsistent with previous similar queries")
				score -= 0.2
			}
		}
	} else if match.ContainsAny(text.response, relevanceKeywords) {
		strengths = append(strengths, "Structured response format")
		score += 0.1
	}

	if match.ContainsAny(text.response, randomIndicators) {
		issues = append(issues, "Contains non-deterministic language")
		score -= 0.1
	}

	if len(in.Response) < 30 {
		issues = append(issues, "Very short response (potential instability)")
		score -= 0.1
	} else if len(in.Response) > 1000 {
		issues = append(issues, "Very long response (potential inconsistency)")
		score -= 0.05
	}

	var details string
	switch {
	case len(strengths) > 0 && len(issues) == 0:
		details = fmt.Sprintf("Good consistency: %s", strings.Join(firstN(strengths, 2), ", "))
	case len(issues) > 0:
		details = fmt.Sprintf("Consistency issues: %s", strings.Join(firstN(issues, 2), ", "))
	case len(in.History) > 0:
		details = "Consistent with conversation history"
	default:
		details = "No history to compare, appears stable"
	}

	return &Result{
		Score:     clampScore(score),
		Details:   details,
		Strengths: strengths,
		Issues:    issues,
	}
}
