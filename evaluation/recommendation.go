//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"fmt"

	"github.com/wxarena/wxarena/evaluation/internal/match"
)

var recommendationKeywords = []string{
	"recommend", "suggest", "should", "advise", "consider",
	"umbrella", "jacket", "coat", "sweater", "raincoat",
	"outdoor", "indoor", "wear", "bring", "take", "prepare",
}

var adviceRequestKeywords = []string{
	"should", "recommend", "suggest", "what should", "what to wear",
	"umbrella", "jacket", "outdoor", "indoor", "advice", "help",
}

// specificItems are named garments or gear, the concrete actionable part of
// a recommendation.
var specificItems = []string{
	"umbrella", "jacket", "coat", "sweater", "raincoat", "boots", "hat", "gloves",
}

var reasoningKeywords = []string{"because", "due to", "since", "as", "given that", "considering"}

// scoreRecommendationQuality rewards concrete, reasoned advice. A reply
// without any recommendation language scores poorly only when the query
// explicitly asked for advice.
func (e *Evaluator) scoreRecommendationQuality(in *Input) *Result {
	text := in.lower()

	if !match.ContainsAny(text.response, recommendationKeywords) {
		if match.ContainsAny(text.query, adviceRequestKeywords) {
			return &Result{
				Score:              0.2,
				Details:            "Recommendations requested but not provided",
				HasRecommendations: false,
			}
		}
		return &Result{
			Score:              neutralScore,
			Details:            "No recommendations needed for this query",
			HasRecommendations: false,
		}
	}

	score := 0.5
	if match.ContainsAny(text.response, specificItems) {
		score += 0.2
	}
	if match.ContainsAny(text.response, reasoningKeywords) {
		score += 0.2
	}
	count := match.CountMatches(text.response, recommendationKeywords)
	if count >= 3 {
		score += 0.1
	}
	score = clampScore(score)

	details := "Basic recommendations provided"
	if score >= 0.8 {
		details = fmt.Sprintf("High quality recommendations with %d suggestions", count)
	}
	return &Result{
		Score:               score,
		Details:             details,
		HasRecommendations:  true,
		RecommendationCount: count,
	}
}
