//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"regexp"
	"strings"

	"github.com/wxarena/wxarena/evaluation/internal/match"
)

var errorIndicators = []string{
	"error", "sorry", "couldn't", "can't", "unable",
	"failed", "not available", "not found", "could not",
	"i'm sorry", "apologize",
}

// weatherTopicKeywords decide whether a query or response is about weather.
var weatherTopicKeywords = []string{
	"weather", "temperature", "forecast", "rain", "sunny",
	"wind", "humidity", "umbrella", "jacket", "temp", "degrees",
}

var completionRecommendationKeywords = []string{
	"recommend", "suggest", "should", "umbrella", "jacket",
	"outdoor", "indoor", "wear", "bring", "advise", "consider",
}

var digitPattern = regexp.MustCompile(`\d`)

// scoreTaskCompletion judges whether the reply actually answered the query:
// short apologies and near-empty replies fail outright, weather questions
// answered without any weather language cap at 0.4, and substance (numbers,
// advice, length) earns additive credit.
func (e *Evaluator) scoreTaskCompletion(in *Input) *Result {
	if in.empty() {
		return &Result{Score: neutralScore, Completed: false, Details: "No query or response to evaluate"}
	}
	text := in.lower()

	if match.ContainsAny(text.response, errorIndicators) && len(in.Response) < 100 {
		return &Result{Score: 0.2, Completed: false, Details: "Error message detected"}
	}
	if len(strings.TrimSpace(in.Response)) < 20 {
		return &Result{Score: 0.1, Completed: false, Details: "Response too short or empty"}
	}
	if match.ContainsAny(text.query, weatherTopicKeywords) &&
		!match.ContainsAny(text.response, weatherTopicKeywords) {
		return &Result{Score: 0.4, Completed: false, Details: "Weather query not properly addressed"}
	}

	score := 0.5
	if digitPattern.MatchString(in.Response) {
		score += 0.2
	}
	if match.ContainsAny(text.response, completionRecommendationKeywords) {
		score += 0.2
	}
	if len(in.Response) > 100 {
		score += 0.1
	}
	score = clampScore(score)

	details := "Task partially completed"
	if score >= 0.7 {
		details = "Task completed"
	}
	return &Result{Score: score, Completed: score >= 0.7, Details: details}
}
