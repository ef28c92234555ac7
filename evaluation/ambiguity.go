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

var clarificationPhrases = []string{
	"could you clarify", "could you specify", "which city", "which location",
	"please provide", "need more information", "to better assist", "could you tell me",
	"what city", "what location", "where", "when", "which", "please specify",
}

var assumptionIndicators = []string{
	"assuming", "i'll assume", "if you mean", "probably", "likely",
	"typically", "generally", "usually", "most likely",
}

var locationRequestPhrases = []string{
	"which city", "what city", "where", "location", "city name",
	"please specify the city", "could you tell me the city",
}

var guidancePhrases = []string{
	"you can ask", "you might want to", "for example", "such as",
	"you could specify", "to get better results", "to help you better",
}

var relevanceKeywords = []string{"weather", "temperature", "forecast", "recommend"}

// scoreAmbiguityHandling detects vague queries (no location, no time anchor,
// very short, or off-topic) and rewards clarification questions, explicit
// assumptions, or a still-useful answer.
func (e *Evaluator) scoreAmbiguityHandling(in *Input) *Result {
	if in.empty() {
		return &Result{Score: neutralScore, Details: "No query or response to evaluate"}
	}
	text := in.lower()
	score := 0.5
	var strengths, issues []string

	missingLocation := !match.ContainsAny(text.query, []string{"in ", "at ", "for ", "weather", "city", "location", "place"})
	missingTime := match.ContainsAny(text.query, []string{"when", "what time", "when is"}) &&
		!match.ContainsAny(text.query, []string{"today", "tomorrow", "friday", "monday", "next"})
	vagueRequest := len(strings.Fields(in.Query)) < 4 &&
		!match.ContainsAny(text.query, []string{"weather", "temperature", "forecast"})
	unclearIntent := !match.ContainsAny(text.query, []string{
		"weather", "temp", "forecast", "rain", "sunny", "cold", "hot",
		"umbrella", "jacket", "activity", "plan",
	})
	ambiguous := missingLocation || missingTime || vagueRequest || unclearIntent

	if ambiguous {
		switch {
		case match.ContainsAny(text.response, clarificationPhrases):
			strengths = append(strengths, "Asks for clarification when input is vague")
			score += 0.4
		case match.ContainsAny(text.response, assumptionIndicators):
			strengths = append(strengths, "Makes reasonable assumptions when information is missing")
			score += 0.3
		case len(in.Response) > 100 && match.ContainsAny(text.response, relevanceKeywords):
			strengths = append(strengths, "Provides helpful response despite ambiguity")
			score += 0.2
		default:
			issues = append(issues, "Does not handle ambiguous input well")
			score -= 0.2
		}
	} else if len(in.Response) > 50 && match.ContainsAny(text.response, relevanceKeywords) {
		strengths = append(strengths, "Handles clear queries appropriately")
		score += 0.2
	}

	if missingLocation {
		if match.ContainsAny(text.response, locationRequestPhrases) {
			strengths = append(strengths, "Asks for missing location information")
			score += 0.2
		} else if !missingTime && !vagueRequest && !unclearIntent {
			// The location is the only thing missing and the reply never
			// asked for it.
			issues = append(issues, "Does not request missing location")
			score -= 0.1
		}
	}

	if ambiguous && match.ContainsAny(text.response, guidancePhrases) {
		strengths = append(strengths, "Provides helpful guidance for unclear input")
		score += 0.2
	}

	score = clampScore(score)

	var details string
	switch {
	case len(strengths) > 0 && len(issues) == 0:
		details = fmt.Sprintf("Good handling: %s", strings.Join(firstN(strengths, 2), ", "))
	case len(issues) > 0:
		details = fmt.Sprintf("Issues: %s", strings.Join(firstN(issues, 2), ", "))
	case !ambiguous:
		details = "Query was clear, handled appropriately"
	default:
		details = "Basic ambiguity handling"
	}

	if !ambiguous && len(in.Response) > 50 && match.ContainsAny(text.response, relevanceKeywords) && score < 0.8 {
		score = 0.8
	}

	return &Result{
		Score:       score,
		Details:     details,
		Strengths:   strengths,
		Issues:      issues,
		IsAmbiguous: ambiguous,
	}
}
