//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation

import "math"

// Metric names, the fixed keys of a Report.
const (
	MetricAccuracy              = "accuracy"
	MetricTaskCompletion        = "task_completion"
	MetricRecommendationQuality = "recommendation_quality"
	MetricContextRetention      = "context_retention"
	MetricAdaptationQuality     = "adaptation_quality"
	MetricResponseTime          = "response_time"
	MetricToolCallCount         = "tool_call_count"
	MetricActionPlanning        = "action_planning"
	MetricErrorRecovery         = "error_recovery"
	MetricImplementationEffort  = "implementation_effort"
	MetricIntegrationSimplicity = "integration_simplicity"
	MetricDebuggability         = "debuggability"
	MetricAmbiguityHandling     = "ambiguity_handling"
	MetricRepeatability         = "repeatability"
)

// MetricNames lists every metric a Report contains, in display order.
var MetricNames = []string{
	MetricAccuracy,
	MetricTaskCompletion,
	MetricRecommendationQuality,
	MetricContextRetention,
	MetricAdaptationQuality,
	MetricResponseTime,
	MetricToolCallCount,
	MetricActionPlanning,
	MetricErrorRecovery,
	MetricImplementationEffort,
	MetricIntegrationSimplicity,
	MetricDebuggability,
	MetricAmbiguityHandling,
	MetricRepeatability,
}

// Result is the outcome of one metric. Score is always within [0, 1];
// the remaining fields are metric-specific detail and stay empty for
// metrics that do not produce them.
type Result struct {
	Score   float64 `json:"score"`
	Details string  `json:"details"`

	// Accuracy.
	FactualErrors []string `json:"factual_errors,omitempty"`
	// Task completion.
	Completed bool `json:"completed,omitempty"`
	// Recommendation quality.
	HasRecommendations  bool `json:"has_recommendations,omitempty"`
	RecommendationCount int  `json:"recommendation_count,omitempty"`
	// Context retention.
	RetainedItems []string `json:"retained_items,omitempty"`
	// Adaptation quality.
	Adaptations []string `json:"adaptations_detected,omitempty"`
	// Response time and tool calls.
	Seconds *float64 `json:"time_seconds,omitempty"`
	Count   *int     `json:"count,omitempty"`
	// Categorical level (efficiency, effort, simplicity, debuggability).
	Level string `json:"level,omitempty"`
	// Planning, recovery, ambiguity and repeatability commentary.
	Strengths []string `json:"strengths,omitempty"`
	Issues    []string `json:"issues,omitempty"`
	// Ambiguity handling.
	IsAmbiguous bool `json:"is_ambiguous,omitempty"`
}

// Report maps every metric name to its result.
type Report map[string]*Result

// neutralScore is returned whenever a metric lacks the input to judge.
const neutralScore = 0.5

// clampScore bounds a score to [0, 1] and rounds it to two decimals.
func clampScore(score float64) float64 {
	score = math.Max(0.0, math.Min(1.0, score))
	return math.Round(score*100) / 100
}
