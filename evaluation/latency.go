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
)

// scoreResponseTime maps wall-clock latency onto a piecewise scale: under
// two seconds is perfect, the 2-5s and 5-10s bands interpolate linearly,
// and anything slower bottoms out at 0.3.
func (e *Evaluator) scoreResponseTime(in *Input) *Result {
	if in.LatencySeconds == nil {
		return &Result{
			Score:   neutralScore,
			Details: "Response time not available",
			Level:   "unknown",
		}
	}

	t := *in.LatencySeconds
	var score float64
	var level string
	switch {
	case t < 2.0:
		score = 1.0
		level = "excellent"
	case t < 5.0:
		score = 0.9 - ((t-2.0)/3.0)*0.2
		level = "good"
	case t < 10.0:
		score = 0.7 - ((t-5.0)/5.0)*0.2
		level = "acceptable"
	default:
		score = math.Max(0.3, 0.5-((t-10.0)/10.0)*0.2)
		level = "slow"
	}

	rounded := math.Round(t*100) / 100
	return &Result{
		Score:   clampScore(score),
		Seconds: &rounded,
		Details: fmt.Sprintf("Response time: %.2fs (%s)", t, level),
		Level:   level,
	}
}

// scoreToolCallCount rewards fetching the needed data in few calls. Zero
// calls is neutral since some queries legitimately need none.
func (e *Evaluator) scoreToolCallCount(in *Input) *Result {
	if in.ToolCalls == nil {
		return &Result{
			Score:   neutralScore,
			Details: "Tool call count not available",
			Level:   "unknown",
		}
	}

	n := *in.ToolCalls
	var score float64
	var level string
	switch {
	case n == 0:
		score = 0.5
		level = "no_calls"
	case n <= 2:
		score = 1.0
		level = "optimal"
	case n <= 4:
		score = 0.8
		level = "good"
	case n <= 6:
		score = 0.6
		level = "acceptable"
	default:
		score = 0.4
		level = "inefficient"
	}

	count := n
	return &Result{
		Score:   clampScore(score),
		Count:   &count,
		Details: fmt.Sprintf("%d tool call(s) (%s)", n, level),
		Level:   level,
	}
}
