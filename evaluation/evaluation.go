//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package evaluation scores chatbot replies against ground-truth weather
// data, conversation history and learned user preferences. Fourteen
// independent heuristic rules each produce a bounded score with qualitative
// detail; Evaluate assembles them into one report per turn.
package evaluation

import "context"

// Evaluator runs the fourteen scoring rules over one turn. It is stateless
// apart from the static per-framework characteristics table fixed at
// construction, so a single Evaluator is safe for concurrent use.
type Evaluator struct {
	characteristics map[string]Characteristics
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithCharacteristics replaces the static per-framework characteristics
// table consulted by the developer-experience metrics.
func WithCharacteristics(table map[string]Characteristics) Option {
	return func(e *Evaluator) {
		if table != nil {
			e.characteristics = table
		}
	}
}

// New creates an Evaluator.
func New(opt ...Option) *Evaluator {
	e := &Evaluator{characteristics: defaultCharacteristics()}
	for _, o := range opt {
		o(e)
	}
	return e
}

// Evaluate scores one turn on every metric. It never fails: scorers that
// lack their optional context return the neutral 0.5 with an explanatory
// detail instead of erroring.
func (e *Evaluator) Evaluate(ctx context.Context, in *Input) Report {
	_ = ctx
	if in == nil {
		in = &Input{}
	}
	return Report{
		MetricAccuracy:              e.scoreAccuracy(in),
		MetricTaskCompletion:        e.scoreTaskCompletion(in),
		MetricRecommendationQuality: e.scoreRecommendationQuality(in),
		MetricContextRetention:      e.scoreContextRetention(in),
		MetricAdaptationQuality:     e.scoreAdaptationQuality(in),
		MetricResponseTime:          e.scoreResponseTime(in),
		MetricToolCallCount:         e.scoreToolCallCount(in),
		MetricActionPlanning:        e.scoreActionPlanning(in),
		MetricErrorRecovery:         e.scoreErrorRecovery(in),
		MetricImplementationEffort:  e.scoreImplementationEffort(in),
		MetricIntegrationSimplicity: e.scoreIntegrationSimplicity(in),
		MetricDebuggability:         e.scoreDebuggability(in),
		MetricAmbiguityHandling:     e.scoreAmbiguityHandling(in),
		MetricRepeatability:         e.scoreRepeatability(in),
	}
}
