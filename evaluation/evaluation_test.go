//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxarena/wxarena/evaluation"
	"github.com/wxarena/wxarena/weather"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEvaluate_AllContextAbsent(t *testing.T) {
	ev := evaluation.New()
	report := ev.Evaluate(context.Background(), &evaluation.Input{})

	require.Len(t, report, len(evaluation.MetricNames))
	for _, name := range evaluation.MetricNames {
		res := report[name]
		require.NotNil(t, res, name)
		assert.Equal(t, 0.5, res.Score, name)
		assert.NotEmpty(t, res.Details, name)
	}
}

func TestEvaluate_NilInput(t *testing.T) {
	ev := evaluation.New()
	report := ev.Evaluate(context.Background(), nil)
	require.Len(t, report, len(evaluation.MetricNames))
}

func TestEvaluate_Idempotent(t *testing.T) {
	ev := evaluation.New()
	in := &evaluation.Input{
		Query:     "What's the weather in Helsinki today?",
		Response:  "The temperature is 5°C with rain. I recommend an umbrella because it will stay wet.",
		Framework: "openai",
		Weather: &weather.Snapshot{
			Current: &weather.Current{Temperature: 5.0, Condition: "rain"},
		},
		History:        []evaluation.Turn{{User: "weather in helsinki today", Assistant: "It was 4 degrees."}},
		LatencySeconds: floatPtr(1.2),
		ToolCalls:      intPtr(1),
	}

	first := ev.Evaluate(context.Background(), in)
	second := ev.Evaluate(context.Background(), in)
	assert.Equal(t, first, second)
}

func TestEvaluate_ScoresStayBounded(t *testing.T) {
	ev := evaluation.New()
	inputs := []*evaluation.Input{
		{},
		{Query: "hm?", Response: "?"},
		{
			Query:    "What should I wear in Helsinki today?",
			Response: "The temperature is 3°C and snowing. I recommend a warm jacket, gloves and boots because it is freezing. You should also consider indoor activities.",
			Weather: &weather.Snapshot{
				Current: &weather.Current{Temperature: 3.0, Condition: "snow"},
			},
			Framework:      "gemini",
			LatencySeconds: floatPtr(0.4),
			ToolCalls:      intPtr(1),
			History: []evaluation.Turn{
				{User: "weather in helsinki today", Assistant: "It is 3 degrees. I recommend a jacket."},
			},
			Preferences: map[string]any{
				"temperature_preferences":    map[string]any{"dislikes_cold": true},
				"learned_from_conversations": 2,
			},
		},
		{
			Query:          "Tell me a joke",
			Response:       "Sorry, I can't.",
			Framework:      "unknown-framework",
			LatencySeconds: floatPtr(42.0),
			ToolCalls:      intPtr(12),
		},
	}

	for _, in := range inputs {
		report := ev.Evaluate(context.Background(), in)
		require.Len(t, report, len(evaluation.MetricNames))
		for name, res := range report {
			assert.GreaterOrEqual(t, res.Score, 0.0, name)
			assert.LessOrEqual(t, res.Score, 1.0, name)
		}
	}
}

func TestEvaluate_WithCharacteristicsOverride(t *testing.T) {
	ev := evaluation.New(evaluation.WithCharacteristics(map[string]evaluation.Characteristics{
		"custom": {
			FileCount:            2,
			SetupComplexity:      "low",
			ToolIntegrationFiles: 1,
			MemoryIntegration:    "built_in",
			ErrorHandling:        "framework_managed",
			Logging:              "framework_provided",
			CodeComplexity:       "low",
			Documentation:        "comprehensive",
		},
	}))

	report := ev.Evaluate(context.Background(), &evaluation.Input{
		Query:     "weather in oslo",
		Response:  "It is mild in Oslo today.",
		Framework: "custom",
	})
	assert.Equal(t, 1.0, report[evaluation.MetricImplementationEffort].Score)
	assert.Equal(t, "very easy", report[evaluation.MetricImplementationEffort].Level)

	// The defaults are gone once the table is replaced.
	report = ev.Evaluate(context.Background(), &evaluation.Input{
		Query:     "weather in oslo",
		Response:  "It is mild in Oslo today.",
		Framework: "gemini",
	})
	assert.Equal(t, 0.5, report[evaluation.MetricDebuggability].Score)
	assert.Equal(t, "unknown", report[evaluation.MetricDebuggability].Level)
}
