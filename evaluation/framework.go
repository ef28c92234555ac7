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

// Characteristics describes a chatbot framework's static developer-experience
// profile. The qualitative fields take the ordinal values low/medium/high
// (complexity), built_in/manual (memory), framework_managed/manual (errors),
// framework_provided/basic (logging) and comprehensive/moderate/minimal
// (documentation).
type Characteristics struct {
	FileCount            int    `json:"file_count" yaml:"file_count"`
	SetupComplexity      string `json:"setup_complexity" yaml:"setup_complexity"`
	ToolIntegrationFiles int    `json:"tool_integration_files" yaml:"tool_integration_files"`
	MemoryIntegration    string `json:"memory_integration" yaml:"memory_integration"`
	ErrorHandling        string `json:"error_handling" yaml:"error_handling"`
	Logging              string `json:"logging" yaml:"logging"`
	CodeComplexity       string `json:"code_complexity" yaml:"code_complexity"`
	Documentation        string `json:"documentation" yaml:"documentation"`
}

func defaultCharacteristics() map[string]Characteristics {
	return map[string]Characteristics{
		"gemini": {
			FileCount:            5,
			SetupComplexity:      "medium",
			ToolIntegrationFiles: 2,
			MemoryIntegration:    "built_in",
			ErrorHandling:        "framework_managed",
			Logging:              "framework_provided",
			CodeComplexity:       "medium",
			Documentation:        "comprehensive",
		},
		"openai": {
			FileCount:            4,
			SetupComplexity:      "low",
			ToolIntegrationFiles: 1,
			MemoryIntegration:    "manual",
			ErrorHandling:        "manual",
			Logging:              "basic",
			CodeComplexity:       "low",
			Documentation:        "moderate",
		},
	}
}

// scoreImplementationEffort rates how hard the framework is to stand up for
// this use case. Higher means easier.
func (e *Evaluator) scoreImplementationEffort(in *Input) *Result {
	chars, ok := e.characteristics[in.Framework]
	if !ok {
		return &Result{Score: neutralScore, Details: "Framework not recognized", Level: "unknown"}
	}

	// Accumulate difficulty, then invert.
	difficulty := 0.5
	if chars.FileCount <= 3 {
		difficulty -= 0.2
	} else if chars.FileCount >= 6 {
		difficulty += 0.2
	}
	switch chars.SetupComplexity {
	case "low":
		difficulty -= 0.15
	case "high":
		difficulty += 0.15
	}
	switch chars.CodeComplexity {
	case "low":
		difficulty -= 0.15
	case "high":
		difficulty += 0.15
	}
	difficulty = clampScore(difficulty)
	score := clampScore(1.0 - difficulty)

	var level string
	switch {
	case score >= 0.8:
		level = "very easy"
	case score >= 0.6:
		level = "easy"
	case score >= 0.4:
		level = "moderate"
	case score >= 0.2:
		level = "difficult"
	default:
		level = "very difficult"
	}

	return &Result{
		Score:   score,
		Details: fmt.Sprintf("%d files, %s setup (%s)", chars.FileCount, chars.SetupComplexity, level),
		Level:   level,
	}
}

// scoreIntegrationSimplicity rates how easy it is to wire tools and memory
// into the framework.
func (e *Evaluator) scoreIntegrationSimplicity(in *Input) *Result {
	chars, ok := e.characteristics[in.Framework]
	if !ok {
		return &Result{Score: neutralScore, Details: "Framework not recognized", Level: "unknown"}
	}

	score := 0.5
	switch chars.ToolIntegrationFiles {
	case 1:
		score += 0.3
	case 2:
		score += 0.1
	default:
		score -= 0.2
	}
	switch chars.MemoryIntegration {
	case "built_in":
		score += 0.2
	case "manual":
		score -= 0.1
	}
	score = clampScore(score)

	var level string
	switch {
	case score >= 0.8:
		level = "very simple"
	case score >= 0.6:
		level = "simple"
	case score >= 0.4:
		level = "moderate"
	case score >= 0.2:
		level = "complex"
	default:
		level = "very complex"
	}

	memoryDesc := "manual"
	if chars.MemoryIntegration == "built_in" {
		memoryDesc = "built-in"
	}
	return &Result{
		Score: score,
		Details: fmt.Sprintf("%d file(s) to modify, %s memory (%s)",
			chars.ToolIntegrationFiles, memoryDesc, level),
		Level: level,
	}
}

// scoreDebuggability rates log and error clarity. It mixes the static
// framework profile with a live check on the response's own error text.
func (e *Evaluator) scoreDebuggability(in *Input) *Result {
	chars, ok := e.characteristics[in.Framework]
	if !ok {
		return &Result{Score: neutralScore, Details: "Framework not recognized", Level: "unknown"}
	}

	score := 0.5
	switch chars.ErrorHandling {
	case "framework_managed":
		score += 0.2
	case "manual":
		score -= 0.1
	}
	switch chars.Logging {
	case "framework_provided":
		score += 0.2
	case "basic":
		score -= 0.1
	}

	text := in.lower()
	if strings.Contains(text.response, "error:") {
		if len(in.Response) > 50 &&
			match.ContainsAny(text.response, []string{"unable", "could not", "failed", "missing"}) {
			score += 0.1
		} else {
			score -= 0.1
		}
	}

	switch chars.Documentation {
	case "comprehensive":
		score += 0.1
	case "moderate":
		score += 0.05
	}
	score = clampScore(score)

	var level string
	switch {
	case score >= 0.8:
		level = "excellent"
	case score >= 0.6:
		level = "good"
	case score >= 0.4:
		level = "moderate"
	case score >= 0.2:
		level = "poor"
	default:
		level = "very poor"
	}

	loggingDesc := strings.ReplaceAll(chars.Logging, "_", " ")
	errorDesc := strings.ReplaceAll(chars.ErrorHandling, "_", " ")
	return &Result{
		Score:   score,
		Details: fmt.Sprintf("%s logging, %s errors (%s)", loggingDesc, errorDesc, level),
		Level:   level,
	}
}
