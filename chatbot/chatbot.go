//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package chatbot defines the contract the competing weather assistants
// implement, plus the query-enrichment step they share: weather data is
// fetched before the model call and injected into the prompt, so every
// backing model works from the same ground truth.
package chatbot

import (
	"context"
	"time"

	"github.com/wxarena/wxarena/weather"
)

// Reply is one assistant answer with the evidence the arena needs to
// evaluate it.
type Reply struct {
	// Text is the assistant's message.
	Text string
	// Weather is the snapshot fetched for this turn, nil when none was.
	Weather *weather.Snapshot
	// ToolCalls counts the external fetches made for this turn.
	ToolCalls int
	// Latency is the wall-clock time for the whole turn.
	Latency time.Duration
}

// Bot is one chat stack under comparison.
type Bot interface {
	// Name returns the framework identifier used in reports.
	Name() string
	// Chat produces a reply for one user message.
	Chat(ctx context.Context, userID, message string) (*Reply, error)
}

// WeatherFetcher is the weather lookup surface the enrichment step needs.
// *weather.Client satisfies it.
type WeatherFetcher interface {
	Current(ctx context.Context, city string) (*weather.Snapshot, error)
	Forecast(ctx context.Context, city string, days int) (*weather.Snapshot, error)
}
