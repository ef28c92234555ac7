//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"strings"

	"github.com/wxarena/wxarena/weather"
)

// Turn is one prior exchange in the conversation history.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Input is everything known about one conversational turn. Query, Response
// and Framework are required; the remaining fields are optional context, and
// every scorer degrades to a neutral result when the context it needs is
// absent.
type Input struct {
	// Query is the user's message for this turn.
	Query string
	// Response is the chatbot's reply being judged.
	Response string
	// Framework tags which chatbot stack produced the response.
	Framework string
	// Weather is the ground-truth snapshot the bot worked from, if any.
	// Either shape (current or forecast) may arrive here.
	Weather *weather.Snapshot
	// History holds the prior turns of this conversation, oldest first.
	History []Turn
	// Preferences is the raw learned-preference payload in either of the
	// two storage schemas. It is normalized once before scoring.
	Preferences map[string]any
	// LatencySeconds is how long the reply took to produce.
	LatencySeconds *float64
	// ToolCalls is how many tool/API calls the bot made for this turn.
	ToolCalls *int
}

// lowered caches the lowercase forms the scorers match against.
type lowered struct {
	query    string
	response string
}

// empty reports a turn with no content at all. Text scorers treat it like
// any other missing context and stay neutral.
func (in *Input) empty() bool {
	return strings.TrimSpace(in.Query) == "" && strings.TrimSpace(in.Response) == ""
}

func (in *Input) lower() lowered {
	return lowered{
		query:    strings.ToLower(in.Query),
		response: strings.ToLower(in.Response),
	}
}
