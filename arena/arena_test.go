//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package arena

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxarena/wxarena/chatbot"
	"github.com/wxarena/wxarena/evaluation"
	"github.com/wxarena/wxarena/preference"
)

type stubBot struct {
	name  string
	reply *chatbot.Reply
	err   error
}

func (b *stubBot) Name() string { return b.name }

func (b *stubBot) Chat(ctx context.Context, userID, message string) (*chatbot.Reply, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.reply, nil
}

func entrantFor(bot *stubBot) Entrant {
	return Entrant{
		Framework: bot.name,
		Build: func(ctx context.Context, userID string) (chatbot.Bot, error) {
			return bot, nil
		},
	}
}

func TestArena_Run(t *testing.T) {
	openai := &stubBot{name: "openai", reply: &chatbot.Reply{
		Text:      "It is 20°C and sunny, I suggest a light jacket because evenings cool down.",
		ToolCalls: 1,
		Latency:   1200 * time.Millisecond,
	}}
	gemini := &stubBot{name: "gemini", reply: &chatbot.Reply{
		Text:      "Expect 20°C and clear skies today.",
		ToolCalls: 1,
		Latency:   800 * time.Millisecond,
	}}

	a, err := New([]Entrant{entrantFor(openai), entrantFor(gemini)})
	require.NoError(t, err)
	defer a.Close()

	results, err := a.Run(context.Background(), "alice", "What's the weather in Paris?")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "openai", results[0].Framework)
	assert.Equal(t, "gemini", results[1].Framework)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.Reply)
		require.Len(t, r.Report, len(evaluation.MetricNames))
		for _, name := range evaluation.MetricNames {
			require.Contains(t, r.Report, name)
		}
	}
	assert.Equal(t, openai.reply.Text, results[0].Reply.Text)
}

func TestArena_OneEntrantFails(t *testing.T) {
	ok := &stubBot{name: "openai", reply: &chatbot.Reply{Text: "Sunny today."}}
	bad := &stubBot{name: "gemini", err: errors.New("quota exceeded")}

	a, err := New([]Entrant{entrantFor(ok), entrantFor(bad)})
	require.NoError(t, err)
	defer a.Close()

	results, err := a.Run(context.Background(), "alice", "weather?")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Report)
	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Report)
}

func TestArena_AllEntrantsFail(t *testing.T) {
	a, err := New([]Entrant{
		entrantFor(&stubBot{name: "openai", err: errors.New("down")}),
		entrantFor(&stubBot{name: "gemini", err: errors.New("down too")}),
	})
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Run(context.Background(), "alice", "weather?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai")
	assert.Contains(t, err.Error(), "gemini")
}

func TestArena_RebuildsBotAfterPreferenceChange(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store, err := preference.NewFileStore(t.TempDir(), preference.SchemaService,
		preference.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	builds := 0
	e := Entrant{
		Framework: "openai",
		Prefs:     store,
		Build: func(ctx context.Context, userID string) (chatbot.Bot, error) {
			builds++
			return &stubBot{name: "openai", reply: &chatbot.Reply{Text: "Sunny."}}, nil
		},
	}
	a, err := New([]Entrant{e})
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	_, err = a.Run(ctx, "alice", "hi")
	require.NoError(t, err)
	assert.Equal(t, 1, builds)

	// Same preference state: the cached bot is reused.
	_, err = a.Run(ctx, "alice", "hi again")
	require.NoError(t, err)
	assert.Equal(t, 1, builds)

	// Learning moves last_updated, so the next turn rebuilds.
	require.NoError(t, store.Learn(ctx, "alice", "I hate rain", "Noted."))
	_, err = a.Run(ctx, "alice", "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, builds)

	_, err = a.Run(ctx, "alice", "hello once more")
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
}

func TestArena_HistoryWindow(t *testing.T) {
	bot := &stubBot{name: "openai", reply: &chatbot.Reply{Text: "Sunny."}}
	a, err := New([]Entrant{entrantFor(bot)}, WithHistoryLimit(2))
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	for _, msg := range []string{"first", "second", "third"} {
		_, err := a.Run(ctx, "alice", msg)
		require.NoError(t, err)
	}

	turns := a.historyFor("openai", "alice")
	require.Len(t, turns, 2)
	assert.Equal(t, "second", turns[0].User)
	assert.Equal(t, "third", turns[1].User)

	// Histories are per user.
	assert.Empty(t, a.historyFor("openai", "bob"))
}

func TestArena_ResetUser(t *testing.T) {
	builds := 0
	e := Entrant{
		Framework: "openai",
		Build: func(ctx context.Context, userID string) (chatbot.Bot, error) {
			builds++
			return &stubBot{name: "openai", reply: &chatbot.Reply{Text: "Sunny."}}, nil
		},
	}
	a, err := New([]Entrant{e})
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	_, err = a.Run(ctx, "alice", "hi")
	require.NoError(t, err)
	require.Len(t, a.historyFor("openai", "alice"), 1)

	a.ResetUser("alice")
	assert.Empty(t, a.historyFor("openai", "alice"))

	_, err = a.Run(ctx, "alice", "hi")
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
}
