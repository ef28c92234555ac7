//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package geminibot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/wxarena/wxarena/preference"
	"github.com/wxarena/wxarena/weather"
)

type stubModels struct {
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
	reply        string
	err          error
}

func (s *stubModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.lastModel = model
	s.lastContents = contents
	s.lastConfig = config
	if s.err != nil {
		return nil, s.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(s.reply, genai.RoleModel)},
		},
	}, nil
}

type stubWeather struct {
	snap *weather.Snapshot
}

func (s *stubWeather) Current(ctx context.Context, city string) (*weather.Snapshot, error) {
	return s.snap, nil
}

func (s *stubWeather) Forecast(ctx context.Context, city string, days int) (*weather.Snapshot, error) {
	return s.snap, nil
}

func TestBot_Chat(t *testing.T) {
	stub := &stubModels{reply: "It is 4.5°C with rain in Helsinki, bring an umbrella."}
	snap := &weather.Snapshot{
		City:    "Helsinki",
		Current: &weather.Current{Temperature: 4.5, Condition: "rain", Description: "light rain"},
	}
	prefs, err := preference.NewFileStore(t.TempDir(), preference.SchemaAssistant)
	require.NoError(t, err)

	bot, err := New(context.Background(), "", withModels(stub),
		WithModel("gemini-2.0-flash"),
		WithWeather(&stubWeather{snap: snap}),
		WithPreferences(prefs))
	require.NoError(t, err)
	assert.Equal(t, "gemini", bot.Name())

	reply, err := bot.Chat(context.Background(), "alice", "What's the weather in Helsinki? I hate rain.")
	require.NoError(t, err)
	assert.Equal(t, stub.reply, reply.Text)
	assert.Equal(t, 1, reply.ToolCalls)
	assert.Same(t, snap, reply.Weather)

	assert.Equal(t, "gemini-2.0-flash", stub.lastModel)
	require.Len(t, stub.lastContents, 1)
	require.NotNil(t, stub.lastConfig)
	require.NotNil(t, stub.lastConfig.SystemInstruction)

	payload, err := prefs.Load(context.Background(), "alice")
	require.NoError(t, err)
	wx := payload["weather_preferences"].(map[string]any)
	assert.Equal(t, true, wx["dislikes_rain"])
}

func TestBot_ChatModelError(t *testing.T) {
	bot, err := New(context.Background(), "", withModels(&stubModels{err: errors.New("quota exceeded")}))
	require.NoError(t, err)

	_, err = bot.Chat(context.Background(), "alice", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generate content")
}
