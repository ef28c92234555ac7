//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package openaibot implements the chat-completions weather assistant.
package openaibot

import (
	"context"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/wxarena/wxarena/chatbot"
	"github.com/wxarena/wxarena/log"
	"github.com/wxarena/wxarena/preference"
)

// Name is the framework identifier this bot reports.
const Name = "openai"

const defaultModel = "gpt-4o-mini"

// completions is the slice of the OpenAI client the bot uses, split out so
// tests can stub the network.
type completions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams,
		opts ...openaiopt.RequestOption) (*openai.ChatCompletion, error)
}

// Bot answers weather queries through the OpenAI chat-completions API.
type Bot struct {
	completions completions
	model       string
	weather     chatbot.WeatherFetcher
	prefs       preference.Store
}

// Option configures the Bot.
type Option func(*Bot)

// WithModel overrides the model id.
func WithModel(model string) Option {
	return func(b *Bot) {
		if model != "" {
			b.model = model
		}
	}
}

// WithWeather sets the weather fetcher used to enrich queries.
func WithWeather(f chatbot.WeatherFetcher) Option {
	return func(b *Bot) { b.weather = f }
}

// WithPreferences sets the preference store consulted and updated per turn.
func WithPreferences(s preference.Store) Option {
	return func(b *Bot) { b.prefs = s }
}

// withCompletions replaces the API surface, for tests.
func withCompletions(c completions) Option {
	return func(b *Bot) { b.completions = c }
}

// New creates the bot. The API key may be empty when the completions
// surface is replaced in tests.
func New(apiKey string, opt ...Option) *Bot {
	client := openai.NewClient(openaiopt.WithAPIKey(apiKey))
	b := &Bot{
		completions: chatCompletions{client: client},
		model:       defaultModel,
	}
	for _, o := range opt {
		o(b)
	}
	return b
}

type chatCompletions struct {
	client openai.Client
}

func (c chatCompletions) New(ctx context.Context, params openai.ChatCompletionNewParams,
	opts ...openaiopt.RequestOption) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params, opts...)
}

// Name implements chatbot.Bot.
func (b *Bot) Name() string { return Name }

// Chat implements chatbot.Bot: enrich the query with fetched weather, call
// the model with the preference-aware system prompt, then learn from the
// turn.
func (b *Bot) Chat(ctx context.Context, userID, message string) (*chatbot.Reply, error) {
	start := time.Now()

	summary := b.prefsSummary(ctx, userID)
	enriched, snap, calls := chatbot.EnrichQuery(ctx, b.weather, summary, message)

	resp, err := b.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(chatbot.Instructions(summary)),
			openai.UserMessage(enriched),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	if b.prefs != nil {
		if err := b.prefs.Learn(ctx, userID, message, text); err != nil {
			log.Warnf("openai bot: learn preferences for user %s: %v", userID, err)
		}
	}
	return &chatbot.Reply{
		Text:      text,
		Weather:   snap,
		ToolCalls: calls,
		Latency:   time.Since(start),
	}, nil
}

func (b *Bot) prefsSummary(ctx context.Context, userID string) string {
	if b.prefs == nil {
		return ""
	}
	summary, err := b.prefs.Summary(ctx, userID)
	if err != nil {
		log.Warnf("openai bot: preference summary for user %s: %v", userID, err)
		return ""
	}
	return summary
}
