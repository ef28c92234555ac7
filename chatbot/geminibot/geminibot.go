//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package geminibot implements the Gemini-backed weather assistant.
package geminibot

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/wxarena/wxarena/chatbot"
	"github.com/wxarena/wxarena/log"
	"github.com/wxarena/wxarena/preference"
)

// Name is the framework identifier this bot reports.
const Name = "gemini"

const defaultModel = "gemini-2.0-flash"

// models is the slice of the GenAI client the bot uses, split out so tests
// can stub the network.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Bot answers weather queries through the Gemini API.
type Bot struct {
	models  models
	model   string
	weather chatbot.WeatherFetcher
	prefs   preference.Store
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

// withModels replaces the API surface, for tests.
func withModels(m models) Option {
	return func(b *Bot) { b.models = m }
}

// New creates the bot against the Gemini API backend.
func New(ctx context.Context, apiKey string, opt ...Option) (*Bot, error) {
	b := &Bot{model: defaultModel}
	for _, o := range opt {
		o(b)
	}
	if b.models == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		b.models = client.Models
	}
	return b, nil
}

// Name implements chatbot.Bot.
func (b *Bot) Name() string { return Name }

// Chat implements chatbot.Bot: enrich the query with fetched weather, call
// the model with the preference-aware system instruction, then learn from
// the turn.
func (b *Bot) Chat(ctx context.Context, userID, message string) (*chatbot.Reply, error) {
	start := time.Now()

	summary := b.prefsSummary(ctx, userID)
	enriched, snap, calls := chatbot.EnrichQuery(ctx, b.weather, summary, message)

	resp, err := b.models.GenerateContent(ctx, b.model,
		[]*genai.Content{genai.NewContentFromText(enriched, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(chatbot.Instructions(summary), genai.RoleUser),
		})
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()

	if b.prefs != nil {
		if err := b.prefs.Learn(ctx, userID, message, text); err != nil {
			log.Warnf("gemini bot: learn preferences for user %s: %v", userID, err)
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
		log.Warnf("gemini bot: preference summary for user %s: %v", userID, err)
		return ""
	}
	return summary
}
