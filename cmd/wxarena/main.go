//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Command wxarena serves the weather-chatbot comparison arena: every chat
// turn is answered by an OpenAI-backed bot and a Gemini-backed bot, and both
// replies are scored by the evaluation engine.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/wxarena/wxarena/arena"
	"github.com/wxarena/wxarena/chatbot"
	"github.com/wxarena/wxarena/chatbot/geminibot"
	"github.com/wxarena/wxarena/chatbot/openaibot"
	"github.com/wxarena/wxarena/log"
	"github.com/wxarena/wxarena/preference"
	"github.com/wxarena/wxarena/server"
	"github.com/wxarena/wxarena/weather"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	if err := run(cfg); err != nil {
		log.Fatalf("wxarena: %v", err)
	}
}

func run(cfg config) error {
	var wx chatbot.WeatherFetcher
	if cfg.OpenWeather.APIKey != "" {
		wx = weather.NewClient(weather.WithAPIKey(cfg.OpenWeather.APIKey))
	} else {
		log.Warn("no OpenWeather API key configured, bots will answer without live weather")
	}

	openaiPrefs, err := preference.NewFileStore(
		filepath.Join(cfg.PreferenceDir, "openai"), preference.SchemaService)
	if err != nil {
		return err
	}
	geminiPrefs, err := preference.NewFileStore(
		filepath.Join(cfg.PreferenceDir, "gemini"), preference.SchemaAssistant)
	if err != nil {
		return err
	}

	entrants := []arena.Entrant{
		{
			Framework: openaibot.Name,
			Prefs:     openaiPrefs,
			Build: func(ctx context.Context, userID string) (chatbot.Bot, error) {
				return openaibot.New(cfg.OpenAI.APIKey,
					openaibot.WithModel(cfg.OpenAI.Model),
					openaibot.WithWeather(wx),
					openaibot.WithPreferences(openaiPrefs)), nil
			},
		},
		{
			Framework: geminibot.Name,
			Prefs:     geminiPrefs,
			Build: func(ctx context.Context, userID string) (chatbot.Bot, error) {
				return geminibot.New(ctx, cfg.Gemini.APIKey,
					geminibot.WithModel(cfg.Gemini.Model),
					geminibot.WithWeather(wx),
					geminibot.WithPreferences(geminiPrefs))
			},
		},
	}

	opts := []arena.Option{}
	if cfg.HistoryLimit > 0 {
		opts = append(opts, arena.WithHistoryLimit(cfg.HistoryLimit))
	}
	a, err := arena.New(entrants, opts...)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(a).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("wxarena listening on %s", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.Infof("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
