//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the YAML configuration of the wxarena binary. Every secret can
// also come from the environment, which takes precedence over the file.
type config struct {
	ListenAddr    string `yaml:"listen_addr"`
	LogLevel      string `yaml:"log_level"`
	PreferenceDir string `yaml:"preference_dir"`
	HistoryLimit  int    `yaml:"history_limit"`

	OpenWeather struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"openweather"`

	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`

	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
}

func defaultConfig() config {
	var c config
	c.ListenAddr = ":8080"
	c.LogLevel = "info"
	c.PreferenceDir = "preferences"
	return c
}

// loadConfig reads the YAML file when path is non-empty, then applies
// environment overrides. A missing file with an empty path is not an error;
// the binary can run entirely from the environment.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	overrideEnv(&c.ListenAddr, "WXARENA_LISTEN_ADDR")
	overrideEnv(&c.LogLevel, "WXARENA_LOG_LEVEL")
	overrideEnv(&c.PreferenceDir, "WXARENA_PREFERENCE_DIR")
	overrideEnv(&c.OpenWeather.APIKey, "OPENWEATHER_API_KEY")
	overrideEnv(&c.OpenAI.APIKey, "OPENAI_API_KEY")
	overrideEnv(&c.OpenAI.Model, "OPENAI_MODEL")
	overrideEnv(&c.Gemini.APIKey, "GOOGLE_API_KEY")
	overrideEnv(&c.Gemini.Model, "GEMINI_MODEL")
	return c, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
