//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCity(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"What's the weather in Helsinki?", "Helsinki"},
		{"weather in dhaka please", "Dhaka"},
		{"Is it raining at Stockholm right now?", "Stockholm"},
		{"Paris today", "Paris"},
		{"weather New York", "New York"},
		{"Should I bring an umbrella?", ""},
		{"hello", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractCity(tt.query), tt.query)
	}
}

func TestIsWeatherQuery(t *testing.T) {
	assert.True(t, IsWeatherQuery("What's the weather like?"))
	assert.True(t, IsWeatherQuery("Do I need an umbrella?"))
	assert.True(t, IsWeatherQuery("How windy is it?"))
	assert.False(t, IsWeatherQuery("Tell me a joke"))
	assert.False(t, IsWeatherQuery("What's the capital of Finland?"))
}

func TestIsForecastQuery(t *testing.T) {
	assert.True(t, IsForecastQuery("What's the forecast for tomorrow?"))
	assert.True(t, IsForecastQuery("Will it rain next Friday?"))
	assert.False(t, IsForecastQuery("What's the temperature right now?"))
}

func TestForecastDays(t *testing.T) {
	assert.Equal(t, 2, ForecastDays("weather tomorrow"))
	assert.Equal(t, 5, ForecastDays("forecast for the week"))
}
