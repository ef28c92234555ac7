//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package weather

import (
	"regexp"
	"strings"
)

// knownCities maps lowercase names of frequently requested cities to their
// canonical spelling. Capitalized-word extraction below covers the rest.
var knownCities = map[string]string{
	"dhaka":      "Dhaka",
	"helsinki":   "Helsinki",
	"tampere":    "Tampere",
	"stockholm":  "Stockholm",
	"copenhagen": "Copenhagen",
	"oslo":       "Oslo",
	"reykjavik":  "Reykjavik",
	"oulu":       "Oulu",
}

// cityPatterns match "in Paris", "at New York", "Paris today", "weather Paris".
var cityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`in\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`at\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:today|tomorrow|this week|on\s+\w+)`),
	regexp.MustCompile(`weather\s+(?:in\s+|at\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

var weatherQueryKeywords = []string{
	"weather", "temperature", "temp", "humidity", "forecast",
	"rain", "rainy", "sunny", "wind", "windy", "snow", "cloud",
	"umbrella", "jacket", "outdoor", "outdoors", "indoor", "indoors",
	"today", "tomorrow", "week", "sunday", "monday", "tuesday",
	"wednesday", "thursday", "friday", "saturday",
}

var forecastQueryKeywords = []string{
	"tomorrow", "forecast", "week", "sunday", "monday", "tuesday",
	"wednesday", "thursday", "friday", "saturday", "next",
}

// ExtractCity returns the city a query refers to, or "" when none is found.
func ExtractCity(query string) string {
	lowerQuery := strings.ToLower(query)
	for key, name := range knownCities {
		if strings.Contains(lowerQuery, key) {
			return name
		}
	}
	for _, pattern := range cityPatterns {
		match := pattern.FindStringSubmatch(query)
		if match == nil {
			continue
		}
		candidate := match[1]
		if len(strings.Fields(candidate)) <= 3 {
			return candidate
		}
	}
	return ""
}

// IsWeatherQuery reports whether the query is weather-flavored.
func IsWeatherQuery(query string) bool {
	lowerQuery := strings.ToLower(query)
	for _, kw := range weatherQueryKeywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// IsForecastQuery reports whether the query asks about future weather rather
// than current conditions.
func IsForecastQuery(query string) bool {
	lowerQuery := strings.ToLower(query)
	for _, kw := range forecastQueryKeywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// ForecastDays returns how many days of forecast a query implies.
func ForecastDays(query string) int {
	lowerQuery := strings.ToLower(query)
	if strings.Contains(lowerQuery, "tomorrow") {
		return 2
	}
	return 5
}
