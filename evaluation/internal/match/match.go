//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package match provides the text-pattern primitives shared by the scoring
// rules: substring probes, keyword counting, temperature extraction and
// lightweight city/day recognition over conversation text.
package match

import (
	"regexp"
	"strconv"
	"strings"
)

// temperaturePatterns extract a numeric temperature claim from a lowercased
// response. First match across the patterns wins.
var temperaturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*°?c`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*degrees?\s*(?:celsius|centigrade)`),
	regexp.MustCompile(`temperature[:\s]+(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*°`),
}

// FindTemperature extracts the first temperature claim from lowercased text.
func FindTemperature(lowerText string) (float64, bool) {
	for _, pattern := range temperaturePatterns {
		m := pattern.FindStringSubmatch(lowerText)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// ConditionKeywords maps each weather condition category to the synonyms a
// response may use for it.
var ConditionKeywords = map[string][]string{
	"rain":         {"rain", "rainy", "drizzle", "shower", "precipitation"},
	"clear":        {"clear", "sunny", "sun", "bright"},
	"clouds":       {"cloud", "cloudy", "overcast", "clouds"},
	"snow":         {"snow", "snowy", "snowing", "snowfall"},
	"mist":         {"mist", "fog", "foggy", "haze"},
	"thunderstorm": {"thunder", "storm", "thunderstorm", "lightning"},
}

// ContainsAny reports whether text contains at least one of the keywords.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// CountMatches returns how many of the keywords occur in text.
func CountMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// FirstIndex returns the earliest index at which any candidate occurs in
// text, or -1 when none occurs. An occurrence at index 0 counts as found.
func FirstIndex(text string, candidates ...string) int {
	best := -1
	for _, cand := range candidates {
		idx := strings.Index(text, cand)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
		}
	}
	return best
}

// cityGazetteer recognizes frequently discussed cities in lowercased text.
var cityGazetteer = regexp.MustCompile(
	`\b(dhaka|helsinki|tampere|stockholm|copenhagen|oslo|reykjavik|oulu|new york|london|paris|tokyo)\b`)

// cityContextPatterns catch "in <word>" and "<word> today/tomorrow/weather"
// shapes. They run case-insensitively over already lowercased text.
var cityContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)in\s+([a-z]+)`),
	regexp.MustCompile(`(?i)([a-z]+)\s+(?:today|tomorrow|weather)`),
}

// ExtractCities returns the lowercase city candidates mentioned in a
// lowercased user message.
func ExtractCities(lowerText string) []string {
	seen := make(map[string]bool)
	var cities []string
	add := func(name string) {
		name = strings.ToLower(name)
		if name != "" && !seen[name] {
			seen[name] = true
			cities = append(cities, name)
		}
	}
	for _, m := range cityGazetteer.FindAllStringSubmatch(lowerText, -1) {
		add(m[1])
	}
	for _, pattern := range cityContextPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lowerText, -1) {
			add(m[1])
		}
	}
	return cities
}

// DayTokens are the day-of-week and relative-date words tracked for context
// retention.
var DayTokens = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"today", "tomorrow",
}

// QueryKeywords splits a query into its lowercase tokens longer than three
// characters, the unit of similarity between queries.
func QueryKeywords(query string) map[string]bool {
	keywords := make(map[string]bool)
	for _, word := range strings.Fields(query) {
		if len(word) > 3 {
			keywords[strings.ToLower(word)] = true
		}
	}
	return keywords
}
