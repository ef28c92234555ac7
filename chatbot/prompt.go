//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/wxarena/wxarena/weather"
)

const instructionsTemplate = `You are a Personal Weather Assistant. Your role is to help users with weather-related queries and provide personalized recommendations.

Key capabilities:
1. Answer questions about current weather conditions (temperature, humidity, wind, etc.)
2. Provide weather forecasts for upcoming days
3. Give practical recommendations (umbrella, jacket, outdoor activities)
4. Learn and remember user preferences from conversations

User preferences learned so far: %s

When users ask about weather:
- The weather data will be provided in the query context as [WEATHER DATA] sections
- Use this data to answer questions accurately
- Interpret the data and provide clear, helpful recommendations
- Consider user preferences when making recommendations (shown in [USER PREFERENCES] if available)
- Be conversational and friendly

When providing recommendations:
- Mention specific items (umbrella, jacket, etc.) when relevant
- Suggest indoor/outdoor activities based on weather conditions
- Reference user preferences when they're relevant
- Be practical and actionable
- If weather data shows rain, recommend an umbrella
- If temperature is cold, recommend warm clothing
- If conditions are good, suggest outdoor activities

Always be helpful, clear, and personalized in your responses. Use the weather data provided in the context to give accurate information.`

// Instructions renders the shared system prompt with the user's preference
// summary baked in.
func Instructions(prefsSummary string) string {
	if prefsSummary == "" {
		prefsSummary = "No specific preferences learned yet."
	}
	return fmt.Sprintf(instructionsTemplate, prefsSummary)
}

// EnrichQuery pre-fetches weather for a weather-flavored query and appends
// it to the prompt as a [WEATHER DATA] block, so the model answers from
// ground truth instead of guessing. It returns the enriched query, the
// snapshot fetched (nil when none) and how many fetches were attempted.
// A failed fetch degrades to a note asking the model to answer anyway.
func EnrichQuery(ctx context.Context, fetcher WeatherFetcher, prefsSummary, query string) (string, *weather.Snapshot, int) {
	if fetcher == nil || !weather.IsWeatherQuery(query) {
		return query, nil, 0
	}
	city := weather.ExtractCity(query)
	if city == "" {
		return query, nil, 0
	}

	var (
		snap *weather.Snapshot
		err  error
	)
	if weather.IsForecastQuery(query) {
		snap, err = fetcher.Forecast(ctx, city, weather.ForecastDays(query))
	} else {
		snap, err = fetcher.Current(ctx, city)
	}
	if err != nil {
		note := fmt.Sprintf(
			"\n\n[Note: Could not fetch weather data: %v. Please provide a helpful response anyway.]\n", err)
		return query + note, nil, 1
	}

	var b strings.Builder
	b.WriteString(query)
	fmt.Fprintf(&b, "\n\n[WEATHER DATA FOR %s]\n", strings.ToUpper(city))
	if snap.HasForecast() {
		b.WriteString("Forecast Summary:\n")
		for _, day := range snap.Daily {
			fmt.Fprintf(&b, "- %s: %s, %.1f°C to %.1f°C", day.Date, day.Condition, day.MinTemp, day.MaxTemp)
			if day.MaxPrecipProbability > 30 {
				fmt.Fprintf(&b, ", %.0f%% chance of precipitation", day.MaxPrecipProbability)
			}
			b.WriteString("\n")
		}
	} else if snap.HasCurrent() {
		cur := snap.Current
		interp := weather.Interpret(cur)
		b.WriteString("Current Conditions:\n")
		fmt.Fprintf(&b, "- Temperature: %.1f°C (feels like %.1f°C)\n", cur.Temperature, cur.FeelsLike)
		fmt.Fprintf(&b, "- Condition: %s (%s)\n", cur.Description, cur.Condition)
		fmt.Fprintf(&b, "- Humidity: %d%%\n", cur.Humidity)
		fmt.Fprintf(&b, "- Wind Speed: %.1f m/s\n", cur.WindSpeed)
		if len(interp.Recommendations) > 0 {
			fmt.Fprintf(&b, "- Recommendations: %s\n", strings.Join(interp.Recommendations, ", "))
		}
		fmt.Fprintf(&b, "- Outdoor Activity: %s\n", interp.OutdoorActivity)
	}
	if prefsSummary != "" && !strings.HasPrefix(prefsSummary, "No specific preferences") {
		fmt.Fprintf(&b, "\n[USER PREFERENCES: %s]\n", prefsSummary)
	}
	return b.String(), snap, 1
}
