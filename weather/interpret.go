//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package weather

import "strings"

// Interpretation carries human-readable insights derived from current
// conditions, used when building prompt context for the bots.
type Interpretation struct {
	Condition           string   `json:"condition"`
	TemperatureCategory string   `json:"temperature_category"`
	HumidityCategory    string   `json:"humidity_category"`
	WindCategory        string   `json:"wind_category"`
	Recommendations     []string `json:"recommendations"`
	OutdoorActivity     string   `json:"outdoor_activity"` // good, caution, not_recommended
}

// Interpret derives categorical insights and gear recommendations from
// current conditions.
func Interpret(cur *Current) *Interpretation {
	if cur == nil {
		return &Interpretation{Condition: "unknown", OutdoorActivity: "unknown"}
	}
	in := &Interpretation{
		Condition:           cur.Condition,
		TemperatureCategory: categorizeTemperature(cur.Temperature),
		HumidityCategory:    categorizeHumidity(float64(cur.Humidity)),
		WindCategory:        categorizeWind(cur.WindSpeed),
	}
	if strings.Contains(cur.Condition, "rain") || strings.Contains(cur.Condition, "drizzle") {
		in.Recommendations = append(in.Recommendations, "umbrella")
	}
	switch {
	case cur.Temperature < 10:
		in.Recommendations = append(in.Recommendations, "warm_jacket")
	case cur.Temperature < 15:
		in.Recommendations = append(in.Recommendations, "light_jacket")
	}
	if cur.WindSpeed > 7 {
		in.Recommendations = append(in.Recommendations, "windy_conditions")
	}
	if cur.Humidity > 70 {
		in.Recommendations = append(in.Recommendations, "high_humidity")
	}
	switch {
	case strings.Contains(cur.Condition, "rain") || strings.Contains(cur.Condition, "storm"):
		in.OutdoorActivity = "not_recommended"
	case cur.Temperature < 5 || cur.Temperature > 35:
		in.OutdoorActivity = "not_recommended"
	case cur.WindSpeed > 10:
		in.OutdoorActivity = "caution"
	default:
		in.OutdoorActivity = "good"
	}
	return in
}

func categorizeTemperature(temp float64) string {
	switch {
	case temp < 0:
		return "freezing"
	case temp < 10:
		return "cold"
	case temp < 20:
		return "cool"
	case temp < 25:
		return "mild"
	case temp < 30:
		return "warm"
	default:
		return "hot"
	}
}

func categorizeHumidity(humidity float64) string {
	switch {
	case humidity < 30:
		return "dry"
	case humidity < 50:
		return "comfortable"
	case humidity < 70:
		return "moderate"
	default:
		return "humid"
	}
}

func categorizeWind(speed float64) string {
	switch {
	case speed < 3:
		return "calm"
	case speed < 7:
		return "light"
	case speed < 12:
		return "moderate"
	default:
		return "strong"
	}
}
