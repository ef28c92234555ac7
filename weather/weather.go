//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package weather provides ground-truth weather data used to answer and to
// fact-check chatbot replies. Data comes from the OpenWeatherMap 2.5 API.
package weather

// Snapshot is the weather payload attached to a conversational turn. Exactly
// one of the two shapes is populated: Current for current-conditions lookups,
// Daily for forecast lookups. Consumers must branch on presence; both shapes
// travel under the same field wherever a turn carries weather data.
type Snapshot struct {
	Current *Current `json:"current,omitempty"`
	Daily   []Day    `json:"daily_summaries,omitempty"`

	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// HasCurrent reports whether the snapshot carries current conditions.
func (s *Snapshot) HasCurrent() bool { return s != nil && s.Current != nil }

// HasForecast reports whether the snapshot carries forecast data.
func (s *Snapshot) HasForecast() bool { return s != nil && len(s.Daily) > 0 }

// Current holds observed conditions for a city at one point in time.
type Current struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Temperature   float64 `json:"temperature"` // °C
	FeelsLike     float64 `json:"feels_like"`  // °C
	Humidity      int     `json:"humidity"`    // percent
	Pressure      int     `json:"pressure"`    // hPa
	Description   string  `json:"description"`
	Condition     string  `json:"main_condition"` // lowercase category: rain, clear, clouds, ...
	WindSpeed     float64 `json:"wind_speed"`     // m/s
	WindDirection int     `json:"wind_direction"` // degrees
	Cloudiness    int     `json:"cloudiness"`     // percent
	Visibility    int     `json:"visibility"`     // meters
}

// Day summarizes one forecast day aggregated from the 3-hourly feed.
type Day struct {
	Date                 string  `json:"date"` // YYYY-MM-DD
	MinTemp              float64 `json:"min_temp"`
	MaxTemp              float64 `json:"max_temp"`
	AvgHumidity          float64 `json:"avg_humidity"`
	AvgWindSpeed         float64 `json:"avg_wind_speed"`
	MaxPrecipProbability float64 `json:"max_precipitation_probability"` // percent
	Condition            string  `json:"main_condition"`
	Description          string  `json:"description"`
}
