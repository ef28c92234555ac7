//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// defaultTimeout bounds one API round trip.
const defaultTimeout = 10 * time.Second

// Client fetches current conditions and forecasts from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithAPIKey sets the OpenWeatherMap API key.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a weather client. An API key is required for the real
// endpoint; it may be empty when the base URL points at a stub.
func NewClient(opt ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opt {
		o(c)
	}
	return c
}

// currentPayload mirrors the subset of the /weather response we consume.
type currentPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int `json:"visibility"`
}

// forecastPayload mirrors the subset of the /forecast response we consume.
type forecastPayload struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

// Current fetches current conditions for a city. Temperatures are metric.
func (c *Client) Current(ctx context.Context, city string) (*Snapshot, error) {
	var payload currentPayload
	if err := c.get(ctx, "/weather", city, &payload); err != nil {
		return nil, fmt.Errorf("fetch current weather: %w", err)
	}
	cur := &Current{
		City:          payload.Name,
		Country:       payload.Sys.Country,
		Temperature:   payload.Main.Temp,
		FeelsLike:     payload.Main.FeelsLike,
		Humidity:      payload.Main.Humidity,
		Pressure:      payload.Main.Pressure,
		WindSpeed:     payload.Wind.Speed,
		WindDirection: payload.Wind.Deg,
		Cloudiness:    payload.Clouds.All,
		Visibility:    payload.Visibility,
	}
	if len(payload.Weather) > 0 {
		cur.Description = payload.Weather[0].Description
		cur.Condition = lower(payload.Weather[0].Main)
	}
	return &Snapshot{Current: cur, City: payload.Name, Country: payload.Sys.Country}, nil
}

// Forecast fetches a forecast for a city and aggregates the 3-hourly feed
// into at most days daily summaries: min/max temperature, dominant condition
// and maximum precipitation probability per day.
func (c *Client) Forecast(ctx context.Context, city string, days int) (*Snapshot, error) {
	if days <= 0 {
		days = 5
	}
	var payload forecastPayload
	if err := c.get(ctx, "/forecast", city, &payload); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	type bucket struct {
		temps      []float64
		humidities []int
		winds      []float64
		pops       []float64
		conditions []string
		descr      string
	}
	buckets := make(map[string]*bucket)
	for _, item := range payload.List {
		date := time.Unix(item.Dt, 0).UTC().Format("2006-01-02")
		b := buckets[date]
		if b == nil {
			b = &bucket{}
			buckets[date] = b
		}
		b.temps = append(b.temps, item.Main.Temp)
		b.humidities = append(b.humidities, item.Main.Humidity)
		b.winds = append(b.winds, item.Wind.Speed)
		b.pops = append(b.pops, item.Pop*100)
		if len(item.Weather) > 0 {
			b.conditions = append(b.conditions, lower(item.Weather[0].Main))
			if b.descr == "" {
				b.descr = item.Weather[0].Description
			}
		}
	}
	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[:days]
	}
	daily := make([]Day, 0, len(dates))
	for _, date := range dates {
		b := buckets[date]
		daily = append(daily, Day{
			Date:                 date,
			MinTemp:              minOf(b.temps),
			MaxTemp:              maxOf(b.temps),
			AvgHumidity:          avgInt(b.humidities),
			AvgWindSpeed:         avgFloat(b.winds),
			MaxPrecipProbability: maxOf(b.pops),
			Condition:            dominant(b.conditions),
			Description:          b.descr,
		})
	}
	return &Snapshot{Daily: daily, City: payload.City.Name, Country: payload.City.Country}, nil
}

func (c *Client) get(ctx context.Context, path, city string, out any) error {
	if c.apiKey == "" && c.baseURL == defaultBaseURL {
		return errors.New("missing OpenWeatherMap API key")
	}
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func minOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func avgFloat(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func avgInt(vs []int) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum int
	for _, v := range vs {
		sum += v
	}
	return float64(sum) / float64(len(vs))
}

func lower(s string) string { return strings.ToLower(s) }

// dominant returns the most frequent condition, first-seen winning ties.
func dominant(conditions []string) string {
	counts := make(map[string]int, len(conditions))
	best, bestCount := "", 0
	for _, cond := range conditions {
		counts[cond]++
		if counts[cond] > bestCount {
			best, bestCount = cond, counts[cond]
		}
	}
	return best
}
