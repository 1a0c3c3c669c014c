package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fulano-assistant/internal/agent"
	pkgLog "fulano-assistant/pkg/log"
)

// WeatherTool reads current conditions from OpenWeather.
type WeatherTool struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	defaultCity string
	timeout     time.Duration
	l           pkgLog.Logger
}

func NewWeatherTool(client *http.Client, baseURL, apiKey, city string, timeout time.Duration, l pkgLog.Logger) *WeatherTool {
	if city == "" {
		city = defaultCity
	}
	return &WeatherTool{
		client:      client,
		baseURL:     baseURL,
		apiKey:      apiKey,
		defaultCity: city,
		timeout:     timeout,
		l:           l,
	}
}

func (t *WeatherTool) Name() agent.ToolName {
	return NameWeather
}

func (t *WeatherTool) Description() string {
	return "Consulta el clima actual (temperatura en °C y descripción) de una ciudad."
}

func (t *WeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City name, e.g. 'Medellín'. Defaults to Bogotá",
			},
		},
	}
}

func (t *WeatherTool) Timeout() time.Duration {
	return t.timeout
}

type WeatherInput struct {
	City string `json:"city"`
}

type weatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (t *WeatherTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	if t.apiKey == "" {
		return nil, fmt.Errorf("%w: OpenWeather", ErrMissingAPIKey)
	}

	var input WeatherInput
	if err := agent.DecodeArgs(params, &input); err != nil {
		return nil, err
	}
	city := input.City
	if city == "" {
		city = t.defaultCity
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", t.apiKey)
	query.Set("lang", "es")
	query.Set("units", "metric")

	var resp weatherResponse
	if err := getJSON(ctx, t.client, "openweather", t.baseURL, query, &resp); err != nil {
		t.l.Warnf(ctx, "%s: city=%s: %v", LogPrefixWeather, city, err)
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("city %q %w", city, ErrNotFound)
		}
		return nil, err
	}

	description := ""
	if len(resp.Weather) > 0 {
		description = resp.Weather[0].Description
	}
	name := resp.Name
	if name == "" {
		name = city
	}

	return map[string]interface{}{
		"city":          name,
		"temperature_c": resp.Main.Temp,
		"humidity":      resp.Main.Humidity,
		"description":   description,
	}, nil
}

var _ agent.Tool = (*WeatherTool)(nil)
