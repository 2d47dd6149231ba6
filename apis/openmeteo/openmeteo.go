package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"agroweather/manager"
)

const (
	apiName        = "api.open-meteo.com"
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	currentFields = "temperature_2m,relative_humidity_2m,precipitation,weather_code"
)

var ErrNoCurrent = errors.New("open-meteo: response has no current block")

// StatusError is returned for any non-200 answer from the forecast endpoint.
type StatusError struct {
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status code %d: %s", apiName, e.StatusCode, e.Reason)
}

func New(baseURL string) *openMeteo {
	return NewWithClient(resty.New(), baseURL)
}

func NewWithClient(client *resty.Client, baseURL string) *openMeteo {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &openMeteo{
		client:  client,
		baseURL: baseURL,
	}
}

type openMeteo struct {
	client  *resty.Client
	baseURL string
}

// Get performs exactly one request; retries are left at resty's default of zero.
func (o openMeteo) Get(ctx context.Context, coordinate manager.Coordinate) (manager.Sample, error) {
	params := map[string]string{
		"latitude":  formatFloat(coordinate.Latitude),
		"longitude": formatFloat(coordinate.Longitude),
		"current":   currentFields,
		"timezone":  "auto",
	}

	return processRequest(ctx, o.client, o.baseURL, params)
}

func processRequest(ctx context.Context, client *resty.Client, path string, params map[string]string) (manager.Sample, error) {
	request := client.R().SetContext(ctx)
	request.SetQueryParams(params)

	response, err := request.Get(path)
	if err != nil {
		return manager.Sample{}, err
	}

	if response.StatusCode() != 200 {
		return manager.Sample{}, &StatusError{
			StatusCode: response.StatusCode(),
			Reason:     reason(response.Body()),
		}
	}

	var c current
	if err := c.unmarshal(response.Body()); err != nil {
		return manager.Sample{}, err
	}

	return c.Sample(), nil
}

type current struct {
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
}

func (c *current) Sample() manager.Sample {
	return manager.Sample{
		Temperature:   c.Temperature,
		Humidity:      c.Humidity,
		Precipitation: c.Precipitation,
		WeatherCode:   c.WeatherCode,
	}
}

func (c *current) unmarshal(data []byte) error {
	type result struct {
		Current *current `json:"current"`
	}

	var r result

	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("%s: decode response: %w", apiName, err)
	}

	if r.Current == nil {
		return ErrNoCurrent
	}

	*c = *r.Current

	return nil
}

// reason extracts Open-Meteo's {"error":true,"reason":"..."} message, or the raw body.
func reason(body []byte) string {
	var r struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &r); err == nil && r.Reason != "" {
		return r.Reason
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return "empty response"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
