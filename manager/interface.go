package manager

import (
	"context"
)

type Weather interface {
	Get(ctx context.Context, lat, long *float64) (Report, error)
}

// Provider fetches the current conditions for a resolved coordinate.
type Provider interface {
	Get(ctx context.Context, coordinate Coordinate) (Sample, error)
}

type Coordinate struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"long" yaml:"long"`
}

// Sample is the provider's "current" block, passed through without unit conversion.
type Sample struct {
	Temperature   float64 // °C
	Humidity      float64 // %
	Precipitation float64 // mm
	WeatherCode   int
}

type Condition struct {
	Text string
	Icon string
}

type Report struct {
	Location      Coordinate `json:"location"`
	Temperature   float64    `json:"temperature"`
	Humidity      float64    `json:"humidity"`
	Rain          float64    `json:"rain"`
	ConditionText string     `json:"condition_text"`
	Icon          string     `json:"icon"`
	UpdatedAt     Timestamp  `json:"updated_at"`
}
