package manager

import (
	"context"
	"errors"
	"time"
)

var ErrNoProvider = errors.New("weather provider not configured")

func New(provider Provider) *weather {
	return &weather{
		provider: provider,
		defaults: DefaultCoordinate,
		language: English,
		now:      time.Now,
	}
}

type weather struct {
	provider Provider
	defaults Coordinate
	language Language
	now      func() time.Time
}

// Get resolves the coordinate, makes exactly one provider call and composes the report.
// Any provider error is returned unchanged and no partial report is built.
func (w *weather) Get(ctx context.Context, lat, long *float64) (Report, error) {
	if w.provider == nil {
		return Report{}, ErrNoProvider
	}

	location := Resolve(lat, long, w.defaults)

	sample, err := w.provider.Get(ctx, location)
	if err != nil {
		return Report{}, err
	}

	condition := ClassifyIn(w.language, sample.WeatherCode)

	return Report{
		Location:      location,
		Temperature:   sample.Temperature,
		Humidity:      sample.Humidity,
		Rain:          sample.Precipitation,
		ConditionText: condition.Text,
		Icon:          condition.Icon,
		UpdatedAt:     Timestamp(w.now()),
	}, nil
}

func (w *weather) SetDefaults(defaults Coordinate) {
	w.defaults = defaults
}

func (w *weather) SetLanguage(language Language) {
	w.language = language
}
