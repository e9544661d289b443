package airdata

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Provider defines the interface for live air data sources.
type Provider interface {
	// Geocode resolves a city name to coordinates. A nil Location with a
	// nil error means the city is unknown to the provider.
	Geocode(ctx context.Context, city string) (*Location, error)

	// FetchWeather fetches current weather for a location.
	FetchWeather(ctx context.Context, loc Location) (*WeatherReading, error)

	// FetchPollutants fetches the latest particulate readings for a location.
	FetchPollutants(ctx context.Context, loc Location) (*PollutantReading, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the air data service.
type ServiceConfig struct {
	// Provider is the live data source. Nil means mock-only operation.
	Provider Provider

	// Generator produces the mock baseline. Defaults to NewGenerator().
	Generator *Generator

	// Logger for service operations.
	Logger zerolog.Logger

	// CallTimeout bounds each outbound provider call (default: 3 seconds).
	CallTimeout time.Duration
}

// Service produces Measurements, overlaying live provider data on a mock
// baseline. Provider failures are swallowed field-by-field so a snapshot
// is always complete.
type Service struct {
	provider    Provider
	generator   *Generator
	logger      zerolog.Logger
	callTimeout time.Duration
}

// NewService creates a new air data service.
func NewService(cfg ServiceConfig) *Service {
	gen := cfg.Generator
	if gen == nil {
		gen = NewGenerator()
	}

	callTimeout := cfg.CallTimeout
	if callTimeout == 0 {
		callTimeout = 3 * time.Second
	}

	return &Service{
		provider:    cfg.Provider,
		generator:   gen,
		logger:      cfg.Logger,
		callTimeout: callTimeout,
	}
}

// Snapshot returns a complete Measurement for the city. With no provider
// configured it is purely mock data; with a provider, live values replace
// the mock ones wherever a fetch succeeds and the field is present.
// Snapshot never returns an error.
func (s *Service) Snapshot(ctx context.Context, city string) Measurement {
	m := s.generator.Generate(city)
	if s.provider == nil {
		return m
	}

	loc := s.geocode(ctx, m.City)
	if loc == nil {
		return m
	}

	if w := s.fetchWeather(ctx, *loc); w != nil {
		if w.Temp != nil {
			m.Temp = math.Round(*w.Temp)
		}
		if w.WindSpeed != nil {
			m.WindSpeed = math.Round(*w.WindSpeed)
		}
		if w.Humidity != nil {
			m.Humidity = math.Round(*w.Humidity)
		}
	}

	if p := s.fetchPollutants(ctx, *loc); p != nil {
		if p.PM25 != nil {
			m.PM25 = math.Round(*p.PM25)
		}
		if p.PM10 != nil {
			m.PM10 = math.Round(*p.PM10)
		}
	}

	return m
}

func (s *Service) geocode(ctx context.Context, city string) *Location {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	loc, err := s.provider.Geocode(ctx, city)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("city", city).
			Str("provider", s.provider.Name()).
			Msg("geocode failed, using mock readings")
		return nil
	}
	if loc == nil {
		s.logger.Debug().
			Str("city", city).
			Msg("city not known to provider, using mock readings")
	}
	return loc
}

func (s *Service) fetchWeather(ctx context.Context, loc Location) *WeatherReading {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	w, err := s.provider.FetchWeather(ctx, loc)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("city", loc.Name).
			Str("provider", s.provider.Name()).
			Msg("weather fetch failed, keeping mock weather")
		return nil
	}
	return w
}

func (s *Service) fetchPollutants(ctx context.Context, loc Location) *PollutantReading {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	p, err := s.provider.FetchPollutants(ctx, loc)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("city", loc.Name).
			Str("provider", s.provider.Name()).
			Msg("pollutant fetch failed, keeping mock particulates")
		return nil
	}
	return p
}
