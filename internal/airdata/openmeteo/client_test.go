package openmeteo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/airdata/openmeteo"
)

func newTestClient(geocodeBody, forecastBody, airQualityBody string, status int) (*openmeteo.Client, func()) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(geocodeBody))
	}))
	fc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(forecastBody))
	}))
	aq := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(airQualityBody))
	}))

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		GeocodingURL:  geo.URL,
		ForecastURL:   fc.URL,
		AirQualityURL: aq.URL,
		Logger:        zerolog.Nop(),
	})

	return client, func() {
		geo.Close()
		fc.Close()
		aq.Close()
	}
}

func TestClient_Geocode(t *testing.T) {
	client, cleanup := newTestClient(
		`{"results":[{"name":"Amsterdam","latitude":52.37,"longitude":4.89,"country":"Netherlands"}]}`,
		`{}`, `{}`, http.StatusOK)
	defer cleanup()

	loc, err := client.Geocode(context.Background(), "Amsterdam")
	require.NoError(t, err)
	require.NotNil(t, loc)

	assert.Equal(t, "Amsterdam", loc.Name)
	assert.InDelta(t, 52.37, loc.Lat, 1e-9)
	assert.InDelta(t, 4.89, loc.Lon, 1e-9)
}

func TestClient_GeocodeNoMatch(t *testing.T) {
	client, cleanup := newTestClient(`{"results":[]}`, `{}`, `{}`, http.StatusOK)
	defer cleanup()

	loc, err := client.Geocode(context.Background(), "Xyzzy")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestClient_FetchWeather(t *testing.T) {
	client, cleanup := newTestClient(`{}`,
		`{"current":{"temperature_2m":11.4,"relative_humidity_2m":81,"wind_speed_10m":22.6}}`,
		`{}`, http.StatusOK)
	defer cleanup()

	w, err := client.FetchWeather(context.Background(), airdata.Location{Lat: 52.37, Lon: 4.89})
	require.NoError(t, err)
	require.NotNil(t, w)

	require.NotNil(t, w.Temp)
	assert.InDelta(t, 11.4, *w.Temp, 1e-9)
	require.NotNil(t, w.Humidity)
	assert.InDelta(t, 81, *w.Humidity, 1e-9)
	require.NotNil(t, w.WindSpeed)
	assert.InDelta(t, 22.6, *w.WindSpeed, 1e-9)
}

func TestClient_FetchWeatherMissingFields(t *testing.T) {
	client, cleanup := newTestClient(`{}`,
		`{"current":{"temperature_2m":11.4}}`,
		`{}`, http.StatusOK)
	defer cleanup()

	w, err := client.FetchWeather(context.Background(), airdata.Location{})
	require.NoError(t, err)

	assert.NotNil(t, w.Temp)
	assert.Nil(t, w.WindSpeed)
	assert.Nil(t, w.Humidity)
}

func TestClient_FetchPollutants(t *testing.T) {
	client, cleanup := newTestClient(`{}`, `{}`,
		`{"current":{"pm2_5":17.2,"pm10":29.8}}`, http.StatusOK)
	defer cleanup()

	p, err := client.FetchPollutants(context.Background(), airdata.Location{})
	require.NoError(t, err)

	require.NotNil(t, p.PM25)
	assert.InDelta(t, 17.2, *p.PM25, 1e-9)
	require.NotNil(t, p.PM10)
	assert.InDelta(t, 29.8, *p.PM10, 1e-9)
}

func TestClient_ErrorStatus(t *testing.T) {
	client, cleanup := newTestClient(`{}`, `{}`, `{}`, http.StatusTooManyRequests)
	defer cleanup()

	_, err := client.Geocode(context.Background(), "Amsterdam")
	assert.Error(t, err)
}
