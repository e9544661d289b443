// Package airdata produces point-in-time air quality snapshots for a city.
package airdata

// Measurement is an immutable snapshot of pollutant and weather readings
// for a single city. Concentrations are in µg/m³ except CO (mg/m³);
// temperature is °C, wind speed km/h, humidity percent.
type Measurement struct {
	City      string  `json:"city"`
	PM25      float64 `json:"pm25"`
	PM10      float64 `json:"pm10"`
	NO2       float64 `json:"no2"`
	O3        float64 `json:"o3"`
	SO2       float64 `json:"so2"`
	CO        float64 `json:"co"`
	Temp      float64 `json:"temp"`
	WindSpeed float64 `json:"windSpeed"`
	Humidity  float64 `json:"humidity"`
}

// Location is a geocoded city.
type Location struct {
	Lat  float64
	Lon  float64
	Name string
}

// WeatherReading holds live weather values. Nil fields were not reported
// by the provider and keep their mock values.
type WeatherReading struct {
	Temp      *float64
	WindSpeed *float64
	Humidity  *float64
}

// PollutantReading holds live particulate values. Nil fields were not
// reported by the provider and keep their mock values.
type PollutantReading struct {
	PM25 *float64
	PM10 *float64
}
