package airdata

import (
	"math"
	"math/rand"
	"strings"
)

// Base readings the mock generator jitters around.
const (
	basePM25 = 80.0
	basePM10 = 120.0
	baseNO2  = 35.0
	baseO3   = 30.0
	baseSO2  = 10.0
	baseCO   = 0.7
)

// delhiMultiplier scales every pollutant for Delhi-area cities.
const delhiMultiplier = 1.4

// Jitter bounds for per-pollutant variation, uniform in [jitterMin, jitterMax).
const (
	jitterMin = 0.85
	jitterMax = 1.15
)

// Generator produces mock measurements. The zero value is not usable;
// construct with NewGenerator or NewGeneratorWithSource.
type Generator struct {
	randFloat func() float64
}

// NewGenerator creates a generator backed by the shared math/rand source.
func NewGenerator() *Generator {
	return &Generator{randFloat: rand.Float64}
}

// NewGeneratorWithSource creates a generator with a caller-owned random
// source, for deterministic output in tests. The source must not be shared
// across goroutines.
func NewGeneratorWithSource(r *rand.Rand) *Generator {
	return &Generator{randFloat: r.Float64}
}

// Generate produces a fresh mock Measurement for the given city.
// An empty or blank city becomes "Unknown" with base-level readings.
func (g *Generator) Generate(city string) Measurement {
	if strings.TrimSpace(city) == "" {
		city = "Unknown"
	}

	mult := 1.0
	if strings.Contains(strings.ToLower(city), "delhi") {
		mult = delhiMultiplier
	}

	return Measurement{
		City:      city,
		PM25:      math.Round(basePM25 * mult * g.jitter()),
		PM10:      math.Round(basePM10 * mult * g.jitter()),
		NO2:       math.Round(baseNO2 * mult * g.jitter()),
		O3:        math.Round(baseO3 * mult * g.jitter()),
		SO2:       math.Round(baseSO2 * mult * g.jitter()),
		CO:        math.Round(baseCO*mult*g.jitter()*100) / 100,
		Temp:      math.Round(24 + g.randFloat()*5),
		WindSpeed: math.Round(3 + g.randFloat()*15),
		Humidity:  math.Round(40 + g.randFloat()*30),
	}
}

func (g *Generator) jitter() float64 {
	return jitterMin + g.randFloat()*(jitterMax-jitterMin)
}
