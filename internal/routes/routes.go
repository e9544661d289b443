// Package routes ranks the three fixed commute route variants by
// personalized pollution exposure.
package routes

import (
	"math"

	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/risk"
)

// Route variant IDs. The set is fixed; Rank always returns all three in
// this order.
const (
	IDFastest    = "fastest"
	IDHealthiest = "healthiest"
	IDBalanced   = "balanced"
)

// Option is one ranked route variant.
type Option struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"durationMinutes"`
	ExposureIndex   int    `json:"exposureIndex"`
	Description     string `json:"description"`
	Color           string `json:"color"`
}

// variant is a catalog entry; exposure multipliers keep
// healthiest < balanced < fastest for any positive PM2.5.
type variant struct {
	id          string
	label       string
	minutes     int
	multiplier  float64
	description string
	color       string
}

var catalog = [3]variant{
	{
		id:          IDFastest,
		label:       "Fastest Route",
		minutes:     30,
		multiplier:  1.2,
		description: "Main arterial roads. Shortest travel time but the heaviest traffic exposure.",
		color:       "#ef4444",
	},
	{
		id:          IDHealthiest,
		label:       "Healthiest Route",
		minutes:     42,
		multiplier:  0.65,
		description: "Through parks and side streets, well away from dense traffic.",
		color:       "#22c55e",
	},
	{
		id:          IDBalanced,
		label:       "Balanced Route",
		minutes:     35,
		multiplier:  0.9,
		description: "A compromise between travel time and pollution exposure.",
		color:       "#f59e0b",
	},
}

// Rank produces the three route options with exposure indices computed
// from the snapshot and the user's sensitivity.
func Rank(m airdata.Measurement, p risk.Profile) []Option {
	sens := risk.SensitivityFactor(p.Sensitivity)

	options := make([]Option, 0, len(catalog))
	for _, v := range catalog {
		options = append(options, Option{
			ID:              v.id,
			Label:           v.label,
			DurationMinutes: v.minutes,
			ExposureIndex:   int(math.Round(m.PM25 * sens * v.multiplier)),
			Description:     v.description,
			Color:           v.color,
		})
	}
	return options
}

// Healthiest returns the healthiest option from a ranked list, falling
// back to the first entry if the ID is somehow absent.
func Healthiest(options []Option) Option {
	for _, o := range options {
		if o.ID == IDHealthiest {
			return o
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return Option{}
}
