// Package ventilation classifies how well outdoor conditions support
// airing out indoor spaces.
package ventilation

import "github.com/airwise/airwise/internal/airdata"

// Advisory statuses.
const (
	StatusPoor     = "Poor Ventilation"
	StatusGood     = "Good Ventilation"
	StatusModerate = "Moderate Ventilation"
)

// Advice is a three-state ventilation advisory.
type Advice struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Classify maps wind speed and PM2.5 to an advisory. The stagnant-and-dirty
// branch is checked first; the two guard conditions are mutually exclusive
// by construction, but the order is part of the contract.
func Classify(m airdata.Measurement) Advice {
	switch {
	case m.WindSpeed < 5 && m.PM25 > 80:
		return Advice{
			Status:      StatusPoor,
			Description: "Low wind and high PM2.5. Keep windows closed and run an air purifier if you have one.",
		}
	case m.WindSpeed > 15:
		return Advice{
			Status:      StatusGood,
			Description: "Strong winds are dispersing pollutants. A good time to air out your rooms.",
		}
	default:
		return Advice{
			Status:      StatusModerate,
			Description: "Ventilate in short bursts and avoid peak traffic hours.",
		}
	}
}
