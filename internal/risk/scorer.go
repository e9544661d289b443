package risk

import (
	"math"

	"github.com/airwise/airwise/internal/airdata"
)

// Factor constants for the adjusted exposure formula.
const (
	sensitivityFactorHigh   = 1.4
	sensitivityFactorMedium = 1.1
	conditionFactor         = 1.3

	// scaleDivisor normalizes adjusted PM2.5 exposure onto 0-100.
	scaleDivisor = 250.0
)

// SensitivityFactor returns the exposure multiplier for a sensitivity
// value. Unknown or unset sensitivities score neutrally.
func SensitivityFactor(s Sensitivity) float64 {
	switch s {
	case SensitivityHigh:
		return sensitivityFactorHigh
	case SensitivityMedium:
		return sensitivityFactorMedium
	default:
		return 1.0
	}
}

// Score computes the risk assessment for a measurement and profile.
// symptomFactor is the self-reported wellbeing multiplier; values at or
// below zero normalize to 1.0. The score is clamped to [0,100].
func Score(m airdata.Measurement, p Profile, symptomFactor float64) Result {
	if symptomFactor <= 0 {
		symptomFactor = FactorGreat
	}

	cond := 1.0
	if len(p.Conditions) > 0 {
		cond = conditionFactor
	}

	adjusted := m.PM25 * SensitivityFactor(p.Sensitivity) * cond * symptomFactor
	score := int(math.Round(clamp(adjusted/scaleDivisor*100, 0, 100)))

	level, advice := levelFor(score)

	return Result{
		Score:        score,
		Level:        level,
		Advice:       advice,
		FeedbackUsed: symptomFactor > FactorGreat,
	}
}

// levelFor buckets a clamped score: [0,30) Low, [30,60) Moderate,
// [60,80) High, [80,100] VeryHigh.
func levelFor(score int) (Level, string) {
	switch {
	case score < 30:
		return LevelLow, "Air quality risk is low for you today. Normal outdoor activity is fine."
	case score < 60:
		return LevelModerate, "Limit prolonged outdoor exertion, especially near heavy traffic."
	case score < 80:
		return LevelHigh, "Avoid outdoor exercise today and wear a well-fitted mask outside."
	default:
		return LevelVeryHigh, "Stay indoors, keep windows closed and seek medical help if breathing worsens."
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
