// Package risk computes a personalized air quality risk score from a
// measurement, a user profile and self-reported wellbeing.
package risk

// Sensitivity is a user's self-declared sensitivity to air pollution.
type Sensitivity string

// Known sensitivity values. Anything else scores like SensitivityLow.
const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// Profile is the caller-owned user record. It is read-only input to
// scoring; malformed fields degrade to defaults rather than failing.
type Profile struct {
	Name        string      `json:"name"`
	City        string      `json:"city"`
	Sensitivity Sensitivity `json:"sensitivity"`
	Conditions  []string    `json:"conditions"`
}

// Level buckets the 0-100 score.
type Level string

// Risk levels, by score thresholds 30/60/80.
const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
	LevelVeryHigh Level = "VeryHigh"
)

// Result is the derived risk assessment. It is recomputed on every call
// and never cached.
type Result struct {
	Score        int    `json:"score"`
	Level        Level  `json:"level"`
	Advice       string `json:"advice"`
	FeedbackUsed bool   `json:"feedbackUsed"`
}

// Symptom factors from self-reported wellbeing.
const (
	FactorGreat      = 1.0
	FactorMild       = 1.25
	FactorBreathless = 1.5
)

// FactorForWellbeing maps a wellbeing tag to its symptom factor.
// Unknown tags normalize to FactorGreat.
func FactorForWellbeing(wellbeing string) float64 {
	switch wellbeing {
	case "mild":
		return FactorMild
	case "breathless":
		return FactorBreathless
	default:
		return FactorGreat
	}
}
