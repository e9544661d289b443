package models

import (
	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/chat"
	"github.com/airwise/airwise/internal/forecast"
	"github.com/airwise/airwise/internal/risk"
	"github.com/airwise/airwise/internal/routes"
	"github.com/airwise/airwise/internal/ventilation"
)

// DashboardRequest is the input for a dashboard-style advisory call.
// City overrides the profile's city for this request only.
type DashboardRequest struct {
	Profile       risk.Profile `json:"profile"`
	City          string       `json:"city,omitempty"`
	SymptomFactor float64      `json:"symptomFactor,omitempty"`
}

// DashboardResponse is the composite advisory record.
type DashboardResponse struct {
	Profile        risk.Profile            `json:"profile"`
	AQI            airdata.Measurement     `json:"aqi"`
	Forecast       []forecast.Slot         `json:"forecast"`
	Risk           risk.Result             `json:"risk"`
	ActivityWindow forecast.ActivityWindow `json:"activityWindow"`
	Routes         []routes.Option         `json:"routes"`
	VentAdvice     ventilation.Advice      `json:"ventAdvice"`
}

// ChatRequest is the input for a chat-style call.
type ChatRequest struct {
	Message       string       `json:"message"`
	Profile       risk.Profile `json:"profile"`
	City          string       `json:"city,omitempty"`
	SymptomFactor float64      `json:"symptomFactor,omitempty"`
}

// ChatContext is the advisory context returned alongside a chat reply.
type ChatContext struct {
	Risk           risk.Result             `json:"risk"`
	ActivityWindow forecast.ActivityWindow `json:"activityWindow"`
	AQI            airdata.Measurement     `json:"aqi"`
	VentAdvice     ventilation.Advice      `json:"ventAdvice"`
}

// ChatResponse pairs the dispatcher's reply with the context it was
// rendered from.
type ChatResponse struct {
	Reply   chat.Reply  `json:"reply"`
	Context ChatContext `json:"context"`
}
