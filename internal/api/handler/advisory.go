// Package handler provides HTTP handlers for the AirWise API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/api/models"
	"github.com/airwise/airwise/internal/api/response"
	"github.com/airwise/airwise/internal/chat"
	"github.com/airwise/airwise/internal/forecast"
	"github.com/airwise/airwise/internal/risk"
	"github.com/airwise/airwise/internal/routes"
	"github.com/airwise/airwise/internal/ventilation"
)

// AdvisoryHandler handles the dashboard and chat endpoints.
type AdvisoryHandler struct {
	airData *airdata.Service
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(airData *airdata.Service) *AdvisoryHandler {
	return &AdvisoryHandler{airData: airData}
}

// pipeline holds one request's worth of computed advisory outputs.
type pipeline struct {
	measurement airdata.Measurement
	riskResult  risk.Result
	slots       []forecast.Slot
	window      forecast.ActivityWindow
	options     []routes.Option
	ventAdvice  ventilation.Advice
}

// run executes the full advisory computation for one request. The city
// override wins over the profile's city; both may be empty.
func (h *AdvisoryHandler) run(r *http.Request, profile risk.Profile, city string, symptomFactor float64) pipeline {
	if city == "" {
		city = profile.City
	}

	m := h.airData.Snapshot(r.Context(), city)
	slots := forecast.Hourly(m)

	return pipeline{
		measurement: m,
		riskResult:  risk.Score(m, profile, symptomFactor),
		slots:       slots,
		window:      forecast.SelectWindow(slots),
		options:     routes.Rank(m, profile),
		ventAdvice:  ventilation.Classify(m),
	}
}

// Dashboard handles POST /v1/dashboard - the composite advisory record.
func (h *AdvisoryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var input models.DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	p := h.run(r, input.Profile, input.City, input.SymptomFactor)

	response.JSON(w, r, http.StatusOK, models.DashboardResponse{
		Profile:        input.Profile,
		AQI:            p.measurement,
		Forecast:       p.slots,
		Risk:           p.riskResult,
		ActivityWindow: p.window,
		Routes:         p.options,
		VentAdvice:     p.ventAdvice,
	})
}

// Chat handles POST /v1/chat - free-text advisory replies.
func (h *AdvisoryHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	p := h.run(r, input.Profile, input.City, input.SymptomFactor)

	reply := chat.Dispatch(input.Message, chat.Context{
		Measurement: p.measurement,
		Risk:        p.riskResult,
		Window:      p.window,
		Routes:      p.options,
		Ventilation: p.ventAdvice,
	})

	response.JSON(w, r, http.StatusOK, models.ChatResponse{
		Reply: reply,
		Context: models.ChatContext{
			Risk:           p.riskResult,
			ActivityWindow: p.window,
			AQI:            p.measurement,
			VentAdvice:     p.ventAdvice,
		},
	})
}
