package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/api"
	"github.com/airwise/airwise/internal/api/models"
	"github.com/airwise/airwise/internal/risk"
	"github.com/airwise/airwise/internal/routes"
)

func testRouter() http.Handler {
	airData := airdata.NewService(airdata.ServiceConfig{
		Logger: zerolog.Nop(),
	})

	return api.NewRouter(api.RouterConfig{
		Version:   "test",
		BuildTime: "test",
		Logger:    zerolog.Nop(),
		AirData:   airData,
	})
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var health models.Health
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_Dashboard(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/v1/dashboard", models.DashboardRequest{
		Profile: risk.Profile{
			Name:        "Sam",
			City:        "Delhi",
			Sensitivity: risk.SensitivityHigh,
			Conditions:  []string{"asthma"},
		},
		SymptomFactor: risk.FactorMild,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "Delhi", resp.AQI.City)
	assert.GreaterOrEqual(t, resp.Risk.Score, 0)
	assert.LessOrEqual(t, resp.Risk.Score, 100)
	assert.True(t, resp.Risk.FeedbackUsed)
	assert.Len(t, resp.Forecast, 6)
	require.Len(t, resp.Routes, 3)
	assert.Equal(t, routes.IDFastest, resp.Routes[0].ID)
	assert.NotEmpty(t, resp.ActivityWindow.WindowLabel)
	assert.NotEmpty(t, resp.VentAdvice.Status)
}

func TestRouter_DashboardCityOverride(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/v1/dashboard", models.DashboardRequest{
		Profile: risk.Profile{City: "Amsterdam"},
		City:    "Mumbai",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Mumbai", resp.AQI.City)
}

func TestRouter_DashboardEmptyProfileDegrades(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/v1/dashboard", struct{}{})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Unknown", resp.AQI.City)
	assert.Len(t, resp.Routes, 3)
}

func TestRouter_DashboardInvalidJSON(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/dashboard", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, models.ProblemTypeValidation, problem.Type)
	assert.Equal(t, "/v1/dashboard", problem.Instance)
}

func TestRouter_Chat(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/v1/chat", models.ChatRequest{
		Message: "I have a cough",
		Profile: risk.Profile{City: "Kolkata", Sensitivity: risk.SensitivityMedium},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Contains(t, resp.Reply.Text, "steam inhalation")
	assert.Equal(t, "Kolkata", resp.Context.AQI.City)
	assert.NotEmpty(t, resp.Context.VentAdvice.Status)
	assert.NotEmpty(t, resp.Context.ActivityWindow.WindowLabel)
}

func TestRouter_ChatMapReply(t *testing.T) {
	router := testRouter()

	rec := postJSON(t, router, "/v1/chat", models.ChatRequest{
		Message: "show me the map",
		Profile: risk.Profile{City: "Amsterdam"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "map", string(resp.Reply.Type))
	assert.Len(t, resp.Reply.Data, 3)
}

func TestRouter_UnsupportedContentType(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader([]byte("message=hi")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
