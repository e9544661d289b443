package chat_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/chat"
	"github.com/airwise/airwise/internal/forecast"
	"github.com/airwise/airwise/internal/risk"
	"github.com/airwise/airwise/internal/routes"
	"github.com/airwise/airwise/internal/ventilation"
)

// testContext builds a full pipeline context from a fixed measurement.
func testContext() chat.Context {
	m := airdata.Measurement{
		City: "Amsterdam", PM25: 100, PM10: 150,
		Temp: 25, WindSpeed: 10, Humidity: 55,
	}
	profile := risk.Profile{Name: "Sam", City: "Amsterdam", Sensitivity: risk.SensitivityMedium}
	slots := forecast.Hourly(m)

	return chat.Context{
		Measurement: m,
		Risk:        risk.Score(m, profile, risk.FactorGreat),
		Window:      forecast.SelectWindow(slots),
		Routes:      routes.Rank(m, profile),
		Ventilation: ventilation.Classify(m),
	}
}

func TestDispatch_RouteQuery(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("Kolkata to Delhi", ctx)
	assert.Equal(t, chat.TypeText, reply.Type)
	assert.Contains(t, reply.Text, "Dhanbad")

	reply = chat.Dispatch("from Delhi to Kolkata", ctx)
	assert.Contains(t, reply.Text, "Dhanbad")

	reply = chat.Dispatch("mumbai to pune", ctx)
	assert.Contains(t, reply.Text, "Mumbai")
	assert.Contains(t, reply.Text, "Pune")
	assert.Contains(t, reply.Text, "highway network")
}

func TestDispatch_RouteQuerySkipsOfficeAndHome(t *testing.T) {
	ctx := testContext()

	// "office to home" looks like a route query but belongs to the
	// route keyword rule, which answers with the attached route list.
	reply := chat.Dispatch("office to home", ctx)
	assert.Equal(t, chat.TypeMap, reply.Type)
	require.Len(t, reply.Data, 3)
}

func TestDispatch_Symptoms(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		message  string
		fragment string
	}{
		{"I have a cough", "steam inhalation"},
		{"my throat hurts", "steam inhalation"},
		{"I think I have a fever", string(ctx.Risk.Level)},
		{"terrible headache today", string(ctx.Risk.Level)},
		{"my asthma is acting up", fmt.Sprintf("%d", ctx.Risk.Score)},
		{"I am short of breath", fmt.Sprintf("%d", ctx.Risk.Score)},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			reply := chat.Dispatch(tt.message, ctx)
			assert.Equal(t, chat.TypeText, reply.Type)
			assert.Contains(t, reply.Text, tt.fragment)
		})
	}
}

func TestDispatch_WeatherCurrentCity(t *testing.T) {
	ctx := testContext()

	for _, msg := range []string{
		"what's the weather like",
		"weather in Amsterdam please",
		"will it be sunny",
	} {
		reply := chat.Dispatch(msg, ctx)
		assert.Contains(t, reply.Text, "Amsterdam", "message %q", msg)
		assert.Contains(t, reply.Text, "25", "message %q", msg)
		assert.Contains(t, reply.Text, "55", "message %q", msg)
	}
}

func TestDispatch_WeatherOtherCity(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("what's the weather in Mumbai", ctx)
	assert.Contains(t, reply.Text, "Mumbai")
	assert.Contains(t, reply.Text, "23") // current temp minus 2
	assert.Contains(t, reply.Text, "cloudy")
}

func TestDispatch_KnowledgeBase(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("should I wear a mask", ctx)
	assert.Contains(t, reply.Text, fmt.Sprintf("%d", ctx.Risk.Score))
	assert.Contains(t, reply.Text, string(ctx.Risk.Level))
	assert.NotContains(t, reply.Text, "{{", "placeholders must be substituted")

	reply = chat.Dispatch("what is pm2.5 exactly", ctx)
	assert.Contains(t, reply.Text, ctx.Window.WindowLabel)
	assert.NotContains(t, reply.Text, "{{")
}

func TestDispatch_KBExerciseEntryBeatsExerciseRule(t *testing.T) {
	ctx := testContext()

	// "exercise" appears both in a knowledge-base entry and in the
	// generic exercise rule; the KB entry is earlier in the table.
	reply := chat.Dispatch("any exercise advice", ctx)
	assert.Contains(t, reply.Text, "indoor workouts")
}

func TestDispatch_RouteKeyword(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("show me the commute options", ctx)
	assert.Equal(t, chat.TypeMap, reply.Type)
	require.Len(t, reply.Data, 3)
	assert.Contains(t, reply.Text, "Healthiest Route")
}

func TestDispatch_Ventilation(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("should I open the window", ctx)
	assert.Contains(t, reply.Text, ctx.Ventilation.Status)
	assert.Contains(t, reply.Text, ctx.Ventilation.Description)
}

func TestDispatch_Exercise(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("can I go for a jog", ctx)
	assert.Contains(t, reply.Text, ctx.Window.WindowLabel)
	assert.Contains(t, reply.Text, fmt.Sprintf("%d", ctx.Risk.Score))
}

func TestDispatch_Greeting(t *testing.T) {
	ctx := testContext()

	reply := chat.Dispatch("hey there", ctx)
	assert.True(t, strings.HasPrefix(reply.Text, "Hello"))

	// "hi" must match as a word, not inside other words.
	reply = chat.Dispatch("xyzzy thinking nonsense", ctx)
	assert.Contains(t, reply.Text, "I'm focused on")
}

func TestDispatch_Fallback(t *testing.T) {
	ctx := testContext()

	for _, msg := range []string{"xyzzy nonsense", ""} {
		reply := chat.Dispatch(msg, ctx)
		assert.Equal(t, chat.TypeText, reply.Type)
		assert.Contains(t, reply.Text, "I'm focused on", "message %q", msg)
		assert.Contains(t, reply.Text, fmt.Sprintf("%d", ctx.Risk.Score), "message %q", msg)
	}
}

func TestDispatch_Idempotent(t *testing.T) {
	ctx := testContext()

	assert.Equal(t, chat.Dispatch("I have a cough", ctx), chat.Dispatch("I have a cough", ctx))
}
