package chat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/airwise/airwise/internal/routes"
)

// Matching patterns for the rule table.
var (
	routeQueryRe = regexp.MustCompile(`(?i)(?:from\s+)?([a-z]+)\s+to\s+([a-z]+)`)
	inCityRe     = regexp.MustCompile(`(?i)\bin\s+([a-z]+)`)
	greetingRe   = regexp.MustCompile(`(?i)\b(hello|hi|hey)\b`)
)

// rule is one entry of the prioritized dispatch table. Rules are
// evaluated strictly in slice order; the first match wins. The ordering
// is load-bearing: symptom and knowledge-base rules must run before the
// generic exercise rule, and the route query before the route keyword.
type rule struct {
	name   string
	match  func(lowerMsg string) bool
	handle func(msg, lowerMsg string, ctx Context) Reply
}

var rules = []rule{
	{
		name: "route-query",
		match: func(m string) bool {
			return routeQueryRe.MatchString(m) &&
				!strings.Contains(m, "office") &&
				!strings.Contains(m, "home")
		},
		handle: handleRouteQuery,
	},
	{
		name:   "symptom-fever",
		match:  containsAny("fever", "high temperature"),
		handle: handleFever,
	},
	{
		name:   "symptom-cough",
		match:  containsAny("cough", "cold", "throat"),
		handle: handleCough,
	},
	{
		name:   "symptom-headache",
		match:  containsAny("headache"),
		handle: handleHeadache,
	},
	{
		name:   "symptom-breathing",
		match:  containsAny("asthma", "breath"),
		handle: handleBreathing,
	},
	{
		name:   "weather",
		match:  containsAny("weather", "rain", "sunny"),
		handle: handleWeather,
	},
	{
		name:   "knowledge-base",
		match:  kbMatches,
		handle: handleKB,
	},
	{
		name:   "route-keyword",
		match:  containsAny("route", "map", "commute", "office"),
		handle: handleRouteKeyword,
	},
	{
		name:   "ventilation",
		match:  containsAny("ventilation", "window", "air"),
		handle: handleVentilation,
	},
	{
		name:   "exercise",
		match:  containsAny("run", "jog", "exercise"),
		handle: handleExercise,
	},
	{
		name:   "greeting",
		match:  greetingRe.MatchString,
		handle: handleGreeting,
	},
	{
		name:   "fallback",
		match:  func(string) bool { return true },
		handle: handleFallback,
	},
}

// Dispatch answers a free-text message from the pipeline outputs in ctx.
// Every input, including the empty string, produces a reply; the fallback
// rule is unconditional.
func Dispatch(message string, ctx Context) Reply {
	lowerMsg := strings.ToLower(message)
	for _, r := range rules {
		if r.match(lowerMsg) {
			return r.handle(message, lowerMsg, ctx)
		}
	}
	// Unreachable: the fallback rule always matches.
	return handleFallback(message, lowerMsg, ctx)
}

// containsAny builds a predicate matching any of the keywords as a
// case-insensitive substring.
func containsAny(keywords ...string) func(string) bool {
	return func(lowerMsg string) bool {
		for _, kw := range keywords {
			if strings.Contains(lowerMsg, kw) {
				return true
			}
		}
		return false
	}
}

// kbMatches reports whether any knowledge-base entry matches.
func kbMatches(lowerMsg string) bool {
	for _, entry := range knowledgeBase {
		for _, kw := range entry.keywords {
			if strings.Contains(lowerMsg, kw) {
				return true
			}
		}
	}
	return false
}

func handleRouteQuery(_, lowerMsg string, _ Context) Reply {
	m := routeQueryRe.FindStringSubmatch(lowerMsg)
	from, to := m[1], m[2]

	if (from == "kolkata" && to == "delhi") || (from == "delhi" && to == "kolkata") {
		return text("Kolkata to Delhi: take NH19 (the Grand Trunk Road) via Dhanbad, Varanasi, Kanpur and Agra. " +
			"Roughly 1,500 km; plan two overnight halts and avoid driving after dark on the Varanasi stretch.")
	}

	return text(fmt.Sprintf(
		"For %s to %s, use the highway network connecting the two cities and check live traffic before you leave.",
		capitalize(from), capitalize(to)))
}

func handleFever(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf(
		"A fever usually is not caused by air pollution, but today's PM2.5 of %.0f can make you feel worse. "+
			"Your risk level is %s. Rest, hydrate, and see a doctor if it lasts more than two days.",
		ctx.Measurement.PM25, ctx.Risk.Level))
}

func handleCough(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf(
		"For a cough or irritated throat, warm fluids and steam inhalation help. "+
			"Air quality is a likely trigger today; your risk score is %d (%s). Wear a mask outdoors.",
		ctx.Risk.Score, ctx.Risk.Level))
}

func handleHeadache(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf(
		"Headaches are common on polluted days; your current risk level is %s. "+
			"Keep rooms ventilated when the air allows it, drink water, and rest your eyes from screens.",
		ctx.Risk.Level))
}

func handleBreathing(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf(
		"With asthma or breathing trouble, treat today carefully: your risk score is %d (%s) at PM2.5 %.0f. "+
			"Keep your inhaler close, stay indoors as much as you can, and get help if symptoms escalate.",
		ctx.Risk.Score, ctx.Risk.Level, ctx.Measurement.PM25))
}

func handleWeather(msg, lowerMsg string, ctx Context) Reply {
	city := ctx.Measurement.City
	mentionsCurrent := strings.Contains(lowerMsg, strings.ToLower(city))
	inClause := inCityRe.FindStringSubmatch(msg)

	if mentionsCurrent || inClause == nil {
		return text(fmt.Sprintf(
			"In %s it is currently %.0f°C with %.0f%% humidity and wind at %.0f km/h.",
			city, ctx.Measurement.Temp, ctx.Measurement.Humidity, ctx.Measurement.WindSpeed))
	}

	other := capitalize(inClause[1])
	return text(fmt.Sprintf(
		"In %s it is around %.0f°C with partly cloudy skies.",
		other, ctx.Measurement.Temp-2))
}

func handleKB(_, lowerMsg string, ctx Context) Reply {
	answer, _ := lookupKB(lowerMsg, ctx)
	return text(answer)
}

func handleRouteKeyword(_, _ string, ctx Context) Reply {
	h := routes.Healthiest(ctx.Routes)
	return Reply{
		Type: TypeMap,
		Text: fmt.Sprintf(
			"Your healthiest option is the %s: %d minutes at exposure index %d. All three routes are attached.",
			h.Label, h.DurationMinutes, h.ExposureIndex),
		Data: ctx.Routes,
	}
}

func handleVentilation(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf("%s: %s", ctx.Ventilation.Status, ctx.Ventilation.Description))
}

func handleExercise(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf(
		"Your risk score is %d (%s). The best slot for a run today is %s, when PM2.5 drops to about %.0f.",
		ctx.Risk.Score, ctx.Risk.Level, ctx.Window.WindowLabel, ctx.Window.PM25))
}

func handleGreeting(_, _ string, _ Context) Reply {
	return text("Hello! Ask me about today's air quality, your symptoms, safe exercise windows, or commute routes.")
}

func handleFallback(_, _ string, ctx Context) Reply {
	return text(fmt.Sprintf(
		"I'm focused on health and environment questions. Your current risk score is %d (%s). "+
			"You can ask about air quality, symptoms like cough or headache, the best time to exercise, or commute routes.",
		ctx.Risk.Score, ctx.Risk.Level))
}

func text(s string) Reply {
	return Reply{Type: TypeText, Text: s}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
