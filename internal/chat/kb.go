package chat

import (
	"strconv"
	"strings"
)

// kbEntry pairs a keyword set with a templated answer. Entries are
// evaluated in order; the first entry with any case-insensitive substring
// match wins.
type kbEntry struct {
	keywords []string
	answer   string
}

// knowledgeBase holds the templated answers for common air quality
// questions. Templates may reference {{riskScore}}, {{riskLevel}},
// {{bestWindow}} and {{bestPm25}}.
var knowledgeBase = []kbEntry{
	{
		keywords: []string{"mask", "n95"},
		answer:   "An N95 or FFP2 mask filters most PM2.5. With your risk at {{riskLevel}} (score {{riskScore}}), wear one for any longer trip outdoors.",
	},
	{
		keywords: []string{"purifier", "hepa", "filter"},
		answer:   "Run a HEPA purifier in the room you use most and keep its door closed. It matters most on days like today, with your risk score at {{riskScore}}.",
	},
	{
		keywords: []string{"aqi", "air quality index"},
		answer:   "The AQI condenses pollutant concentrations into one number. Today the PM2.5-driven risk works out to {{riskScore}} ({{riskLevel}}) for your profile.",
	},
	{
		keywords: []string{"pm2.5", "pm25", "particulate"},
		answer:   "PM2.5 are particles under 2.5 micrometres that reach deep into the lungs. The cleanest slot today is {{bestWindow}}, at around {{bestPm25}} ug/m3.",
	},
	{
		keywords: []string{"exercise", "workout", "gym"},
		answer:   "Prefer indoor workouts while your risk is {{riskLevel}}. If you head out, use the {{bestWindow}} window, when PM2.5 dips to about {{bestPm25}}.",
	},
	{
		keywords: []string{"children", "kids", "elderly"},
		answer:   "Children and older adults are more sensitive to polluted air. Keep their outdoor time inside {{bestWindow}} and watch for coughing or tiredness.",
	},
	{
		keywords: []string{"plant", "plants"},
		answer:   "Houseplants help a little but cannot replace ventilation or filtering. Your risk score right now is {{riskScore}}.",
	},
	{
		keywords: []string{"water", "hydration", "hydrated"},
		answer:   "Staying hydrated helps your airways clear inhaled particles. Especially worthwhile while your risk level is {{riskLevel}}.",
	},
}

// lookupKB returns the rendered answer for the first matching entry,
// or false when no entry matches.
func lookupKB(lowerMsg string, ctx Context) (string, bool) {
	for _, entry := range knowledgeBase {
		for _, kw := range entry.keywords {
			if strings.Contains(lowerMsg, kw) {
				return renderTemplate(entry.answer, ctx), true
			}
		}
	}
	return "", false
}

// renderTemplate substitutes the supported placeholders from the current
// risk result and activity window.
func renderTemplate(tpl string, ctx Context) string {
	r := strings.NewReplacer(
		"{{riskScore}}", strconv.Itoa(ctx.Risk.Score),
		"{{riskLevel}}", string(ctx.Risk.Level),
		"{{bestWindow}}", ctx.Window.WindowLabel,
		"{{bestPm25}}", strconv.FormatFloat(ctx.Window.PM25, 'f', -1, 64),
	)
	return r.Replace(tpl)
}
