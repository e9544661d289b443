// Package chat answers free-text questions with a prioritized rule table
// rendered from the advisory pipeline's outputs.
package chat

import (
	"github.com/airwise/airwise/internal/airdata"
	"github.com/airwise/airwise/internal/forecast"
	"github.com/airwise/airwise/internal/risk"
	"github.com/airwise/airwise/internal/routes"
	"github.com/airwise/airwise/internal/ventilation"
)

// ReplyType distinguishes plain text replies from replies carrying a
// route payload for map rendering.
type ReplyType string

// Reply types. A reply carries exactly one type tag.
const (
	TypeText ReplyType = "text"
	TypeMap  ReplyType = "map"
)

// Reply is the dispatcher's answer to one message.
type Reply struct {
	Type ReplyType `json:"type"`
	Text string    `json:"text"`

	// Data carries the full route list for map-typed replies only.
	Data []routes.Option `json:"data,omitempty"`
}

// Context bundles the per-request pipeline outputs the dispatcher
// interpolates into replies. All fields are value inputs; the dispatcher
// keeps no state between calls.
type Context struct {
	Measurement airdata.Measurement
	Risk        risk.Result
	Window      forecast.ActivityWindow
	Routes      []routes.Option
	Ventilation ventilation.Advice
}
