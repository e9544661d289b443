// Package forecast derives an hourly pollution forecast from a snapshot
// and selects the lowest-exposure activity window.
package forecast

import (
	"fmt"
	"math"

	"github.com/airwise/airwise/internal/airdata"
)

// The six forecast slots and their PM multipliers. Midday traffic and heat
// push particulates up; early morning and late evening pull them down.
var (
	slotHours     = [6]int{6, 9, 12, 15, 18, 21}
	pmMultipliers = [6]float64{0.7, 0.8, 1.0, 1.2, 1.3, 0.9}
)

// Slot is one forecast hour, derived deterministically from a Measurement.
type Slot struct {
	Hour int     `json:"hour"`
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
	Temp float64 `json:"temp"`
}

// ActivityWindow is the recommended two-hour outdoor slot.
type ActivityWindow struct {
	WindowLabel string  `json:"windowLabel"`
	Reason      string  `json:"reason"`
	PM25        float64 `json:"pm25"`
	AllSlots    []Slot  `json:"allSlots"`
}

// Hourly derives the six fixed forecast slots from a measurement.
// Morning slots run warmer than the snapshot, afternoon and evening
// slots cooler.
func Hourly(m airdata.Measurement) []Slot {
	slots := make([]Slot, 0, len(slotHours))
	for i, hour := range slotHours {
		temp := m.Temp + 2
		if i > 2 {
			temp = m.Temp - 2
		}
		slots = append(slots, Slot{
			Hour: hour,
			PM25: math.Round(m.PM25 * pmMultipliers[i]),
			PM10: math.Round(m.PM10 * pmMultipliers[i]),
			Temp: temp,
		})
	}
	return slots
}

// SelectWindow picks the slot with the minimum PM2.5; ties keep the
// earliest hour. Callers always supply the six Hourly slots; an empty
// slice yields a zero window.
func SelectWindow(slots []Slot) ActivityWindow {
	if len(slots) == 0 {
		return ActivityWindow{}
	}

	best := slots[0]
	for _, s := range slots[1:] {
		if s.PM25 < best.PM25 {
			best = s
		}
	}

	return ActivityWindow{
		WindowLabel: fmt.Sprintf("%d:00 - %d:00", best.Hour, best.Hour+2),
		Reason:      "Lowest predicted PM2.5 of the day",
		PM25:        best.PM25,
		AllSlots:    slots,
	}
}
