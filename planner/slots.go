package planner

import (
	"fmt"
	"math"

	"voyago/catalog"
	"voyago/models"
)

// Base candidate start times per pace, in fractional hours.
var baseSlots = map[models.Pace][]float64{
	models.PaceRelaxed:  {9, 11.5, 14, 16.5},
	models.PaceStandard: {8.5, 10.5, 13, 15.5, 18},
	models.PaceIntense:  {8, 10, 12, 14.5, 17, 19.5},
}

// SlotsFor filters the pace's base slots to the template's open-hour
// window. The result stays in ascending order and may be empty; an empty
// result means "skip this template for this position", not an error.
func SlotsFor(pace models.Pace, open catalog.OpenHours) []float64 {
	var out []float64
	for _, t := range baseSlots[pace] {
		if t >= open.Start && t <= open.End {
			out = append(out, t)
		}
	}
	return out
}

// FormatClock renders a fractional hour like 16.5 as "4:30 PM".
func FormatClock(hour float64) string {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h
	switch {
	case h > 12:
		display = h - 12
	case h == 0:
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, period)
}
