// Package ics serializes trips into iCalendar documents.
package ics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"voyago/models"
)

const prodID = "-//Voyago//Travel Itinerary//EN"

var (
	clockRe    = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	firstIntRe = regexp.MustCompile(`\d+`)
	slugRe     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Export renders the trip as a VCALENDAR with one VEVENT per activity.
// Parsing problems in activity fields never fail the export; they resolve
// to the documented default window.
func Export(trip *models.Trip) []byte {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	stamp := dtStamp(trip.CreatedAt)
	for _, day := range trip.Itinerary {
		for _, act := range day.Activities {
			lines = append(lines, eventLines(act, day.Date, trip.Destination, stamp)...)
		}
	}

	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, "\r\n"))
}

// Filename derives the download name from the slugified destination and
// the trip's start date, e.g. "paris-2026-10-12.ics".
func Filename(trip *models.Trip) string {
	slug := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(trip.Destination), "-"), "-")
	if slug == "" {
		slug = "trip"
	}
	return slug + "-" + trip.StartDate + ".ics"
}

func eventLines(act models.Activity, date, destination, stamp string) []string {
	startMin, endMin := eventWindow(act.Time, act.Duration)

	desc := []string{act.Description, "Duration: " + act.Duration, "Cost: " + act.Cost}
	if act.TravelNote != "" {
		desc = append(desc, "Travel: "+act.TravelNote)
	}

	return []string{
		"BEGIN:VEVENT",
		// Stable and unique per (activity, date): activity ids repeat
		// across days, the date disambiguates.
		fmt.Sprintf("UID:%s-%s@voyago.app", act.ID, date),
		"DTSTAMP:" + stamp,
		"DTSTART:" + dateTime(date, startMin),
		"DTEND:" + dateTime(date, endMin),
		"SUMMARY:" + escapeText(act.Name),
		"LOCATION:" + escapeText(act.Neighborhood+", "+destination),
		"DESCRIPTION:" + escapeText(strings.Join(desc, "\n")),
		"CATEGORIES:" + escapeText(act.Kind),
		"END:VEVENT",
	}
}

// eventWindow returns start/end as minutes since midnight. An unparsable
// time yields the fixed 09:00-11:00 window regardless of duration;
// otherwise the duration contributes its first integer as whole hours,
// defaulting to 2.
func eventWindow(clock, duration string) (int, int) {
	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return 9 * 60, 11 * 60
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	start := hours*60 + minutes

	durHours := 2
	if m := firstIntRe.FindString(duration); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			durHours = n
		}
	}

	return start, start + durHours*60
}

func dateTime(date string, minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60
	return fmt.Sprintf("%sT%02d%02d00", strings.ReplaceAll(date, "-", ""), h, m)
}

func dtStamp(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		t = time.Now().UTC()
	}
	return t.UTC().Format("20060102T150405Z")
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
