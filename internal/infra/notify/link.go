package notify

import (
	"net/url"
	"time"
)

const googleCalendarRender = "https://www.google.com/calendar/render?action=TEMPLATE"

// GoogleCalendarLink returns an "add to calendar" link that pre-fills the event.
func GoogleCalendarLink(title string, start, end time.Time, details, location string) string {
	params := url.Values{}
	params.Set("text", title)
	params.Set("dates", calendarStamp(start)+"/"+calendarStamp(end))
	params.Set("details", details)
	if location != "" {
		params.Set("location", location)
	}
	return googleCalendarRender + "&" + params.Encode()
}

func calendarStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
