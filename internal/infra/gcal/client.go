package gcal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"timewise/internal/infra/gauth"
	"timewise/internal/infra/notify"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

// Client inserts booking events into one Google Calendar.
type Client struct {
	events     *calendar.EventsService
	calendarID string
	timeZone   string
}

func NewClient(ctx context.Context, account config.SheetsConfig, cfg config.CalendarConfig) (*Client, error) {
	if cfg.CalendarID == "" {
		return nil, errs.Configuration("GOOGLE_CALENDAR_ID is not set in the deployment environment.")
	}
	opts, err := gauth.ClientOptions(account, calendar.CalendarEventsScope)
	if err != nil {
		return nil, err
	}
	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create calendar client")
	}
	return &Client{
		events:     srv.Events,
		calendarID: cfg.CalendarID,
		timeZone:   cfg.TimeZone,
	}, nil
}

// CreateEvent is idempotent per event ID: a retry after a partial failure
// finds the event already there and returns an empty link.
func (c *Client) CreateEvent(ctx context.Context, ev notify.Event) (string, error) {
	event := &calendar.Event{
		Id:          ev.ID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339), TimeZone: c.timeZone},
		End:         &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339), TimeZone: c.timeZone},
		Attendees:   []*calendar.EventAttendee{{Email: ev.AttendeeEmail}},
	}

	created, err := c.events.Insert(c.calendarID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
			return "", nil
		}
		return "", errs.Wrap(err, "failed to create calendar event")
	}
	return created.HtmlLink, nil
}
