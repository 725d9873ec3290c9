package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"timewise/internal/domain/booking"
	"timewise/internal/pkg/clock"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"
)

const meetingDuration = time.Hour

// Confirmer delivers the confirmation for one stored booking: an optional
// calendar event plus a mail with an "add to calendar" link and an invite.
type Confirmer struct {
	mailer    Mailer
	scheduler EventScheduler
	calendar  config.CalendarConfig
	smtp      config.SMTPConfig
	loc       *time.Location
	clock     clock.Clock
	logger    *slog.Logger
}

// NewConfirmer accepts a nil mailer (SMTP not configured) and a nil scheduler
// (no calendar configured).
func NewConfirmer(mailer Mailer, scheduler EventScheduler, calendar config.CalendarConfig, smtp config.SMTPConfig, clk clock.Clock, logger *slog.Logger) (*Confirmer, error) {
	loc, err := time.LoadLocation(calendar.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid CALENDAR_TIMEZONE %q", calendar.TimeZone)
	}
	return &Confirmer{
		mailer:    mailer,
		scheduler: scheduler,
		calendar:  calendar,
		smtp:      smtp,
		loc:       loc,
		clock:     clk,
		logger:    logger,
	}, nil
}

func (c *Confirmer) Confirm(ctx context.Context, b *booking.Booking) error {
	if c.mailer == nil {
		c.logger.Warn("smtp is not configured, skipping confirmation", "booking_id", b.ID())
		return nil
	}

	start := b.StartsAt(c.loc)
	end := start.Add(meetingDuration)
	title := fmt.Sprintf("%s: %s", c.calendar.EventTitle, b.Name())
	meet := c.calendar.MeetLink

	description := fmt.Sprintf("This is a booking confirmation for a meeting with %s (%s).", b.Name(), b.Email())
	if meet != "" {
		description += "\n\nJoin the meeting here: " + meet
	}

	if c.scheduler != nil {
		link, err := c.scheduler.CreateEvent(ctx, Event{
			ID:            eventID(b),
			Summary:       title,
			Description:   description,
			Location:      meet,
			AttendeeEmail: b.Email().String(),
			Start:         start,
			End:           end,
		})
		if err != nil {
			// the mail goes out regardless
			c.logger.Warn("failed to create calendar event", "booking_id", b.ID(), "error", err.Error())
		} else {
			c.logger.Info("calendar event created", "booking_id", b.ID(), "link", link)
		}
	}

	html, text, err := renderConfirmation(confirmationView{
		Name:         b.Name().String(),
		Organizer:    c.smtp.FromName,
		When:         start.Format("Monday, January 2, 2006 at 15:04 MST"),
		MeetLink:     meet,
		CalendarLink: GoogleCalendarLink(title, start, end, description, meet),
	})
	if err != nil {
		return err
	}

	inv := renderInvite(invite{
		UID:            b.ID().String() + "@timewise",
		Summary:        title,
		Description:    description,
		Location:       meet,
		OrganizerName:  c.smtp.FromName,
		OrganizerEmail: c.smtp.FromEmail,
		AttendeeName:   b.Name().String(),
		AttendeeEmail:  b.Email().String(),
		Start:          start,
		End:            end,
		Stamp:          c.clock.Now(),
	})

	err = c.mailer.Send(ctx, Message{
		To:          b.Email().String(),
		ToName:      b.Name().String(),
		Subject:     "Your booking is confirmed",
		HTML:        html,
		Text:        text,
		Attachments: []Attachment{{Name: "invite.ics", Data: inv}},
	})
	if err != nil {
		return err
	}

	c.logger.Info("confirmation sent", "booking_id", b.ID(), "slot", b.Day().String()+" "+b.TimeSlot())
	return nil
}

// eventID derives a calendar event id from the booking id. Calendar ids use
// base32hex characters, which lowercase hex digits satisfy.
func eventID(b *booking.Booking) string {
	return strings.ReplaceAll(b.ID().String(), "-", "")
}
