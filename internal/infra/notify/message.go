package notify

import (
	"context"
	"time"
)

type Attachment struct {
	Name string
	Data []byte
}

type Message struct {
	To          string
	ToName      string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Event is a calendar entry for one booked slot.
type Event struct {
	ID            string
	Summary       string
	Description   string
	Location      string
	AttendeeEmail string
	Start         time.Time
	End           time.Time
}

// EventScheduler creates the event in the organiser's calendar and returns
// its web link.
type EventScheduler interface {
	CreateEvent(ctx context.Context, ev Event) (string, error)
}
