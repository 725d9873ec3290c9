package notify

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

type invite struct {
	UID            string
	Summary        string
	Description    string
	Location       string
	OrganizerName  string
	OrganizerEmail string
	AttendeeName   string
	AttendeeEmail  string
	Start          time.Time
	End            time.Time
	Stamp          time.Time
}

// renderInvite builds a METHOD:REQUEST calendar so mail clients offer to add it.
func renderInvite(in invite) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId("-//timewise//scheduler//EN")

	ev := cal.AddEvent(in.UID)
	ev.SetDtStampTime(in.Stamp)
	ev.SetStartAt(in.Start)
	ev.SetEndAt(in.End)
	ev.SetSummary(in.Summary)
	ev.SetDescription(in.Description)
	if in.Location != "" {
		ev.SetLocation(in.Location)
		ev.SetURL(in.Location)
	}
	if in.OrganizerEmail != "" {
		ev.SetOrganizer("mailto:"+in.OrganizerEmail, ics.WithCN(in.OrganizerName))
	}
	ev.AddAttendee("mailto:"+in.AttendeeEmail,
		ics.WithCN(in.AttendeeName),
		ics.ParticipationRoleReqParticipant,
		ics.ParticipationStatusNeedsAction,
		ics.WithRSVP(true),
	)

	return []byte(cal.Serialize())
}
