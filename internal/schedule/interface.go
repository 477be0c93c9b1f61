package schedule

import "errors"

// ErrEventNotFound is returned when no event matches the given id.
var ErrEventNotFound = errors.New("event not found")

// EventStore defines the interface for interacting with the club schedule.
type EventStore interface {
	UpsertEvent(e *Event) error
	GetEvent(eventID string) (*Event, error)
	GetAllEvents() ([]Event, error)
	UpcomingEvents(fromDate string) ([]Event, error)
	// DeleteEvent removes an event. Attendance rows referencing it are
	// orphaned rather than cascaded.
	DeleteEvent(eventID string) error

	SetRSVP(rsvp *RSVP) error
	GetRSVP(playerID, eventID string) (*RSVP, error)
	GetRSVPsForEvent(eventID string) ([]RSVP, error)
}
