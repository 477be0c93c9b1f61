package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/askelund/huddle/internal/auth"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	MapURL      string `json:"map_url"`
	Type        string `json:"type"`
	Opponent    string `json:"opponent"`
}

func (req *eventRequest) validate() (schedule.EventType, map[string]string) {
	fields := make(map[string]string)
	if req.Title == "" {
		fields["title"] = "title is required"
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		fields["date"] = "date must be YYYY-MM-DD"
	}
	eventType, err := schedule.ParseEventType(req.Type)
	if err != nil {
		fields["type"] = err.Error()
	}
	return eventType, fields
}

func (req *eventRequest) toEvent(id string, eventType schedule.EventType) *schedule.Event {
	return &schedule.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		MapURL:      req.MapURL,
		Type:        eventType,
		Opponent:    req.Opponent,
	}
}

func (s *Server) ListEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var events []schedule.Event
		var err error
		if r.URL.Query().Get("upcoming") == "true" {
			events, err = s.Events.UpcomingEvents(time.Now().Format("2006-01-02"))
		} else {
			events, err = s.Events.GetAllEvents()
		}
		if err != nil {
			log.Error("Failed to get events", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get events")
			return
		}
		writeJSON(w, http.StatusOK, events)
	}
}

func (s *Server) GetEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		event, err := s.Events.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, schedule.ErrEventNotFound) {
				writeError(w, http.StatusNotFound, "event not found")
				return
			}
			log.Error("Failed to get event", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get event")
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

func (s *Server) CreateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		eventType, fields := req.validate()
		if len(fields) > 0 {
			writeFieldErrors(w, fields)
			return
		}

		event := req.toEvent(uuid.NewString(), eventType)
		if err := s.Events.UpsertEvent(event); err != nil {
			log.Error("Failed to create event", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save event")
			return
		}

		// Announce out of band; a Slack hiccup should not fail the create.
		if err := s.Notifier.SendEventAnnouncement(event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce event", "event_id", event.ID, "error", err)
		}

		writeJSON(w, http.StatusCreated, event)
	}
}

func (s *Server) UpdateEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		if _, err := s.Events.GetEvent(eventID); err != nil {
			if errors.Is(err, schedule.ErrEventNotFound) {
				writeError(w, http.StatusNotFound, "event not found")
				return
			}
			log.Error("Failed to get event", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get event")
			return
		}

		var req eventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		eventType, fields := req.validate()
		if len(fields) > 0 {
			writeFieldErrors(w, fields)
			return
		}

		event := req.toEvent(eventID, eventType)
		if err := s.Events.UpsertEvent(event); err != nil {
			log.Error("Failed to update event", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save event")
			return
		}

		// Changed details go out the same way new events do.
		if err := s.Notifier.SendEventAnnouncement(event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to announce event", "event_id", event.ID, "error", err)
		}

		writeJSON(w, http.StatusOK, event)
	}
}

func (s *Server) DeleteEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		if err := s.Events.DeleteEvent(eventID); err != nil {
			if errors.Is(err, schedule.ErrEventNotFound) {
				writeError(w, http.StatusNotFound, "event not found")
				return
			}
			log.Error("Failed to delete event", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete event")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type rsvpRequest struct {
	Status string `json:"status"`
}

func (s *Server) SetRSVPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		player := auth.GetPlayer(r.Context())

		var req rsvpRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		status, err := schedule.ParseRSVPStatus(req.Status)
		if err != nil {
			writeFieldErrors(w, map[string]string{"status": err.Error()})
			return
		}

		if _, err := s.Events.GetEvent(eventID); err != nil {
			if errors.Is(err, schedule.ErrEventNotFound) {
				writeError(w, http.StatusNotFound, "event not found")
				return
			}
			log.Error("Failed to get event", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get event")
			return
		}

		rsvp := &schedule.RSVP{
			PlayerID: player.ID,
			EventID:  eventID,
			Status:   status,
		}
		if err := s.Events.SetRSVP(rsvp); err != nil {
			log.Error("Failed to set RSVP", "event_id", eventID, "player_id", player.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save RSVP")
			return
		}

		s.Metrics.IncRSVPUpdates()
		writeJSON(w, http.StatusOK, rsvp)
	}
}

func (s *Server) ListRSVPsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]
		rsvps, err := s.Events.GetRSVPsForEvent(eventID)
		if err != nil {
			log.Error("Failed to get RSVPs", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get RSVPs")
			return
		}
		writeJSON(w, http.StatusOK, rsvps)
	}
}
