package http

import (
	"errors"
	"net/http"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// attendanceDraftRow is one row of the attendance editor: the stored (or
// seeded) record plus the player's declared RSVP for convenience.
type attendanceDraftRow struct {
	attendance.Record
	PlayerName string              `json:"player_name"`
	RSVPStatus schedule.RSVPStatus `json:"rsvp_status,omitempty"`
}

// GetAttendanceHandler returns a draft row for every rostered player:
// stored records kept as-is, everyone else zeroed. Saving the set back
// is a full replacement.
func (s *Server) GetAttendanceHandler() http.HandlerFunc {
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

		players, err := s.Roster.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get players")
			return
		}
		existing, err := s.Attendance.GetForEvent(eventID)
		if err != nil {
			log.Error("Failed to get attendance", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get attendance")
			return
		}
		rsvps, err := s.Events.GetRSVPsForEvent(eventID)
		if err != nil {
			log.Error("Failed to get RSVPs", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get RSVPs")
			return
		}

		rsvpByPlayer := make(map[string]schedule.RSVPStatus, len(rsvps))
		for _, rsvp := range rsvps {
			rsvpByPlayer[rsvp.PlayerID] = rsvp.Status
		}
		nameByPlayer := make(map[string]string, len(players))
		for _, p := range players {
			nameByPlayer[p.ID] = p.Name
		}

		drafts := attendance.SeedDrafts(players, existing, eventID)
		rows := make([]attendanceDraftRow, 0, len(drafts))
		for _, d := range drafts {
			rows = append(rows, attendanceDraftRow{
				Record:     d,
				PlayerName: nameByPlayer[d.PlayerID],
				RSVPStatus: rsvpByPlayer[d.PlayerID],
			})
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

type saveAttendanceRequest struct {
	Records []attendance.Record `json:"records"`
}

type saveAttendanceResponse struct {
	Saved           int      `json:"saved"`
	FailedPlayerIDs []string `json:"failed_player_ids,omitempty"`
	Error           string   `json:"error,omitempty"`
}

func (s *Server) SaveAttendanceHandler() http.HandlerFunc {
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

		var req saveAttendanceRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if len(req.Records) == 0 {
			writeFieldErrors(w, map[string]string{"records": "at least one record is required"})
			return
		}
		for i := range req.Records {
			if req.Records[i].PlayerID == "" {
				writeFieldErrors(w, map[string]string{"records": "every record needs a player_id"})
				return
			}
			req.Records[i].EventID = eventID
		}

		s.Metrics.IncAttendanceSaves()
		err := s.Attendance.BulkUpsert(eventID, req.Records)

		var bulkErr *attendance.BulkSaveError
		if errors.As(err, &bulkErr) {
			s.Metrics.IncAttendanceRowsFailed(len(bulkErr.FailedPlayerIDs))
			log.Error("Attendance save partially failed", "event_id", eventID, "failed", len(bulkErr.FailedPlayerIDs))
			writeJSON(w, http.StatusInternalServerError, saveAttendanceResponse{
				Saved:           len(req.Records) - len(bulkErr.FailedPlayerIDs),
				FailedPlayerIDs: bulkErr.FailedPlayerIDs,
				Error:           "some rows failed to save",
			})
			return
		}
		if err != nil {
			log.Error("Attendance save failed", "event_id", eventID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save attendance")
			return
		}

		writeJSON(w, http.StatusOK, saveAttendanceResponse{Saved: len(req.Records)})
	}
}
