package http

import (
	"errors"
	"net/http"

	"github.com/askelund/huddle/internal/auth"
	"github.com/askelund/huddle/internal/roster"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// upsertPlayerRequest is the admin payload for creating or editing a player.
// It exists separately from roster.Player so the access code can be set on
// the way in without ever being serialized on the way out.
type upsertPlayerRequest struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Nickname     string             `json:"nickname"`
	JerseyNumber int                `json:"jersey_number"`
	Position     string             `json:"position"`
	ImageURL     string             `json:"image_url"`
	FunFact      string             `json:"fun_fact"`
	YearJoined   int                `json:"year_joined"`
	IsCaptain    bool               `json:"is_captain"`
	IsAdmin      bool               `json:"is_admin"`
	Email        string             `json:"email"`
	AccessCode   string             `json:"access_code"`
	CardConfig   *roster.CardConfig `json:"card_config"`
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Roster.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get players")
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := mux.Vars(r)["id"]
		player, err := s.Roster.GetPlayer(playerID)
		if err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				writeError(w, http.StatusNotFound, "player not found")
				return
			}
			log.Error("Failed to get player", "player_id", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func (s *Server) UpsertPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPlayerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if pathID := mux.Vars(r)["id"]; pathID != "" {
			req.ID = pathID
		}

		fields := make(map[string]string)
		if req.Name == "" {
			fields["name"] = "name is required"
		}
		// An omitted position takes the roster default; anything else must
		// name a known position.
		position := roster.PositionCutter
		if req.Position != "" {
			var err error
			if position, err = roster.ParsePosition(req.Position); err != nil {
				fields["position"] = err.Error()
			}
		}
		if len(fields) > 0 {
			writeFieldErrors(w, fields)
			return
		}

		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		player := &roster.Player{
			ID:           req.ID,
			Name:         req.Name,
			Nickname:     req.Nickname,
			JerseyNumber: req.JerseyNumber,
			Position:     position,
			ImageURL:     req.ImageURL,
			FunFact:      req.FunFact,
			YearJoined:   req.YearJoined,
			IsCaptain:    req.IsCaptain,
			IsAdmin:      req.IsAdmin,
			Email:        req.Email,
			AccessCode:   req.AccessCode,
			CardConfig:   req.CardConfig,
		}
		if err := s.Roster.UpsertPlayer(player); err != nil {
			log.Error("Failed to upsert player", "player_id", player.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save player")
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := mux.Vars(r)["id"]
		if err := s.Roster.DeletePlayer(playerID); err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				writeError(w, http.StatusNotFound, "player not found")
				return
			}
			log.Error("Failed to delete player", "player_id", playerID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to delete player")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player := auth.GetPlayer(r.Context())

		var update roster.ProfileUpdate
		if !decodeJSON(w, r, &update) {
			return
		}
		if update.Name == "" {
			writeFieldErrors(w, map[string]string{"name": "name is required"})
			return
		}

		if err := s.Roster.UpdateProfile(player.ID, update); err != nil {
			if errors.Is(err, roster.ErrPlayerNotFound) {
				writeError(w, http.StatusNotFound, "player not found")
				return
			}
			log.Error("Failed to update profile", "player_id", player.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}

		updated, err := s.Roster.GetPlayer(player.ID)
		if err != nil {
			log.Error("Failed to reload profile", "player_id", player.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}
