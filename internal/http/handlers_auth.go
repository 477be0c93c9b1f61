package http

import (
	"errors"
	"net/http"

	"github.com/askelund/huddle/internal/auth"
	"github.com/charmbracelet/log"
)

type loginRequest struct {
	AccessCode string `json:"access_code"`
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		player, err := s.Auth.Login(req.AccessCode)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidAccessCode) {
				writeError(w, http.StatusUnauthorized, "invalid access code")
				return
			}
			log.Error("Login lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "login failed")
			return
		}

		auth.SetSessionCookie(w, player.ID)
		writeJSON(w, http.StatusOK, player)
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth.ClearSessionCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}
