package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/askelund/huddle/internal/metrics"
	"github.com/askelund/huddle/internal/roster"
	"github.com/charmbracelet/log"
)

// ErrInvalidAccessCode is returned when no player matches the presented code.
var ErrInvalidAccessCode = errors.New("invalid access code")

const (
	// SessionCookieName carries the logged-in player's id. The value is the
	// raw id, not a signed token: access codes gate a club site, not a bank.
	SessionCookieName = "huddle_player"

	sessionDuration = 30 * 24 * time.Hour
)

// Service resolves access codes and cookie sessions to roster players.
type Service struct {
	roster  roster.RosterStore
	metrics metrics.Metrics
}

// New creates a new auth service.
func New(rosterStore roster.RosterStore, metricsSvc metrics.Metrics) *Service {
	return &Service{roster: rosterStore, metrics: metricsSvc}
}

// Login resolves an access code to a player. Codes are matched exactly,
// with surrounding whitespace ignored.
func (s *Service) Login(code string) (*roster.Player, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		s.metrics.IncLoginFailures()
		return nil, ErrInvalidAccessCode
	}

	player, err := s.roster.GetPlayerByAccessCode(code)
	if err != nil {
		if errors.Is(err, roster.ErrPlayerNotFound) {
			s.metrics.IncLoginFailures()
			return nil, ErrInvalidAccessCode
		}
		return nil, err
	}

	s.metrics.IncLogins()
	log.Info("Player logged in", "player_id", player.ID)
	return player, nil
}

// PlayerFromRequest resolves the session cookie to a player.
// Returns nil without error when no valid session is present.
func (s *Service) PlayerFromRequest(r *http.Request) *roster.Player {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	player, err := s.roster.GetPlayer(cookie.Value)
	if err != nil {
		return nil
	}
	return player
}

// SetSessionCookie writes the session cookie for the given player.
func SetSessionCookie(w http.ResponseWriter, playerID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    playerID,
		Path:     "/",
		Expires:  time.Now().Add(sessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
