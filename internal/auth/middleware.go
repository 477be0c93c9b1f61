package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/askelund/huddle/internal/roster"
)

type contextKey string

const playerContextKey contextKey = "player"

// GetPlayer retrieves the authenticated player from the request context.
// Returns nil if no player is authenticated.
func GetPlayer(ctx context.Context) *roster.Player {
	player, _ := ctx.Value(playerContextKey).(*roster.Player)
	return player
}

// WithPlayer resolves the session cookie on every request and, when valid,
// places the player in the request context. It never rejects.
func (s *Service) WithPlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if player := s.PlayerFromRequest(r); player != nil {
			r = r.WithContext(context.WithValue(r.Context(), playerContextKey, player))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireMember rejects requests without an authenticated player,
// redirecting to the login page with the original path preserved.
func (s *Service) RequireMember(next http.Handler) http.Handler {
	return s.require(next, func(p *roster.Player) bool { return true })
}

// RequireAdmin additionally requires the admin flag.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return s.require(next, func(p *roster.Player) bool { return p.IsAdmin })
}

// RequireCaptain admits captains and admins.
func (s *Service) RequireCaptain(next http.Handler) http.Handler {
	return s.require(next, func(p *roster.Player) bool { return p.IsCaptain || p.IsAdmin })
}

func (s *Service) require(next http.Handler, allowed func(*roster.Player) bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player := GetPlayer(r.Context())
		if player == nil {
			player = s.PlayerFromRequest(r)
		}
		if player == nil || !allowed(player) {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), playerContextKey, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
