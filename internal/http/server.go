package http

import (
	"net/http"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/auth"
	"github.com/askelund/huddle/internal/config"
	"github.com/askelund/huddle/internal/gallery"
	"github.com/askelund/huddle/internal/metrics"
	"github.com/askelund/huddle/internal/notifier"
	"github.com/askelund/huddle/internal/roster"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/gorilla/mux"
)

func NewServer(
	rosterStore roster.RosterStore,
	eventStore schedule.EventStore,
	attendanceStore attendance.AttendanceStore,
	galleryStore gallery.GalleryStore,
	authSvc *auth.Service,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	notif notifier.Notifier,
	cfg config.Config,
) *Server {
	server := &Server{
		Roster:         rosterStore,
		Events:         eventStore,
		Attendance:     attendanceStore,
		Gallery:        galleryStore,
		Auth:           authSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Notifier:       notif,
		Cfg:            cfg,
		Router:         mux.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.handler = Chain(s.Router, loggingMiddleware, recoveryMiddleware, paramsMiddleware)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.HandleFunc("/health", s.HealthCheckHandler()).Methods(http.MethodGet)

	s.Router.HandleFunc("/login", s.LoginHandler()).Methods(http.MethodPost)
	s.Router.HandleFunc("/logout", s.LogoutHandler()).Methods(http.MethodPost)
	s.Router.HandleFunc("/i18n/{locale}", s.TranslationsHandler()).Methods(http.MethodGet)

	// Each route carries its own role gate; the same path can be member-read
	// and admin-write.
	api := s.Router.PathPrefix("/api").Subrouter()
	member := s.Auth.RequireMember
	captain := s.Auth.RequireCaptain
	admin := s.Auth.RequireAdmin

	api.Handle("/players", member(s.ListPlayersHandler())).Methods(http.MethodGet)
	api.Handle("/players", admin(s.UpsertPlayerHandler())).Methods(http.MethodPost)
	api.Handle("/players/{id}", member(s.GetPlayerHandler())).Methods(http.MethodGet)
	api.Handle("/players/{id}", admin(s.UpsertPlayerHandler())).Methods(http.MethodPut)
	api.Handle("/players/{id}", admin(s.DeletePlayerHandler())).Methods(http.MethodDelete)
	api.Handle("/profile", member(s.UpdateProfileHandler())).Methods(http.MethodPut)

	api.Handle("/events", member(s.ListEventsHandler())).Methods(http.MethodGet)
	api.Handle("/events", captain(s.CreateEventHandler())).Methods(http.MethodPost)
	api.Handle("/events/{id}", member(s.GetEventHandler())).Methods(http.MethodGet)
	api.Handle("/events/{id}", captain(s.UpdateEventHandler())).Methods(http.MethodPut)
	api.Handle("/events/{id}", captain(s.DeleteEventHandler())).Methods(http.MethodDelete)
	api.Handle("/events/{id}/rsvp", member(s.SetRSVPHandler())).Methods(http.MethodPost)
	api.Handle("/events/{id}/rsvps", member(s.ListRSVPsHandler())).Methods(http.MethodGet)
	api.Handle("/events/{id}/attendance", captain(s.GetAttendanceHandler())).Methods(http.MethodGet)
	api.Handle("/events/{id}/attendance", captain(s.SaveAttendanceHandler())).Methods(http.MethodPost)

	api.Handle("/leaderboard", member(s.LeaderboardHandler())).Methods(http.MethodGet)
	api.Handle("/leaderboard/digest", captain(s.LeaderboardDigestHandler())).Methods(http.MethodPost)

	api.Handle("/gallery", member(s.ListAlbumsHandler())).Methods(http.MethodGet)
	api.Handle("/gallery", admin(s.CreateAlbumHandler())).Methods(http.MethodPost)
	api.Handle("/gallery/{id}", member(s.GetAlbumHandler())).Methods(http.MethodGet)
	api.Handle("/gallery/{id}", admin(s.UpdateAlbumHandler())).Methods(http.MethodPut)
	api.Handle("/gallery/{id}", admin(s.DeleteAlbumHandler())).Methods(http.MethodDelete)
	api.Handle("/gallery/{id}/photos", admin(s.AddPhotoHandler())).Methods(http.MethodPost)
	api.Handle("/gallery/{id}/submissions", member(s.SubmitPhotoHandler())).Methods(http.MethodPost)
	api.Handle("/gallery/{id}/comments", member(s.ListCommentsHandler())).Methods(http.MethodGet)
	api.Handle("/gallery/{id}/comments", member(s.AddCommentHandler())).Methods(http.MethodPost)
	api.Handle("/photos/{id}", admin(s.DeletePhotoHandler())).Methods(http.MethodDelete)
	api.Handle("/comments/{id}", admin(s.DeleteCommentHandler())).Methods(http.MethodDelete)
	api.Handle("/submissions", admin(s.ListPendingSubmissionsHandler())).Methods(http.MethodGet)
	api.Handle("/submissions/{id}/review", admin(s.ReviewSubmissionHandler())).Methods(http.MethodPost)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
