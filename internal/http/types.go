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

type Server struct {
	Roster         roster.RosterStore
	Events         schedule.EventStore
	Attendance     attendance.AttendanceStore
	Gallery        gallery.GalleryStore
	Auth           *auth.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Notifier       notifier.Notifier
	Cfg            config.Config
	Router         *mux.Router

	// handler is the router wrapped in the shared middleware chain.
	handler http.Handler
}
