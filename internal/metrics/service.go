package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_logins_total",
			Help: "The total number of successful access-code logins.",
		}),
		LoginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_login_failures_total",
			Help: "The total number of rejected access-code logins.",
		}),
		AttendanceSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_attendance_saves_total",
			Help: "The total number of bulk attendance saves.",
		}),
		AttendanceRowsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_attendance_rows_failed_total",
			Help: "The total number of attendance rows that failed to persist.",
		}),
		RSVPUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_rsvp_updates_total",
			Help: "The total number of RSVP status updates.",
		}),
		LeaderboardBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "huddle_leaderboard_build_duration_seconds",
			Help:    "The duration of full leaderboard recomputations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huddle_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "huddle_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Logins,
		s.LoginFailures,
		s.AttendanceSaves,
		s.AttendanceRowsFailed,
		s.RSVPUpdates,
		s.LeaderboardBuildDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLogins() {
	s.Logins.Inc()
}

func (s *Service) IncLoginFailures() {
	s.LoginFailures.Inc()
}

func (s *Service) IncAttendanceSaves() {
	s.AttendanceSaves.Inc()
}

func (s *Service) IncAttendanceRowsFailed(count int) {
	s.AttendanceRowsFailed.Add(float64(count))
}

func (s *Service) IncRSVPUpdates() {
	s.RSVPUpdates.Inc()
}

func (s *Service) ObserveLeaderboardBuildDuration(duration float64) {
	s.LeaderboardBuildDuration.Observe(duration)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
