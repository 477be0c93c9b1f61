package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Logins                   prometheus.Counter
	LoginFailures            prometheus.Counter
	AttendanceSaves          prometheus.Counter
	AttendanceRowsFailed     prometheus.Counter
	RSVPUpdates              prometheus.Counter
	LeaderboardBuildDuration prometheus.Histogram
	NotifSent                prometheus.Counter
	NotifFailed              prometheus.Counter
	StartupTimeSeconds       prometheus.Gauge
}
