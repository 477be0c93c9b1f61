package http

import (
	"fmt"
	"net/http"

	"github.com/askelund/huddle/internal/i18n"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// TranslationsHandler serves a locale's full dictionary. It is unauthenticated
// because the login page needs strings too. Unsupported locales fall back to
// the configured club default.
func (s *Server) TranslationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := i18n.ParseLocale(mux.Vars(r)["locale"])
		if !ok {
			locale, _ = i18n.ParseLocale(s.Cfg.DefaultLocale)
		}
		writeJSON(w, http.StatusOK, i18n.BundleFor(locale))
	}
}
