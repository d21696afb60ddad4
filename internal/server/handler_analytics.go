package server

import "net/http"

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	respondOK(w, "alerts", s.data.listAlerts())
}

func (s *Server) handleRidership(w http.ResponseWriter, r *http.Request) {
	respondOK(w, "ridership", s.data.ridership(r.URL.Query().Get("line")))
}
