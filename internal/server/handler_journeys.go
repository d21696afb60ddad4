package server

import (
	"net/http"
	"strconv"

	"github.com/getwaylabs/getway/pkg/model"
)

// listOptionsFromQuery parses limit/offset query parameters.
func listOptionsFromQuery(r *http.Request) model.ListOptions {
	opts := model.DefaultListOptions()
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Offset = n
		}
	}
	opts.Clamp()
	return opts
}

type logJourneyRequest struct {
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Mode        model.TransitMode `json:"mode"`
	DurationMin int               `json:"duration_min"`
}

func (s *Server) handleListJourneys(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())
	respondOK(w, "journeys", s.data.listJourneys(u.ID, listOptionsFromQuery(r)))
}

func (s *Server) handleLogJourney(w http.ResponseWriter, r *http.Request) {
	var req logJourneyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var errs []string
	if req.Origin == "" {
		errs = append(errs, "origin is required")
	}
	if req.Destination == "" {
		errs = append(errs, "destination is required")
	}
	if _, ok := co2PerMinute[req.Mode]; !ok {
		errs = append(errs, "mode must be one of bus, train, metro, bicycle, walk")
	}
	if req.DurationMin <= 0 {
		errs = append(errs, "duration_min must be positive")
	}
	if len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "journey is incomplete", errs...)
		return
	}

	u := userFromContext(r.Context())
	j := s.data.logJourney(u.ID, req.Origin, req.Destination, req.Mode, req.DurationMin)
	respondCreated(w, "journey logged", j)
}

func (s *Server) handleJourneyStats(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())
	respondOK(w, "journey stats", s.data.journeyStats(u.ID))
}
