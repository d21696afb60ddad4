package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/getwaylabs/getway/pkg/model"
)

func (s *Server) handlePendingScientists(w http.ResponseWriter, r *http.Request) {
	pending := s.data.pendingScientists()
	if pending == nil {
		pending = []model.User{}
	}
	respondOK(w, "pending scientists", pending)
}

func (s *Server) handleApproveScientist(w http.ResponseWriter, r *http.Request) {
	u, ok := s.data.approveScientist(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "no such pending scientist")
		return
	}
	respondOK(w, "scientist approved", u)
}

func (s *Server) handleRejectScientist(w http.ResponseWriter, r *http.Request) {
	if !s.data.rejectScientist(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "no such pending scientist")
		return
	}
	respondOK(w, "scientist rejected", nil)
}
