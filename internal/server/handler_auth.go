package server

import (
	"net/http"

	"github.com/getwaylabs/getway/pkg/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	tok, user, ok := s.data.authenticate(req.Email, req.Password)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	respondOK(w, "login successful", model.Session{Token: tok, User: user})
}

type registerRequest struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Password       string     `json:"password"`
	Role           model.Role `json:"role"`
	OrganizationID string     `json:"organization_id"`
	Profile        struct {
		Age          *int     `json:"age"`
		CommuteModes []string `json:"commute_modes"`
		Vehicles     struct {
			Cars       *int `json:"cars"`
			Motorbikes *int `json:"motorbikes"`
		} `json:"vehicles"`
	} `json:"profile"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var errs []string
	if req.Name == "" {
		errs = append(errs, "name is required")
	}
	if req.Email == "" {
		errs = append(errs, "email is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	if req.Role == "" {
		req.Role = model.RoleCustomer
	}
	if !req.Role.Valid() {
		errs = append(errs, "role must be customer, scientist, or owner")
	}
	if req.Role == model.RoleScientist && req.OrganizationID == "" {
		errs = append(errs, "scientists must name an organization")
	}
	if len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "registration is incomplete", errs...)
		return
	}

	user, err := s.data.createUser(req.Name, req.Email, req.Password, req.Role, req.OrganizationID)
	if err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	// Scientists wait for owner approval and get no token yet.
	if req.Role == model.RoleScientist {
		respondCreated(w, "registration received; awaiting owner approval", model.Session{User: user})
		return
	}

	tok := s.data.issueToken(user.ID)
	respondCreated(w, "registration successful", model.Session{Token: tok, User: user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.data.revokeToken(bearerToken(r))
	respondOK(w, "logged out", nil)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	u := userFromContext(r.Context())
	// re-read so approvals made after login are visible
	if fresh, ok := s.data.user(u.ID); ok {
		u = fresh
	}
	respondOK(w, "profile", u)
}
