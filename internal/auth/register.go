package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/getwaylabs/getway/internal/api"
	"github.com/getwaylabs/getway/pkg/model"
)

// RegistrationForm carries the flat, string-typed fields collected by the
// registration screen. Numeric fields arrive as strings; blank or
// non-numeric input means "not provided", never zero.
type RegistrationForm struct {
	Name           string
	Email          string
	Password       string
	Role           model.Role
	OrganizationID string
	Age            string
	Cars           string
	Motorbikes     string
	CommuteModes   []string
}

type registerVehicles struct {
	Cars       *int `json:"cars,omitempty"`
	Motorbikes *int `json:"motorbikes,omitempty"`
}

type registerProfile struct {
	Age          *int             `json:"age,omitempty"`
	CommuteModes []string         `json:"commute_modes,omitempty"`
	Vehicles     registerVehicles `json:"vehicles"`
}

type registerPayload struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Password       string          `json:"password"`
	Role           model.Role      `json:"role"`
	OrganizationID string          `json:"organization_id,omitempty"`
	Profile        registerProfile `json:"profile"`
}

// payload maps the flat form onto the nested wire shape.
func (f RegistrationForm) payload() registerPayload {
	return registerPayload{
		Name:           f.Name,
		Email:          f.Email,
		Password:       f.Password,
		Role:           f.Role,
		OrganizationID: f.OrganizationID,
		Profile: registerProfile{
			Age:          parseCount(f.Age),
			CommuteModes: f.CommuteModes,
			Vehicles: registerVehicles{
				Cars:       parseCount(f.Cars),
				Motorbikes: parseCount(f.Motorbikes),
			},
		},
	}
}

// parseCount converts a numeric form field. Blank, non-numeric, or
// negative input yields nil (absent).
func parseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// RegisterResult reports the outcome of a registration. Session is nil
// when the account awaits owner approval before a token is granted.
type RegisterResult struct {
	Session *model.Session
	User    *model.User
	Message string
}

// Register creates an account via POST /auth/register. A token and user in
// the response establish a session immediately; a response without a token
// (scientist accounts pending approval) leaves the store untouched.
func (s *Service) Register(ctx context.Context, form RegistrationForm) (*RegisterResult, error) {
	resp, err := s.client.Post(ctx, "/auth/register", form.payload(), api.WithoutAuth())
	if err != nil {
		return nil, wrapClientErr(ErrRegistrationFailed, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: %s", ErrRegistrationFailed, messageOr(resp, "registration was rejected"))
	}

	res := &RegisterResult{Message: resp.Message}
	if len(resp.Data) == 0 {
		return res, nil
	}

	var sess model.Session
	if err := resp.DecodeData(&sess); err != nil {
		return nil, fmt.Errorf("%w: malformed server response: %w", ErrRegistrationFailed, err)
	}
	res.User = sess.User

	if sess.Token == "" {
		return res, nil
	}

	if err := s.store.SetToken(ctx, sess.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if sess.User != nil {
		if err := s.store.SetUser(ctx, sess.User); err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}
	}
	res.Session = &sess

	s.logger.Info("registered", "email", form.Email, "role", form.Role)
	return res, nil
}
