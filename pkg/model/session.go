package model

// Session pairs the opaque bearer token with the cached user profile.
// It is the data payload of a successful login, and of a registration
// that grants immediate access. A registration that requires owner
// approval returns a user but no token.
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}
