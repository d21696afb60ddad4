package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrNoData is returned when DecodeData is called on an envelope whose
// data field is absent.
var ErrNoData = errors.New("response has no data")

// Response is the uniform envelope every GetWay API endpoint produces:
// {status, message, data?, errors?}.
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

// OK reports whether the envelope carries a success status.
func (r *Response) OK() bool {
	return r.Status == StatusSuccess
}

// DecodeData unmarshals the data payload into v.
func (r *Response) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return ErrNoData
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// ListOptions configures list queries with pagination.
type ListOptions struct {
	Limit  int
	Offset int
}

// DefaultListOptions returns sensible defaults.
func DefaultListOptions() ListOptions {
	return ListOptions{Limit: 20, Offset: 0}
}

// Clamp enforces limits (max 100, min 1).
func (o *ListOptions) Clamp() {
	if o.Limit <= 0 {
		o.Limit = 20
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}

// Query renders the options as a URL query string, leading '?' included.
func (o ListOptions) Query() string {
	o.Clamp()
	v := url.Values{}
	v.Set("limit", strconv.Itoa(o.Limit))
	v.Set("offset", strconv.Itoa(o.Offset))
	return "?" + v.Encode()
}
