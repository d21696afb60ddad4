package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/getwaylabs/getway/pkg/model"
)

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"-2", nil},
		{"3.5", nil},
		{"0", intPtr(0)},
		{"17", intPtr(17)},
		{" 3 ", intPtr(3)},
	}
	for _, tc := range cases {
		got := parseCount(tc.in)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("parseCount(%q) = %d, want nil", tc.in, *got)
		case tc.want != nil && got == nil:
			t.Errorf("parseCount(%q) = nil, want %d", tc.in, *tc.want)
		case tc.want != nil && got != nil && *got != *tc.want:
			t.Errorf("parseCount(%q) = %d, want %d", tc.in, *got, *tc.want)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestRegistrationPayloadShape(t *testing.T) {
	form := RegistrationForm{
		Name:         "Maya Chen",
		Email:        "maya@example.com",
		Password:     "getway",
		Role:         model.RoleCustomer,
		Age:          "29",
		Cars:         "not-a-number",
		Motorbikes:   "1",
		CommuteModes: []string{"bus", "bicycle"},
	}

	data, err := json.Marshal(form.payload())
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}

	profile, ok := got["profile"].(map[string]any)
	if !ok {
		t.Fatalf("payload missing profile object: %s", data)
	}
	if profile["age"] != float64(29) {
		t.Errorf("age = %v, want 29", profile["age"])
	}
	vehicles := profile["vehicles"].(map[string]any)
	if _, present := vehicles["cars"]; present {
		t.Errorf("non-numeric cars must be omitted, got %v", vehicles["cars"])
	}
	if vehicles["motorbikes"] != float64(1) {
		t.Errorf("motorbikes = %v, want 1", vehicles["motorbikes"])
	}
	modes, _ := profile["commute_modes"].([]any)
	if len(modes) != 2 {
		t.Errorf("commute_modes = %v, want both entries", modes)
	}
}

func TestRegisterPendingApprovalLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"success","message":"registration received; awaiting owner approval","data":{
			"user":{"id":"usr_3","name":"Devi Raman","email":"devi@metrolink.example","role":"scientist","is_approved":false}
		}}`))
	}))

	res, err := svc.Register(ctx, RegistrationForm{
		Name:           "Devi Raman",
		Email:          "devi@metrolink.example",
		Password:       "scidata",
		Role:           model.RoleScientist,
		OrganizationID: "org_metrolink",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Session != nil {
		t.Error("pending registration must not produce a session")
	}
	if res.User == nil || res.User.IsApproved {
		t.Errorf("result user = %+v, want unapproved scientist", res.User)
	}
	if !strings.Contains(res.Message, "awaiting owner approval") {
		t.Errorf("Message = %q, want approval notice", res.Message)
	}

	tok, _ := store.Token(ctx)
	u, _ := store.User(ctx)
	if tok != "" || u != nil {
		t.Errorf("store must stay empty: token=%q user=%v", tok, u)
	}
}

func TestRegisterImmediateSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("register request must be anonymous")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"success","message":"welcome","data":{
			"token":"xyz",
			"user":{"id":"usr_4","name":"Maya Chen","email":"maya@example.com","role":"customer","is_approved":true}
		}}`))
	}))

	res, err := svc.Register(ctx, RegistrationForm{
		Name:     "Maya Chen",
		Email:    "maya@example.com",
		Password: "getway",
		Role:     model.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.Session == nil || res.Session.Token != "xyz" {
		t.Fatalf("result session = %+v, want token xyz", res.Session)
	}

	tok, _ := store.Token(ctx)
	if tok != "xyz" {
		t.Errorf("stored token = %q, want xyz", tok)
	}
}

func TestRegisterValidationFailure(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"status":"error","message":"Validation failed","errors":["email is required","password too short"]}`))
	}))

	_, err := svc.Register(context.Background(), RegistrationForm{Name: "x"})
	if !errors.Is(err, ErrRegistrationFailed) {
		t.Fatalf("error = %v, want ErrRegistrationFailed", err)
	}
	if !strings.Contains(err.Error(), "Validation failed") {
		t.Errorf("error = %v, want server validation message", err)
	}
}
