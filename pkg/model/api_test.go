package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResponseOK(t *testing.T) {
	if ok := (&Response{Status: StatusSuccess}).OK(); !ok {
		t.Error("success envelope reported not OK")
	}
	if ok := (&Response{Status: StatusError}).OK(); ok {
		t.Error("error envelope reported OK")
	}
	if ok := (&Response{}).OK(); ok {
		t.Error("empty status reported OK")
	}
}

func TestDecodeData(t *testing.T) {
	resp := &Response{
		Status: StatusSuccess,
		Data:   json.RawMessage(`{"token":"abc"}`),
	}

	var sess Session
	if err := resp.DecodeData(&sess); err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if sess.Token != "abc" {
		t.Errorf("Token = %q, want abc", sess.Token)
	}
}

func TestDecodeDataAbsent(t *testing.T) {
	var sess Session
	err := (&Response{Status: StatusSuccess}).DecodeData(&sess)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
}

func TestDecodeDataMalformed(t *testing.T) {
	resp := &Response{Data: json.RawMessage(`{"token":`)}
	var sess Session
	if err := resp.DecodeData(&sess); err == nil || errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want decode failure", err)
	}
}

func TestListOptionsClamp(t *testing.T) {
	cases := []struct {
		in   ListOptions
		want ListOptions
	}{
		{ListOptions{}, ListOptions{Limit: 20, Offset: 0}},
		{ListOptions{Limit: -1, Offset: -5}, ListOptions{Limit: 20, Offset: 0}},
		{ListOptions{Limit: 500, Offset: 40}, ListOptions{Limit: 100, Offset: 40}},
		{ListOptions{Limit: 50, Offset: 10}, ListOptions{Limit: 50, Offset: 10}},
	}
	for _, tc := range cases {
		got := tc.in
		got.Clamp()
		if got != tc.want {
			t.Errorf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestListOptionsQuery(t *testing.T) {
	q := ListOptions{Limit: 25, Offset: 50}.Query()
	if q != "?limit=25&offset=50" {
		t.Errorf("Query = %q", q)
	}

	q = ListOptions{Limit: 9999}.Query()
	if q != "?limit=100&offset=0" {
		t.Errorf("Query = %q, want clamped values", q)
	}
}
