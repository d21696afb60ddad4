package server

import (
	"encoding/json"
	"net/http"

	"github.com/getwaylabs/getway/pkg/model"
)

// respondOK writes a success envelope.
func respondOK(w http.ResponseWriter, message string, data any) {
	respondJSON(w, http.StatusOK, message, data, nil)
}

// respondCreated writes a 201 success envelope.
func respondCreated(w http.ResponseWriter, message string, data any) {
	respondJSON(w, http.StatusCreated, message, data, nil)
}

// respondError writes an error envelope with the given status.
func respondError(w http.ResponseWriter, status int, message string, errs ...string) {
	respondJSON(w, status, message, nil, errs)
}

func respondJSON(w http.ResponseWriter, status int, message string, data any, errs []string) {
	resp := model.Response{
		Message: message,
		Errors:  errs,
	}
	if status >= 200 && status <= 299 {
		resp.Status = model.StatusSuccess
	} else {
		resp.Status = model.StatusError
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			status = http.StatusInternalServerError
			resp.Status = model.StatusError
			resp.Message = "failed to encode response"
			resp.Data = nil
		} else {
			resp.Data = raw
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// decodeBody parses a JSON request body into v, answering 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}
