package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ReadJSON strictly decodes a request body: unknown fields, mistyped
// values, and trailing content are all rejected so a malformed charge
// descriptor never silently evaluates as zero.
func ReadJSON(r *http.Request, dst any) *APIError {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		// http.MaxBytesReader error text starts with "http: request body too large"
		if strings.HasPrefix(err.Error(), "http: request body too large") {
			return &APIError{
				Status: http.StatusRequestEntityTooLarge,
				Err: Error{
					Code:    "payload_too_large",
					Message: "request body too large",
				},
			}
		}
		return badJSON()
	}

	if dec.More() {
		return badJSON()
	}
	return nil
}

func badJSON() *APIError {
	return &APIError{
		Status: http.StatusBadRequest,
		Err: Error{
			Code:    "bad_json",
			Message: "bad json",
		},
	}
}
